package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/medsupply/model"
	"github.com/muhammadheryan/medsupply/repository/sqlutil"
)

// InventoryRepository owns institute inventory lines and manufacturer stock.
// Manufacturer stock is only written from reconciliation.
type InventoryRepository interface {
	ListInstituteInventory(ctx context.Context, instituteID uint64) ([]model.InventoryLine, error)
	EnsureInstituteInventoryTx(ctx context.Context, tx *sqlx.Tx, instituteID, medicineID uint64) error
	GetInstituteInventoryForUpdateTx(ctx context.Context, tx *sqlx.Tx, instituteID, medicineID uint64) (*model.InventoryLine, error)
	UpdateInstituteInventoryTx(ctx context.Context, tx *sqlx.Tx, lineID uint64, quantity int64) error
	GetManufacturerStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, medicineID uint64) (*model.ManufacturerStock, error)
	UpdateManufacturerStockTx(ctx context.Context, tx *sqlx.Tx, medicineID uint64, quantity int64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	inventoryLineBase = `SELECT ii.id, ii.institute_id, ii.medicine_id, md.name AS medicine_name, ii.quantity, md.threshold
FROM institute_inventory ii
JOIN medicine md ON md.id = ii.medicine_id`

	// locks the inventory row only; a joined lock would also take the medicine
	// row, which reconciliation locks before the inventory line. quantity must
	// come from this statement: a plain read in the same tx may see a snapshot
	// older than the lock.
	lockInventoryLine = `SELECT id, institute_id, medicine_id, quantity FROM institute_inventory WHERE institute_id = ? AND medicine_id = ?`

	medicineDetail = `SELECT name AS medicine_name, threshold FROM medicine WHERE id = ?`
)

func (r *SQL) ListInstituteInventory(ctx context.Context, instituteID uint64) ([]model.InventoryLine, error) {
	lines := make([]model.InventoryLine, 0)
	query := inventoryLineBase + " WHERE ii.institute_id = ? ORDER BY md.name, ii.medicine_id"
	if err := r.conn.SelectContext(ctx, &lines, query, instituteID); err != nil {
		return nil, err
	}
	return lines, nil
}

// EnsureInstituteInventoryTx creates a zero line if none exists. Concurrent
// callers for the same pair both succeed.
func (r *SQL) EnsureInstituteInventoryTx(ctx context.Context, tx *sqlx.Tx, instituteID, medicineID uint64) error {
	q := sqlutil.InsertIgnore(tx) + " INTO institute_inventory (institute_id, medicine_id, quantity) VALUES (?, ?, 0)"
	_, err := tx.ExecContext(ctx, q, instituteID, medicineID)
	return err
}

// GetInstituteInventoryForUpdateTx returns nil when the institute holds no line for the medicine.
func (r *SQL) GetInstituteInventoryForUpdateTx(ctx context.Context, tx *sqlx.Tx, instituteID, medicineID uint64) (*model.InventoryLine, error) {
	var line model.InventoryLine
	if err := tx.GetContext(ctx, &line, lockInventoryLine+sqlutil.ForUpdate(tx), instituteID, medicineID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var detail struct {
		MedicineName string `db:"medicine_name"`
		Threshold    int64  `db:"threshold"`
	}
	if err := tx.GetContext(ctx, &detail, medicineDetail, medicineID); err != nil {
		return nil, err
	}
	line.MedicineName = detail.MedicineName
	line.Threshold = detail.Threshold
	return &line, nil
}

func (r *SQL) UpdateInstituteInventoryTx(ctx context.Context, tx *sqlx.Tx, lineID uint64, quantity int64) error {
	if quantity < 0 {
		return fmt.Errorf("inventory line %d: negative quantity %d", lineID, quantity)
	}
	_, err := tx.ExecContext(ctx, "UPDATE institute_inventory SET quantity = ? WHERE id = ?", quantity, lineID)
	return err
}

// GetManufacturerStockForUpdateTx returns nil when the medicine does not exist.
func (r *SQL) GetManufacturerStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, medicineID uint64) (*model.ManufacturerStock, error) {
	var stock model.ManufacturerStock
	q := "SELECT id, manufacturer_id, stock FROM medicine WHERE id = ?" + sqlutil.ForUpdate(tx)
	if err := tx.GetContext(ctx, &stock, q, medicineID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

func (r *SQL) UpdateManufacturerStockTx(ctx context.Context, tx *sqlx.Tx, medicineID uint64, quantity int64) error {
	if quantity < 0 {
		return fmt.Errorf("medicine %d: negative stock %d", medicineID, quantity)
	}
	_, err := tx.ExecContext(ctx, "UPDATE medicine SET stock = ? WHERE id = ?", quantity, medicineID)
	return err
}
