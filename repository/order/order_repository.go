package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/medsupply/model"
	"github.com/muhammadheryan/medsupply/repository/sqlutil"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, req *model.InsertOrderItem) (uint64, error)
	GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error)
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) error
	MarkReconciledTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, quantity int64) (bool, error)
	GetOrderSnapshot(ctx context.Context, orderID uint64) (*model.OrderSnapshot, error)
	GetOrderSnapshotTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderSnapshot, error)
	ListByInstitute(ctx context.Context, instituteID uint64) ([]model.OrderSnapshot, error)
	ListByManufacturer(ctx context.Context, manufacturerID uint64) ([]model.OrderSnapshot, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = `INSERT INTO medicine_order (institute_id, manufacturer_id, medicine_id, quantity_requested, manufacturer_status, institute_status, order_date, remarks)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	getOrderQuery = `SELECT id, institute_id, manufacturer_id, medicine_id, quantity_requested, manufacturer_status, institute_status,
order_date, delivery_date, remarks, reconciled, reconciled_quantity
FROM medicine_order WHERE id = ?`

	updateOrderStatusQuery = `UPDATE medicine_order SET manufacturer_status = ?, institute_status = ?, delivery_date = ?, remarks = ? WHERE id = ?`

	// the reconciled = 0 predicate makes the marker a compare-and-set
	markReconciledQuery = `UPDATE medicine_order SET reconciled = 1, reconciled_quantity = ?
WHERE id = ? AND reconciled = 0 AND manufacturer_status = 'DELIVERED' AND institute_status = 'DELIVERED'`

	snapshotBase = `SELECT o.id, o.institute_id, i.name AS institute_name, o.manufacturer_id, m.name AS manufacturer_name,
o.medicine_id, md.name AS medicine_name, o.quantity_requested, o.manufacturer_status, o.institute_status,
o.order_date, o.delivery_date, o.remarks, o.reconciled, o.reconciled_quantity
FROM medicine_order o
JOIN institute i ON i.id = o.institute_id
JOIN manufacturer m ON m.id = o.manufacturer_id
JOIN medicine md ON md.id = o.medicine_id`
)

func (r *SQL) InsertOrder(ctx context.Context, req *model.InsertOrderItem) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertOrderQuery,
		req.InstituteID, req.ManufacturerID, req.MedicineID, req.QuantityRequested,
		req.ManufacturerStatus, req.InstituteStatus, req.OrderDate, req.Remarks)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetOrderForUpdateTx locks the order row for the rest of tx. It returns nil
// when the order does not exist.
func (r *SQL) GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error) {
	var order model.OrderEntity
	if err := tx.GetContext(ctx, &order, getOrderQuery+sqlutil.ForUpdate(tx), orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) error {
	res, err := tx.ExecContext(ctx, updateOrderStatusQuery,
		order.ManufacturerStatus, order.InstituteStatus, order.DeliveryDate, order.Remarks, order.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkReconciledTx flips the reconciled marker and reports whether this call
// won it. false means another transaction already reconciled the order.
func (r *SQL) MarkReconciledTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, quantity int64) (bool, error) {
	res, err := tx.ExecContext(ctx, markReconciledQuery, quantity, orderID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *SQL) GetOrderSnapshot(ctx context.Context, orderID uint64) (*model.OrderSnapshot, error) {
	return getSnapshot(ctx, r.conn, orderID)
}

func (r *SQL) GetOrderSnapshotTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderSnapshot, error) {
	return getSnapshot(ctx, tx, orderID)
}

func (r *SQL) ListByInstitute(ctx context.Context, instituteID uint64) ([]model.OrderSnapshot, error) {
	return r.list(ctx, " WHERE o.institute_id = ?", instituteID)
}

func (r *SQL) ListByManufacturer(ctx context.Context, manufacturerID uint64) ([]model.OrderSnapshot, error) {
	return r.list(ctx, " WHERE o.manufacturer_id = ?", manufacturerID)
}

func (r *SQL) list(ctx context.Context, where string, id uint64) ([]model.OrderSnapshot, error) {
	orders := make([]model.OrderSnapshot, 0)
	query := snapshotBase + where + " ORDER BY o.order_date DESC, o.id DESC"
	if err := r.conn.SelectContext(ctx, &orders, query, id); err != nil {
		return nil, err
	}
	return orders, nil
}

func getSnapshot(ctx context.Context, q sqlx.QueryerContext, orderID uint64) (*model.OrderSnapshot, error) {
	var snap model.OrderSnapshot
	if err := sqlx.GetContext(ctx, q, &snap, snapshotBase+" WHERE o.id = ?", orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}
