package master

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/medsupply/model"
)

// MasterRepository resolves the reference data orders and prescriptions point at.
// Every getter returns nil, nil when the id does not resolve.
type MasterRepository interface {
	GetInstitute(ctx context.Context, id uint64) (*model.Institute, error)
	GetManufacturer(ctx context.Context, id uint64) (*model.Manufacturer, error)
	GetMedicine(ctx context.Context, id uint64) (*model.Medicine, error)
	GetEmployee(ctx context.Context, id uint64) (*model.Employee, error)
	GetFamilyMember(ctx context.Context, id uint64) (*model.FamilyMember, error)
	ListCatalog(ctx context.Context, manufacturerID uint64, page, perPage int) ([]model.CatalogItem, int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewMasterRepository(conn *sqlx.DB) MasterRepository {
	return &SQL{conn: conn}
}

func (s *SQL) GetInstitute(ctx context.Context, id uint64) (*model.Institute, error) {
	var e model.Institute
	return getOne(ctx, s.conn, &e, "SELECT id, name FROM institute WHERE id = ?", id)
}

func (s *SQL) GetManufacturer(ctx context.Context, id uint64) (*model.Manufacturer, error) {
	var e model.Manufacturer
	return getOne(ctx, s.conn, &e, "SELECT id, name FROM manufacturer WHERE id = ?", id)
}

func (s *SQL) GetMedicine(ctx context.Context, id uint64) (*model.Medicine, error) {
	var e model.Medicine
	return getOne(ctx, s.conn, &e, "SELECT id, manufacturer_id, name, threshold FROM medicine WHERE id = ?", id)
}

func (s *SQL) GetEmployee(ctx context.Context, id uint64) (*model.Employee, error) {
	var e model.Employee
	return getOne(ctx, s.conn, &e, "SELECT id, institute_id, name FROM employee WHERE id = ?", id)
}

func (s *SQL) GetFamilyMember(ctx context.Context, id uint64) (*model.FamilyMember, error) {
	var e model.FamilyMember
	return getOne(ctx, s.conn, &e, "SELECT id, employee_id, name FROM family_member WHERE id = ?", id)
}

const (
	listCatalogQuery = `SELECT m.id, m.name, m.manufacturer_id, mf.name AS manufacturer_name, m.stock
FROM medicine m
JOIN manufacturer mf ON mf.id = m.manufacturer_id
WHERE m.manufacturer_id = ?
ORDER BY m.name, m.id LIMIT ? OFFSET ?`

	countCatalogQuery = `SELECT COUNT(*) FROM medicine WHERE manufacturer_id = ?`
)

func (s *SQL) ListCatalog(ctx context.Context, manufacturerID uint64, page, perPage int) ([]model.CatalogItem, int64, error) {
	offset := (page - 1) * perPage

	items := make([]model.CatalogItem, 0)
	if err := s.conn.SelectContext(ctx, &items, listCatalogQuery, manufacturerID, perPage, offset); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countCatalogQuery, manufacturerID); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func getOne[T any](ctx context.Context, conn *sqlx.DB, dest *T, query string, id uint64) (*T, error) {
	if id == 0 {
		return nil, nil
	}
	if err := conn.GetContext(ctx, dest, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}
