package prescription

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/medsupply/model"
)

type PrescriptionRepository interface {
	InsertPrescriptionTx(ctx context.Context, tx *sqlx.Tx, p *model.PrescriptionEntity) (uint64, error)
	InsertPrescriptionItemsTx(ctx context.Context, tx *sqlx.Tx, prescriptionID uint64, items []model.PrescriptionItemEntity) error
	ListByInstitute(ctx context.Context, instituteID uint64) ([]model.PrescriptionSummary, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewPrescriptionRepository(conn *sqlx.DB) PrescriptionRepository {
	return &SQL{conn: conn}
}

const (
	insertPrescriptionQuery = `INSERT INTO prescription (institute_id, employee_id, is_family_member, family_member_id, notes, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	insertItemQuery         = `INSERT INTO prescription_item (prescription_id, medicine_id, medicine_name, quantity_requested, quantity_deducted) VALUES (?, ?, ?, ?, ?)`
	listPrescriptionsQuery  = `SELECT id, employee_id, is_family_member, family_member_id, notes, created_at FROM prescription WHERE institute_id = ? ORDER BY created_at DESC, id DESC`
	listItemsQuery          = `SELECT pi.prescription_id, pi.medicine_id, pi.medicine_name, pi.quantity_requested, pi.quantity_deducted
FROM prescription_item pi
JOIN prescription p ON p.id = pi.prescription_id
WHERE p.institute_id = ? ORDER BY pi.id`
)

func (s *SQL) InsertPrescriptionTx(ctx context.Context, tx *sqlx.Tx, p *model.PrescriptionEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertPrescriptionQuery, p.InstituteID, p.EmployeeID, p.IsFamilyMember, p.FamilyMemberID, p.Notes, p.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) InsertPrescriptionItemsTx(ctx context.Context, tx *sqlx.Tx, prescriptionID uint64, items []model.PrescriptionItemEntity) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertItemQuery, prescriptionID, it.MedicineID, it.MedicineName, it.QuantityRequested, it.QuantityDeducted); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) ListByInstitute(ctx context.Context, instituteID uint64) ([]model.PrescriptionSummary, error) {
	list := make([]model.PrescriptionSummary, 0)
	if err := s.conn.SelectContext(ctx, &list, listPrescriptionsQuery, instituteID); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	var items []model.PrescriptionItemEntity
	if err := s.conn.SelectContext(ctx, &items, listItemsQuery, instituteID); err != nil {
		return nil, err
	}

	byID := make(map[uint64]int, len(list))
	for i := range list {
		byID[list[i].ID] = i
		list[i].Items = make([]model.PrescriptionItem, 0)
	}
	for _, it := range items {
		i, ok := byID[it.PrescriptionID]
		if !ok {
			continue
		}
		list[i].Items = append(list[i].Items, model.PrescriptionItem{
			MedicineID:   it.MedicineID,
			MedicineName: it.MedicineName,
			Requested:    it.QuantityRequested,
			Deducted:     it.QuantityDeducted,
		})
	}
	return list, nil
}
