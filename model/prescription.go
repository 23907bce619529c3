package model

import "time"

// Recipient is the employee, or one of the employee's family members when
// IsFamilyMember is set.
type Recipient struct {
	EmployeeID     uint64 `json:"employee_id" validate:"required"`
	IsFamilyMember bool   `json:"is_family_member"`
	FamilyMemberID uint64 `json:"family_member_id,omitempty"`
}

type DispenseLineRequest struct {
	MedicineID uint64 `json:"medicine_id" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
}

type DispenseRequest struct {
	InstituteID uint64                `json:"-"`
	Recipient   Recipient             `json:"recipient"`
	Lines       []DispenseLineRequest `json:"medicines" validate:"required,min=1,dive"`
	Notes       string                `json:"notes" validate:"max=1000"`
}

type DispenseLineResult struct {
	MedicineID   uint64 `json:"medicine_id"`
	MedicineName string `json:"medicine_name"`
	Requested    int64  `json:"requested"`
	Before       int64  `json:"before"`
	Deducted     int64  `json:"deducted"`
	After        int64  `json:"after"`
	Threshold    int64  `json:"threshold"`
	Partial      bool   `json:"partial"`
	LowStock     bool   `json:"low_stock"`
}

type DispenseResult struct {
	PrescriptionID     uint64               `json:"prescription_id"`
	Lines              []DispenseLineResult `json:"lines"`
	PartialFulfillment bool                 `json:"partial_fulfillment"`
	LowStock           []LowStockItem       `json:"low_stock,omitempty"`
}

type PrescriptionEntity struct {
	ID             uint64    `db:"id"`
	InstituteID    uint64    `db:"institute_id"`
	EmployeeID     uint64    `db:"employee_id"`
	IsFamilyMember bool      `db:"is_family_member"`
	FamilyMemberID *uint64   `db:"family_member_id"`
	Notes          string    `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
}

type PrescriptionItemEntity struct {
	PrescriptionID    uint64 `db:"prescription_id"`
	MedicineID        uint64 `db:"medicine_id"`
	MedicineName      string `db:"medicine_name"`
	QuantityRequested int64  `db:"quantity_requested"`
	QuantityDeducted  int64  `db:"quantity_deducted"`
}

type PrescriptionItem struct {
	MedicineID   uint64 `db:"medicine_id" json:"medicine_id"`
	MedicineName string `db:"medicine_name" json:"medicine_name"`
	Requested    int64  `db:"quantity_requested" json:"requested"`
	Deducted     int64  `db:"quantity_deducted" json:"deducted"`
}

type PrescriptionSummary struct {
	ID             uint64             `db:"id" json:"id"`
	EmployeeID     uint64             `db:"employee_id" json:"employee_id"`
	IsFamilyMember bool               `db:"is_family_member" json:"is_family_member"`
	FamilyMemberID *uint64            `db:"family_member_id" json:"family_member_id,omitempty"`
	Notes          string             `db:"notes" json:"notes"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
	Items          []PrescriptionItem `db:"-" json:"items"`
}
