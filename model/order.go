package model

import (
	"time"

	"github.com/muhammadheryan/medsupply/constant"
)

// CreateOrderRequest is placed by an institute against one manufacturer's medicine.
type CreateOrderRequest struct {
	InstituteID    uint64 `json:"-"`
	ManufacturerID uint64 `json:"manufacturer_id" validate:"required"`
	MedicineID     uint64 `json:"medicine_id" validate:"required"`
	Quantity       int64  `json:"quantity"`
}

type CreateOrderResponse struct {
	OrderID   uint64    `json:"order_id"`
	OrderDate time.Time `json:"order_date"`
}

// OrderActionRequest drives the manufacturer-side transitions.
type OrderActionRequest struct {
	ManufacturerID uint64
	OrderID        uint64
}

// InstituteDeliverRequest confirms delivery from the institute side. The
// manufacturer reference is cross-checked against the order.
type InstituteDeliverRequest struct {
	InstituteID    uint64 `json:"-"`
	OrderID        uint64 `json:"-"`
	ManufacturerID uint64 `json:"manufacturer_id" validate:"required"`
}

type InsertOrderItem struct {
	InstituteID        uint64
	ManufacturerID     uint64
	MedicineID         uint64
	QuantityRequested  int64
	ManufacturerStatus constant.OrderStatus
	InstituteStatus    constant.OrderStatus
	OrderDate          time.Time
	Remarks            string
}

// OrderEntity is the authoritative order row.
type OrderEntity struct {
	ID                 uint64               `db:"id"`
	InstituteID        uint64               `db:"institute_id"`
	ManufacturerID     uint64               `db:"manufacturer_id"`
	MedicineID         uint64               `db:"medicine_id"`
	QuantityRequested  int64                `db:"quantity_requested"`
	ManufacturerStatus constant.OrderStatus `db:"manufacturer_status"`
	InstituteStatus    constant.OrderStatus `db:"institute_status"`
	OrderDate          time.Time            `db:"order_date"`
	DeliveryDate       *time.Time           `db:"delivery_date"`
	Remarks            string               `db:"remarks"`
	Reconciled         bool                 `db:"reconciled"`
	ReconciledQuantity int64                `db:"reconciled_quantity"`
}

// OrderSnapshot is the read view returned to both sides.
type OrderSnapshot struct {
	ID                 uint64               `db:"id" json:"id"`
	InstituteID        uint64               `db:"institute_id" json:"institute_id"`
	InstituteName      string               `db:"institute_name" json:"institute_name"`
	ManufacturerID     uint64               `db:"manufacturer_id" json:"manufacturer_id"`
	ManufacturerName   string               `db:"manufacturer_name" json:"manufacturer_name"`
	MedicineID         uint64               `db:"medicine_id" json:"medicine_id"`
	MedicineName       string               `db:"medicine_name" json:"medicine_name"`
	Quantity           int64                `db:"quantity_requested" json:"quantity"`
	ManufacturerStatus constant.OrderStatus `db:"manufacturer_status" json:"manufacturer_status"`
	InstituteStatus    constant.OrderStatus `db:"institute_status" json:"institute_status"`
	OrderDate          time.Time            `db:"order_date" json:"order_date"`
	DeliveryDate       *time.Time           `db:"delivery_date" json:"delivery_date,omitempty"`
	Remarks            string               `db:"remarks" json:"remarks"`
	Reconciled         bool                 `db:"reconciled" json:"reconciled"`
	ReconciledQuantity int64                `db:"reconciled_quantity" json:"reconciled_quantity"`
}

// ReconcileResult describes one stock transfer. Skipped is set when the order
// had already been reconciled and nothing moved.
type ReconcileResult struct {
	OrderID                 uint64 `json:"order_id"`
	InstituteID             uint64 `json:"institute_id"`
	MedicineID              uint64 `json:"medicine_id"`
	Requested               int64  `json:"requested"`
	Applied                 int64  `json:"applied"`
	ManufacturerStockBefore int64  `json:"manufacturer_stock_before"`
	ManufacturerStockAfter  int64  `json:"manufacturer_stock_after"`
	InventoryBefore         int64  `json:"inventory_before"`
	InventoryAfter          int64  `json:"inventory_after"`
	Skipped                 bool   `json:"skipped"`
}
