package model

// InventoryLine is one institute's on-hand quantity of one medicine.
type InventoryLine struct {
	ID           uint64 `db:"id"`
	InstituteID  uint64 `db:"institute_id"`
	MedicineID   uint64 `db:"medicine_id"`
	MedicineName string `db:"medicine_name"`
	Quantity     int64  `db:"quantity"`
	Threshold    int64  `db:"threshold"`
}

// ManufacturerStock is the supplier-side quantity of a medicine.
type ManufacturerStock struct {
	MedicineID     uint64 `db:"id"`
	ManufacturerID uint64 `db:"manufacturer_id"`
	Quantity       int64  `db:"stock"`
}

type InventoryItem struct {
	MedicineID uint64 `json:"medicine_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
	Threshold  int64  `json:"threshold"`
}

type LowStockItem struct {
	MedicineID uint64 `json:"medicine_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
	Threshold  int64  `json:"threshold"`
}

type LowStockResponse struct {
	InstituteID   uint64         `json:"institute_id"`
	TotalQuantity int64          `json:"total_quantity"`
	Items         []LowStockItem `json:"items"`
}
