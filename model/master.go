package model

type Institute struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Manufacturer struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Medicine struct {
	ID             uint64 `db:"id" json:"id"`
	ManufacturerID uint64 `db:"manufacturer_id" json:"manufacturer_id"`
	Name           string `db:"name" json:"name"`
	Threshold      int64  `db:"threshold" json:"threshold"`
}

type Employee struct {
	ID          uint64 `db:"id" json:"id"`
	InstituteID uint64 `db:"institute_id" json:"institute_id"`
	Name        string `db:"name" json:"name"`
}

type FamilyMember struct {
	ID         uint64 `db:"id" json:"id"`
	EmployeeID uint64 `db:"employee_id" json:"employee_id"`
	Name       string `db:"name" json:"name"`
}

// CatalogItem is one medicine on a manufacturer's catalog with the stock
// available to order.
type CatalogItem struct {
	ID               uint64 `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	ManufacturerID   uint64 `db:"manufacturer_id" json:"manufacturer_id"`
	ManufacturerName string `db:"manufacturer_name" json:"manufacturer_name"`
	Stock            int64  `db:"stock" json:"stock"`
}

type CatalogResponse struct {
	Items      []CatalogItem `json:"items"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
}
