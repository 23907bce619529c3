// Package testdb opens a migrated in-memory sqlite database for tests.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/medsupply/migration"
	_ "modernc.org/sqlite"
)

var seq atomic.Int64

// New returns a fresh database closed at test cleanup. A single connection
// keeps the in-memory database alive and serializes transactions.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq.Add(1))
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := migration.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Insert runs an INSERT and returns the new row id.
func Insert(t testing.TB, db *sqlx.DB, query string, args ...any) uint64 {
	t.Helper()

	res, err := db.Exec(query, args...)
	if err != nil {
		t.Fatalf("insert %q: %v", query, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}
	return uint64(id)
}

// Fixture is a minimal institute/manufacturer/medicine graph.
type Fixture struct {
	InstituteID    uint64
	ManufacturerID uint64
	MedicineID     uint64
	EmployeeID     uint64
	FamilyMemberID uint64
}

// Seed creates one of everything. stock is the manufacturer stock of the
// medicine, threshold its low-stock level.
func Seed(t testing.TB, db *sqlx.DB, stock, threshold int64) Fixture {
	t.Helper()

	var f Fixture
	f.InstituteID = Insert(t, db, "INSERT INTO institute (name) VALUES (?)", fmt.Sprintf("Police Hospital %d", seq.Add(1)))
	f.ManufacturerID = Insert(t, db, "INSERT INTO manufacturer (name) VALUES (?)", "Acme Pharma")
	f.MedicineID = Insert(t, db, "INSERT INTO medicine (manufacturer_id, name, threshold, stock) VALUES (?, ?, ?, ?)", f.ManufacturerID, "Paracetamol 500mg", threshold, stock)
	f.EmployeeID = Insert(t, db, "INSERT INTO employee (institute_id, name) VALUES (?, ?)", f.InstituteID, "Constable Rao")
	f.FamilyMemberID = Insert(t, db, "INSERT INTO family_member (employee_id, name) VALUES (?, ?)", f.EmployeeID, "Meena Rao")
	return f
}

// SetInventory writes an institute inventory line directly.
func SetInventory(t testing.TB, db *sqlx.DB, instituteID, medicineID uint64, quantity int64) {
	t.Helper()
	Insert(t, db, "INSERT INTO institute_inventory (institute_id, medicine_id, quantity) VALUES (?, ?, ?)", instituteID, medicineID, quantity)
}

// InventoryQuantity returns the institute line quantity, or -1 when the line is missing.
func InventoryQuantity(t testing.TB, db *sqlx.DB, instituteID, medicineID uint64) int64 {
	t.Helper()
	var q []int64
	if err := db.Select(&q, "SELECT quantity FROM institute_inventory WHERE institute_id = ? AND medicine_id = ?", instituteID, medicineID); err != nil {
		t.Fatalf("read inventory: %v", err)
	}
	if len(q) == 0 {
		return -1
	}
	return q[0]
}

// ManufacturerStock returns the medicine's manufacturer stock.
func ManufacturerStock(t testing.TB, db *sqlx.DB, medicineID uint64) int64 {
	t.Helper()
	var q int64
	if err := db.Get(&q, "SELECT stock FROM medicine WHERE id = ?", medicineID); err != nil {
		t.Fatalf("read stock: %v", err)
	}
	return q
}
