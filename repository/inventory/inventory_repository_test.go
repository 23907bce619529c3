package inventory_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/medsupply/model"
	inventoryrepo "github.com/muhammadheryan/medsupply/repository/inventory"
	"github.com/muhammadheryan/medsupply/utils/testdb"
	"github.com/stretchr/testify/require"
)

func TestInventoryRepository_EnsureAndUpdateLine(t *testing.T) {
	db := testdb.New(t)
	f := testdb.Seed(t, db, 100, 10)
	repo := inventoryrepo.NewInventoryRepository(db)
	ctx := context.Background()

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)

	line, err := repo.GetInstituteInventoryForUpdateTx(ctx, tx, f.InstituteID, f.MedicineID)
	require.NoError(t, err)
	require.Nil(t, line)

	require.NoError(t, repo.EnsureInstituteInventoryTx(ctx, tx, f.InstituteID, f.MedicineID))
	require.NoError(t, repo.EnsureInstituteInventoryTx(ctx, tx, f.InstituteID, f.MedicineID), "ensure must be idempotent")

	line, err = repo.GetInstituteInventoryForUpdateTx(ctx, tx, f.InstituteID, f.MedicineID)
	require.NoError(t, err)
	require.NotNil(t, line)
	require.Equal(t, int64(0), line.Quantity)
	require.Equal(t, int64(10), line.Threshold)
	require.Equal(t, "Paracetamol 500mg", line.MedicineName)

	require.NoError(t, repo.UpdateInstituteInventoryTx(ctx, tx, line.ID, 35))
	require.Error(t, repo.UpdateInstituteInventoryTx(ctx, tx, line.ID, -1))
	require.NoError(t, tx.Commit())

	lines, err := repo.ListInstituteInventory(ctx, f.InstituteID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, int64(35), lines[0].Quantity)
}

func TestInventoryRepository_ManufacturerStock(t *testing.T) {
	db := testdb.New(t)
	f := testdb.Seed(t, db, 80, 10)
	repo := inventoryrepo.NewInventoryRepository(db)
	ctx := context.Background()

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)

	stock, err := repo.GetManufacturerStockForUpdateTx(ctx, tx, f.MedicineID)
	require.NoError(t, err)
	require.NotNil(t, stock)
	require.Equal(t, int64(80), stock.Quantity)
	require.Equal(t, f.ManufacturerID, stock.ManufacturerID)

	require.NoError(t, repo.UpdateManufacturerStockTx(ctx, tx, f.MedicineID, 30))
	require.Error(t, repo.UpdateManufacturerStockTx(ctx, tx, f.MedicineID, -5))

	missing, err := repo.GetManufacturerStockForUpdateTx(ctx, tx, f.MedicineID+50)
	require.NoError(t, err)
	require.Nil(t, missing)
	require.NoError(t, tx.Commit())

	require.Equal(t, int64(30), testdb.ManufacturerStock(t, db, f.MedicineID))
}

func TestInventoryRepository_LockedLineReadsCurrentQuantity(t *testing.T) {
	db := testdb.New(t)
	f := testdb.Seed(t, db, 100, 10)
	ibuprofen := testdb.Insert(t, db, "INSERT INTO medicine (manufacturer_id, name, threshold, stock) VALUES (?, ?, ?, ?)", f.ManufacturerID, "Ibuprofen 200mg", 5, 100)
	testdb.SetInventory(t, db, f.InstituteID, f.MedicineID, 20)
	testdb.SetInventory(t, db, f.InstituteID, ibuprofen, 10)
	repo := inventoryrepo.NewInventoryRepository(db)
	ctx := context.Background()

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	first, err := repo.GetInstituteInventoryForUpdateTx(ctx, tx, f.InstituteID, f.MedicineID)
	require.NoError(t, err)
	require.Equal(t, int64(20), first.Quantity)

	// a credit landing on the second line after the first one was read
	_, err = tx.ExecContext(ctx, "UPDATE institute_inventory SET quantity = 60 WHERE institute_id = ? AND medicine_id = ?", f.InstituteID, ibuprofen)
	require.NoError(t, err)

	second, err := repo.GetInstituteInventoryForUpdateTx(ctx, tx, f.InstituteID, ibuprofen)
	require.NoError(t, err)
	require.Equal(t, model.InventoryLine{
		ID:           second.ID,
		InstituteID:  f.InstituteID,
		MedicineID:   ibuprofen,
		MedicineName: "Ibuprofen 200mg",
		Quantity:     60,
		Threshold:    5,
	}, *second)
}
