package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appinventory "github.com/muhammadheryan/medsupply/application/inventory"
	"github.com/muhammadheryan/medsupply/cmd/config"
	"github.com/muhammadheryan/medsupply/constant"
	inventorymocks "github.com/muhammadheryan/medsupply/mocks/repository/inventory"
	redismocks "github.com/muhammadheryan/medsupply/mocks/repository/redis"
	"github.com/muhammadheryan/medsupply/model"
	redisrepo "github.com/muhammadheryan/medsupply/repository/redis"
	cerr "github.com/muhammadheryan/medsupply/utils/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = &config.Config{Cache: config.CacheConfig{InventoryTTL: 5 * time.Minute}}

func TestInventoryApp_GetInventory(t *testing.T) {
	key := constant.InventoryCacheKey(1)
	lines := []model.InventoryLine{
		{ID: 1, InstituteID: 1, MedicineID: 3, MedicineName: "Paracetamol", Quantity: 4, Threshold: 10},
		{ID: 2, InstituteID: 1, MedicineID: 4, MedicineName: "Ibuprofen", Quantity: 40, Threshold: 10},
	}
	want := []model.InventoryItem{
		{MedicineID: 3, Name: "Paracetamol", Quantity: 4, Threshold: 10},
		{MedicineID: 4, Name: "Ibuprofen", Quantity: 40, Threshold: 10},
	}
	cachedJSON := `[{"medicine_id":3,"name":"Paracetamol","quantity":4,"threshold":10},{"medicine_id":4,"name":"Ibuprofen","quantity":40,"threshold":10}]`

	tests := []struct {
		name     string
		mockCall func(repo *inventorymocks.InventoryRepository, cache *redismocks.RedisRepository)
		want     []model.InventoryItem
		wantErr  bool
	}{
		{
			name: "cache hit skips the database",
			mockCall: func(repo *inventorymocks.InventoryRepository, cache *redismocks.RedisRepository) {
				cache.On("Get", mock.Anything, key).Return(cachedJSON, nil).Once()
			},
			want: want,
		},
		{
			name: "cache miss rebuilds and stores",
			mockCall: func(repo *inventorymocks.InventoryRepository, cache *redismocks.RedisRepository) {
				cache.On("Get", mock.Anything, key).Return("", redisrepo.ErrCacheMiss).Once()
				repo.On("ListInstituteInventory", mock.Anything, uint64(1)).Return(lines, nil).Once()
				cache.On("SetWithTTL", mock.Anything, key, cachedJSON, 5*time.Minute).Return(nil).Once()
			},
			want: want,
		},
		{
			name: "cache failure falls back to the database",
			mockCall: func(repo *inventorymocks.InventoryRepository, cache *redismocks.RedisRepository) {
				cache.On("Get", mock.Anything, key).Return("", errors.New("connection refused")).Once()
				repo.On("ListInstituteInventory", mock.Anything, uint64(1)).Return(lines, nil).Once()
				cache.On("SetWithTTL", mock.Anything, key, mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()
			},
			want: want,
		},
		{
			name: "corrupt cache entry is rebuilt",
			mockCall: func(repo *inventorymocks.InventoryRepository, cache *redismocks.RedisRepository) {
				cache.On("Get", mock.Anything, key).Return("{broken", nil).Once()
				repo.On("ListInstituteInventory", mock.Anything, uint64(1)).Return(lines, nil).Once()
				cache.On("SetWithTTL", mock.Anything, key, cachedJSON, 5*time.Minute).Return(nil).Once()
			},
			want: want,
		},
		{
			name: "database failure",
			mockCall: func(repo *inventorymocks.InventoryRepository, cache *redismocks.RedisRepository) {
				cache.On("Get", mock.Anything, key).Return("", redisrepo.ErrCacheMiss).Once()
				repo.On("ListInstituteInventory", mock.Anything, uint64(1)).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := inventorymocks.NewInventoryRepository(t)
			cache := redismocks.NewRedisRepository(t)
			tt.mockCall(repo, cache)

			app := appinventory.NewInventoryApp(testConfig, repo, cache)
			got, err := app.GetInventory(context.Background(), 1)
			if tt.wantErr {
				require.True(t, errors.Is(err, cerr.SetCustomError(constant.ErrInternal)), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInventoryApp_ListLowStock(t *testing.T) {
	repo := inventorymocks.NewInventoryRepository(t)
	cache := redismocks.NewRedisRepository(t)
	cache.On("Get", mock.Anything, constant.InventoryCacheKey(1)).Return("", redisrepo.ErrCacheMiss).Once()
	cache.On("SetWithTTL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("ListInstituteInventory", mock.Anything, uint64(1)).Return([]model.InventoryLine{
		{MedicineID: 3, MedicineName: "Paracetamol", Quantity: 4, Threshold: 10},
		{MedicineID: 4, MedicineName: "Ibuprofen", Quantity: 10, Threshold: 10},
		{MedicineID: 5, MedicineName: "Cetirizine", Quantity: 0, Threshold: 5},
	}, nil).Once()

	app := appinventory.NewInventoryApp(testConfig, repo, cache)
	got, err := app.ListLowStock(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got.InstituteID)
	require.Equal(t, int64(14), got.TotalQuantity)
	require.Equal(t, []model.LowStockItem{
		{MedicineID: 3, Name: "Paracetamol", Quantity: 4, Threshold: 10},
		{MedicineID: 5, Name: "Cetirizine", Quantity: 0, Threshold: 5},
	}, got.Items)
}
