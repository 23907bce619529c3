package constant

import "fmt"

func InventoryCacheKey(instituteID uint64) string {
	return fmt.Sprintf("inventory:institute:%d", instituteID)
}

func LowStockAlertKey(instituteID, medicineID uint64) string {
	return fmt.Sprintf("lowstock:%d:%d", instituteID, medicineID)
}

// ActorCacheKey marks a token subject already resolved against master data.
func ActorCacheKey(role ActorRole, id uint64) string {
	return fmt.Sprintf("actor:%s:%d", role, id)
}
