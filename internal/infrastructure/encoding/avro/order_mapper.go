package avro

import (
	domain "farm_hub/internal/domain/order"
)

// ToOrderPlacedNative maps a notification to the goavro native form of OrderPlacedSchema.
func ToOrderPlacedNative(shop string, n domain.Notification) map[string]interface{} {
	return map[string]interface{}{
		"order_id":      n.OrderID,
		"shop":          shop,
		"product_name":  n.ProductName,
		"supplier_name": n.SupplierName,
		"quantity":      int64(n.Quantity),
		"total":         n.Total,
		"customer_name": n.CustomerName,
		"phone":         n.Phone,
		"address":       n.Address,
		"ordered_at":    n.OrderedAt,
		"status":        domain.StatusPending,
	}
}
