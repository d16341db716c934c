package order

import "time"

// HumanLayout matches what the admin sees in chat notifications.
const HumanLayout = "1/2/2006, 3:04:05 PM"

// Notification is the outbound view of an order sent to the shop admin.
type Notification struct {
	OrderID      string
	ProductName  string
	SupplierName string
	Quantity     int
	// QuantityText is the quantity as the customer entered it.
	QuantityText string
	Total        string
	CustomerName string
	Phone        string
	Address      string
	OrderedAt    string
}

// Notification builds the admin notification with the timestamp rendered in loc.
func (o *Order) Notification(loc *time.Location) Notification {
	if loc == nil {
		loc = time.UTC
	}
	return Notification{
		OrderID:      o.ID,
		ProductName:  o.ProductName,
		SupplierName: o.SupplierName,
		Quantity:     o.Quantity,
		QuantityText: o.RawQuantity.String(),
		Total:        o.TotalText(),
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Address:      o.Address,
		OrderedAt:    o.CreatedAt.In(loc).Format(HumanLayout),
	}
}
