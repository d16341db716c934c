package order

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"farm_hub/pkg/numparse"
)

// IDLayout is ISO-8601 in UTC with millisecond precision. It sorts
// lexically and doubles as the order id.
const IDLayout = "2006-01-02T15:04:05.000Z"

// MaxSalePrice bounds the unit price so totals stay a few dozen digits long.
const MaxSalePrice = 1e12

// Request is the payload posted by the order form.
type Request struct {
	Name         Value `json:"name"`
	Phone        Value `json:"phone"`
	Quantity     Value `json:"quantity"`
	Address      Value `json:"address"`
	ProductName  Value `json:"productName"`
	SupplierName Value `json:"supplierName"`
	SalePrice    Value `json:"salePrice"`
}

// Validate checks the required fields by truthiness only.
func (r Request) Validate() error {
	for _, v := range []Value{r.Name, r.Phone, r.Quantity, r.Address, r.ProductName} {
		if !v.Truthy() {
			return ErrMissingFields
		}
	}
	return nil
}

// Order is one accepted order, persisted as a single sheet row.
type Order struct {
	ID           string
	CreatedAt    time.Time
	CustomerName string
	Phone        string
	ProductName  string
	SupplierName string
	Quantity     int
	// RawQuantity is the quantity as submitted; Quantity is its integer prefix.
	RawQuantity  Value
	UnitPrice    string
	Total        decimal.Decimal
	Address      string
	Status       string
}

// NewOrder validates req and computes the order accepted at now.
func NewOrder(req Request, now time.Time) (*Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quantity, ok := numparse.IntPrefix(req.Quantity.String())
	if !ok || quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	priceText, ok := numparse.FloatPrefix(req.SalePrice.String())
	if !ok {
		return nil, ErrInvalidPrice
	}
	f, err := strconv.ParseFloat(priceText, 64)
	if err != nil || f < 0 || f > MaxSalePrice {
		return nil, ErrInvalidPrice
	}
	price := decimal.NewFromFloat(f)

	createdAt := now.UTC()
	return &Order{
		ID:           createdAt.Format(IDLayout),
		CreatedAt:    createdAt,
		CustomerName: req.Name.String(),
		Phone:        req.Phone.String(),
		ProductName:  req.ProductName.String(),
		SupplierName: req.SupplierName.OrEmpty(),
		Quantity:     quantity,
		RawQuantity:  req.Quantity,
		UnitPrice:    req.SalePrice.String(),
		Total:        price.Mul(decimal.NewFromInt(int64(quantity))),
		Address:      req.Address.String(),
		Status:       StatusPending,
	}, nil
}

// TotalText is the total fixed to 2 decimal places.
func (o *Order) TotalText() string {
	return o.Total.StringFixed(2)
}

// Row returns the 10 order cells in sheet column order:
// Timestamp, Name, Phone, Product, Supplier, Quantity, Unit Price, Total, Address, Status.
func (o *Order) Row() []interface{} {
	return []interface{}{
		o.ID,
		o.CustomerName,
		o.Phone,
		o.ProductName,
		o.SupplierName,
		o.RawQuantity.Raw(),
		o.UnitPrice,
		o.TotalText(),
		o.Address,
		o.Status,
	}
}
