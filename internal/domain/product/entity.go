package product

import "farm_hub/pkg/numparse"

// Column positions in the products sheet.
const (
	colDateAdded = iota
	colProductName
	colSupplierName
	colCost
	colSalePrice
	colMargin
	colNotes
)

type Product struct {
	ID           int     `json:"id"`
	DateAdded    string  `json:"dateAdded"`
	ProductName  string  `json:"productName"`
	SupplierName string  `json:"supplierName"`
	Cost         float64 `json:"cost"`
	SalePrice    float64 `json:"salePrice"`
	Margin       string  `json:"margin"`
	Notes        string  `json:"notes"`
}

// FromRow maps the index-th data row (0-based) of the sheet to a Product.
// Missing cells read as empty, unparsable prices as 0.
func FromRow(index int, cells []string) Product {
	cell := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}

	return Product{
		ID:           index + 1,
		DateAdded:    cell(colDateAdded),
		ProductName:  cell(colProductName),
		SupplierName: cell(colSupplierName),
		Cost:         numparse.FloatOrZero(cell(colCost)),
		SalePrice:    numparse.FloatOrZero(cell(colSalePrice)),
		Margin:       cell(colMargin),
		Notes:        cell(colNotes),
	}
}

// IsValid reports whether the row describes a sellable product.
func (p Product) IsValid() bool {
	return p.ProductName != ""
}
