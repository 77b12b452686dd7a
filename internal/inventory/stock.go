// Package inventory classifies plant stock levels against their restock
// threshold.
package inventory

type StockStatus string

const (
	StockOut  StockStatus = "out"
	StockLow  StockStatus = "low"
	StockGood StockStatus = "good"
)

// Classify is total over all ints: stock at or below zero is out, stock at or
// below the threshold is low, anything above is good.
func Classify(currentStock, minThreshold int) StockStatus {
	switch {
	case currentStock <= 0:
		return StockOut
	case currentStock <= minThreshold:
		return StockLow
	default:
		return StockGood
	}
}

// NeedsRestock reports whether the plant belongs in the low-stock view.
func NeedsRestock(currentStock, minThreshold int) bool {
	return Classify(currentStock, minThreshold) != StockGood
}

// Label is the badge text shown next to a plant.
func (s StockStatus) Label() string {
	switch s {
	case StockOut:
		return "Out of Stock"
	case StockLow:
		return "Low Stock"
	case StockGood:
		return "In Stock"
	}
	return ""
}

// BecameLow reports a transition from good into low or out. There is no
// hysteresis, so the result depends only on the two stock values.
func BecameLow(before, after StockStatus) bool {
	return before == StockGood && after != StockGood
}
