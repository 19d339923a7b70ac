package stock

// Stock status levels, ordered from healthy to exhausted.
const (
	StatusAdequate   = "adequate"
	StatusLow        = "low"
	StatusCritical   = "critical"
	StatusOutOfStock = "out_of_stock"
)

// Classify derives the stock status from the on-hand quantity. Thresholds
// are unit-agnostic: 10 strips of paracetamol and 10 vials of antivenom
// rank the same.
func Classify(quantity int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity < 10:
		return StatusCritical
	case quantity < 50:
		return StatusLow
	default:
		return StatusAdequate
	}
}
