package water

// Water safety statuses.
const (
	StatusSafe     = "safe"
	StatusModerate = "moderate"
	StatusUnsafe   = "unsafe"
)

// Classify returns the safety status for one reading. The unsafe conditions
// take precedence over the moderate ones: a reading that trips both is
// unsafe. Thresholds follow the program's field guidelines (TDS in ppm,
// turbidity in NTU, residual chlorine in mg/L).
func Classify(tds, ph, turbidity, chlorine float64) string {
	if tds > 1000 || ph < 6.5 || ph > 8.5 || turbidity > 5 || chlorine < 0.2 {
		return StatusUnsafe
	}
	if tds > 500 || turbidity > 2 {
		return StatusModerate
	}
	return StatusSafe
}
