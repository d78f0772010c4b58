package domain

// Quadrant is one of the four Eisenhower Matrix priority buckets
// derived from a task's urgent/important flags.
type Quadrant int

// Quadrant values and their meanings.
const (
	QuadrantDoNow     Quadrant = 1 // urgent and important
	QuadrantSchedule  Quadrant = 2 // important, not urgent
	QuadrantDelegate  Quadrant = 3 // urgent, not important
	QuadrantEliminate Quadrant = 4 // neither
)

// Classify maps an (urgent, important) flag pair to its quadrant.
// It is pure and total; every combination has exactly one quadrant.
func Classify(urgent, important bool) Quadrant {
	switch {
	case urgent && important:
		return QuadrantDoNow
	case !urgent && important:
		return QuadrantSchedule
	case urgent && !important:
		return QuadrantDelegate
	default:
		return QuadrantEliminate
	}
}

// IsValid reports whether q is one of the four defined quadrants.
func (q Quadrant) IsValid() bool {
	return q >= QuadrantDoNow && q <= QuadrantEliminate
}
