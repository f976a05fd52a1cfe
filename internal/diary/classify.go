// Package diary holds the domain rules of the nutrition diary: derived-value
// comparison against a daily intake target, the default-intake invariant,
// day cloning and the referential deletion rules. Everything here runs
// against the GORM handle passed in by the caller.
package diary

// Band classifies how far an actual value deviates from its target.
type Band string

// Deviation bands ordered from heavy overshoot to heavy undershoot.
const (
	BandFarOver       Band = "far-over"
	BandSlightlyOver  Band = "slightly-over"
	BandOnTarget      Band = "on-target"
	BandSlightlyUnder Band = "slightly-under"
	BandFarUnder      Band = "far-under"
)

// Classify maps an actual value against a target value to a deviation band.
// The boolean is false when the target is zero or negative; classification is
// skipped then and the raw value should be presented unstyled.
//
// Boundary fractions resolve to the lower-severity band: 1.05 and 1.10 are
// not "over", 0.90 and 0.95 are not "under".
func Classify(actual, target float64) (Band, bool) {
	if target <= 0 {
		return BandOnTarget, false
	}

	fraction := actual / target
	switch {
	case fraction > 1.10:
		return BandFarOver, true
	case fraction > 1.05:
		return BandSlightlyOver, true
	case fraction < 0.90:
		return BandFarUnder, true
	case fraction < 0.95:
		return BandSlightlyUnder, true
	default:
		return BandOnTarget, true
	}
}
