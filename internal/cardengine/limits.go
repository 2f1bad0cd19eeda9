package cardengine

import "math"

// LimitWarningLevel bands a card's limit utilization.
type LimitWarningLevel string

const (
	LimitSafe     LimitWarningLevel = "SAFE"
	LimitWarning  LimitWarningLevel = "WARNING"
	LimitDanger   LimitWarningLevel = "DANGER"
	LimitCritical LimitWarningLevel = "CRITICAL"
)

// WarningLevelForUtilization maps a utilization percentage to a warning
// level: WARNING from 70%, DANGER from 90%, CRITICAL from 100%.
func WarningLevelForUtilization(utilizationPercent float64) LimitWarningLevel {
	switch {
	case utilizationPercent >= 100:
		return LimitCritical
	case utilizationPercent >= 90:
		return LimitDanger
	case utilizationPercent >= 70:
		return LimitWarning
	default:
		return LimitSafe
	}
}

// AvailableLimit is the credit left on the card, never negative. An
// over-limit card reports zero; the overage shows up as utilization
// above 100.
func AvailableLimit(totalLimit, debt float64) float64 {
	return math.Max(totalLimit-debt, 0)
}
