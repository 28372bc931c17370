package normalize

import (
	"strings"

	"github.com/claude/healthdash/internal/models"
)

// JoulesPerKilocalorie is the conversion factor between the two energy units
// providers report.
const JoulesPerKilocalorie = 4184.0

// EnergyToKcal converts a tagged energy value to kilocalories. A
// pre-computed inKilocalories wins over value/unit. An unrecognized unit
// reports ok=false and the caller contributes zero.
func EnergyToKcal(e models.Energy) (kcal float64, ok bool) {
	if e.InKilocalories != nil {
		return *e.InKilocalories, true
	}
	switch strings.ToLower(strings.TrimSpace(e.Unit)) {
	case "kilocalories", "kcal":
		return e.Value, true
	case "joules", "j":
		return e.Value / JoulesPerKilocalorie, true
	case "kilojoules", "kj":
		return e.Value / (JoulesPerKilocalorie / 1000), true
	case "calories", "cal":
		return e.Value / 1000, true
	default:
		return 0, false
	}
}

// LengthToKm converts a tagged length value to kilometers.
func LengthToKm(l models.Length) (km float64, ok bool) {
	if l.InKilometers != nil {
		return *l.InKilometers, true
	}
	switch strings.ToLower(strings.TrimSpace(l.Unit)) {
	case "kilometers", "km":
		return l.Value, true
	case "meters", "m":
		return l.Value / 1000, true
	case "miles", "mi":
		return l.Value * 1.609344, true
	case "feet", "ft":
		return l.Value * 0.0003048, true
	default:
		return 0, false
	}
}
