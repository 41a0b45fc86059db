// Package equipment sizes pumps, filters, and UV sterilizers from pond
// volume and bioload. The breakpoints are heuristic sizing rules, chosen to
// be deterministic and monotonic: more volume or more bioload never yields a
// smaller recommendation.
// This is part of the Functional Core - all functions are pure with no I/O.
package equipment

import (
	"errors"
	"math"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrNonPositiveVolume is returned when volume is zero or negative.
	ErrNonPositiveVolume = errors.New("pond volume must be positive")

	// ErrNegativeBioload is returned when bioload is negative.
	ErrNegativeBioload = errors.New("bioload cannot be negative")
)

// =============================================================================
// Sizing Constants
// =============================================================================

const (
	// turnoverHours is how often the pump should circulate the full pond.
	turnoverHours = 2.0

	// bioloadFlowStep is the flow increase per bioload point (10%).
	bioloadFlowStep = 0.10

	// Biological filter media: base percentage of pond volume plus one
	// percentage point per bioload point, capped.
	filterBasePercent = 5.0
	filterMaxPercent  = 15.0
)

// Bioload category breakpoints.
const (
	bioloadLight  = 5.0
	bioloadMedium = 15.0
	bioloadHeavy  = 30.0
)

// UV sterilizer watts-per-liter rates by bioload band.
const (
	uvRateLight  = 1.0 / 285.0
	uvRateMedium = 1.0 / 230.0
	uvRateHeavy  = 1.0 / 190.0
)

// =============================================================================
// Pump Sizing
// =============================================================================

// PumpSpec is a pump recommendation: the required flow rate and the bioload
// category it was sized for.
type PumpSpec struct {
	FlowLPH  int    `json:"flow_lph"`
	Category string `json:"category"`
}

// PumpSize sizes the pump from turnover and bioload: base flow circulates the
// pond every two hours, scaled up 10% per bioload point.
func PumpSize(volumeLiters, bioload float64) (PumpSpec, error) {
	if err := checkInputs(volumeLiters, bioload); err != nil {
		return PumpSpec{}, err
	}

	baseFlow := volumeLiters / turnoverHours
	flow := baseFlow * (1 + bioload*bioloadFlowStep)

	return PumpSpec{
		FlowLPH:  int(flow),
		Category: bioloadCategory(bioload),
	}, nil
}

// bioloadCategory bands a bioload value into a descriptive category.
func bioloadCategory(bioload float64) string {
	switch {
	case bioload <= bioloadLight:
		return "Light bioload"
	case bioload <= bioloadMedium:
		return "Medium bioload"
	case bioload <= bioloadHeavy:
		return "Heavy bioload"
	default:
		return "Very heavy bioload"
	}
}

// =============================================================================
// Filter Sizing
// =============================================================================

// FilterSize returns the biological filter media volume in liters: 5% of the
// pond volume plus one percentage point per bioload point, capped at 15%.
func FilterSize(volumeLiters, bioload float64) (float64, error) {
	if err := checkInputs(volumeLiters, bioload); err != nil {
		return 0, err
	}

	percent := math.Min(filterMaxPercent, filterBasePercent+bioload)
	return volumeLiters * percent / 100, nil
}

// UVWattage sizes the UV sterilizer. The watts-per-liter rate steps up with
// the bioload band, and a volume-band floor keeps small, heavily stocked
// ponds from being under-sized.
func UVWattage(volumeLiters, bioload float64) (int, error) {
	if err := checkInputs(volumeLiters, bioload); err != nil {
		return 0, err
	}

	var rate float64
	switch {
	case bioload <= 10:
		rate = uvRateLight
	case bioload <= 20:
		rate = uvRateMedium
	default:
		rate = uvRateHeavy
	}

	watts := volumeLiters * rate
	return int(math.Max(watts, uvFloorWatts(volumeLiters))), nil
}

// uvFloorWatts is the minimum wattage for a volume band.
func uvFloorWatts(volumeLiters float64) float64 {
	switch {
	case volumeLiters < 2000:
		return 5
	case volumeLiters < 10000:
		return 8
	case volumeLiters < 30000:
		return 13
	default:
		return 18
	}
}

// MechanicalFilter returns the pre-filter micron recommendation for a bioload
// band. Heavier bioloads need finer mechanical capture.
func MechanicalFilter(bioload float64) (string, error) {
	if bioload < 0 {
		return "", ErrNegativeBioload
	}

	switch {
	case bioload <= bioloadLight:
		return "Pre-filter with 100 micron capability", nil
	case bioload <= bioloadMedium:
		return "Pre-filter with 50-100 micron capability", nil
	default:
		return "Pre-filter with 50 micron capability", nil
	}
}

// checkInputs validates the shared volume and bioload preconditions.
func checkInputs(volumeLiters, bioload float64) error {
	if volumeLiters <= 0 {
		return ErrNonPositiveVolume
	}
	if bioload < 0 {
		return ErrNegativeBioload
	}
	return nil
}
