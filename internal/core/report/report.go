// Package report renders the pond planning report from values the
// calculators already produced. It performs no computation of its own:
// formatting and rounding happen here and nowhere else.
// This is part of the Functional Core - all functions are pure with no I/O.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
	"github.com/PartTimeLegend/pond-planner/internal/core/equipment"
)

// =============================================================================
// Report Data
// =============================================================================

// StockLine is one species entry of the current stock, resolved to its
// display name.
type StockLine struct {
	Name     string
	Quantity int
}

// Data carries everything the report needs, precomputed by the planner.
type Data struct {
	Dimensions        domain.PondDimensions
	ShapeName         string
	VolumeLiters      float64
	Stock             []StockLine
	RequiredLiters    float64
	Bioload           float64
	Adequate          bool
	Pump              equipment.PumpSpec
	FilterMediaLiters float64
	UVWatts           int
	MechanicalFilter  string
	Recommendations   map[string]int
}

// =============================================================================
// Rendering
// =============================================================================

// Render formats the full pond planning report.
func Render(d Data) string {
	var b strings.Builder

	b.WriteString("POND PLANNING REPORT\n")
	b.WriteString("====================\n\n")

	b.WriteString("Pond Specifications:\n")
	fmt.Fprintf(&b, "- Dimensions: %gm x %gm x %gm\n",
		d.Dimensions.LengthM, d.Dimensions.WidthM, d.Dimensions.DepthM)
	fmt.Fprintf(&b, "- Shape: %s\n", d.ShapeName)
	fmt.Fprintf(&b, "- Total Volume: %.0f liters\n", d.VolumeLiters)

	b.WriteString("\nCurrent Fish Stock:\n")
	if len(d.Stock) == 0 {
		b.WriteString("- No fish currently stocked\n")
	} else {
		for _, line := range d.Stock {
			fmt.Fprintf(&b, "- %s: %d fish\n", line.Name, line.Quantity)
		}

		b.WriteString("\nStocking Analysis:\n")
		fmt.Fprintf(&b, "- Required Volume: %.0f liters\n", d.RequiredLiters)
		fmt.Fprintf(&b, "- Available Volume: %.0f liters\n", d.VolumeLiters)
		if d.Adequate {
			b.WriteString("- Status: Adequate\n")
		} else {
			b.WriteString("- Status: Overstocked\n")
		}
		fmt.Fprintf(&b, "- Total Bioload: %.1f\n", d.Bioload)
	}

	b.WriteString("\nEquipment Recommendations:\n")
	fmt.Fprintf(&b, "- Pump Size: %d LPH (%s)\n", d.Pump.FlowLPH, d.Pump.Category)
	fmt.Fprintf(&b, "- Biological Filter: %.0f liters filter media\n", d.FilterMediaLiters)
	fmt.Fprintf(&b, "- UV Sterilizer: %d watts\n", d.UVWatts)
	fmt.Fprintf(&b, "- Mechanical Filter: %s\n", d.MechanicalFilter)

	b.WriteString("\nMaximum Stocking Recommendations:\n")
	names := make([]string, 0, len(d.Recommendations))
	for name := range d.Recommendations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %d fish max\n", name, d.Recommendations[name])
	}

	return b.String()
}
