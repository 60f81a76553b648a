// Package format provides locale-aware number formatting for CLI and report
// output.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Number formats an integer with thousand separators.
// Example: Number(18248) returns "18,248".
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Kg rounds a kg CO2e value to the nearest integer and formats it with its
// unit. Example: Kg(2727.4) returns "2,727 kg CO₂e".
func Kg(v float64) string {
	return Number(int64(math.Round(v))) + " kg CO₂e"
}

// Percent formats an integer percentage. Example: Percent(61) returns "61%".
func Percent(p int) string {
	return printer.Sprintf("%d%%", p)
}
