// Package format maps calculation results to display lines.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Simplici0/stroycalc/internal/calc"
	"github.com/Simplici0/stroycalc/internal/materials"
)

// Line is one displayable field of a result.
type Line struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Unit        string `json:"unit,omitempty"`
	Value       string `json:"value"`
	Highlighted bool   `json:"highlighted,omitempty"`
}

// Formatter renders values with locale-aware digit grouping.
type Formatter struct {
	printer  *message.Printer
	currency string
}

func New(tag language.Tag, currency string) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag), currency: currency}
}

// Lines renders a fresh result. Every result type has a dictionary; a field
// without an entry is not shown.
func (f *Formatter) Lines(r calc.Result) []Line {
	var fields []field
	switch r.(type) {
	case calc.BrickResult:
		fields = brickFields
	case calc.ConcreteResult:
		fields = concreteFields
	case calc.TileResult:
		fields = tileFields
	case calc.PaintResult:
		fields = paintFields
	case calc.MortarResult:
		fields = mortarFields
	default:
		return nil
	}
	return f.render(fields, r.Values())
}

// Values renders a persisted result, such as one read back from history.
// Unknown keys and unknown categories render nothing.
func (f *Formatter) Values(category materials.Category, values map[string]any) []Line {
	return f.render(dictionary[category], values)
}

func (f *Formatter) render(fields []field, values map[string]any) []Line {
	lines := make([]Line, 0, len(fields))
	for _, fd := range fields {
		v, ok := values[fd.key]
		if !ok {
			continue
		}
		text, ok := f.value(fd, v)
		if !ok {
			continue
		}
		lines = append(lines, Line{
			Key:         fd.key,
			Label:       fd.label,
			Unit:        fd.unit,
			Value:       text,
			Highlighted: fd.highlight,
		})
	}
	return lines
}

func (f *Formatter) value(fd field, v any) (string, bool) {
	if fd.kind == kindText {
		s, ok := v.(string)
		return s, ok && s != ""
	}
	n, ok := number(v)
	if !ok {
		return "", false
	}
	switch fd.kind {
	case kindCount:
		return f.withUnit(f.printer.Sprintf("%d", int64(math.Ceil(n))), fd.unit), true
	case kindPrice:
		return "~" + f.Price(n) + " (approx.)", true
	default:
		return f.withUnit(f.printer.Sprintf("%.2f", n), fd.unit), true
	}
}

// Price renders an amount in whole currency units with its symbol.
func (f *Formatter) Price(amount float64) string {
	return f.printer.Sprintf("%d", int64(math.Ceil(amount))) + " " + currencySymbol(f.currency)
}

func (f *Formatter) withUnit(s, unit string) string {
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// number accepts the numeric types a result holds before and after a JSON
// round trip.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	}
	return 0, false
}

func currencySymbol(code string) string {
	switch code {
	case "RUB", "":
		return "₽"
	case "EUR":
		return "€"
	case "USD":
		return "$"
	}
	return code
}
