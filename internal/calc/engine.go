package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Simplici0/stroycalc/internal/materials"
	"github.com/Simplici0/stroycalc/internal/pricing"
)

// Engine runs the calculators against one set of coefficient tables and
// prices. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	Table  *materials.Table
	Prices pricing.PriceList
}

func New(table *materials.Table, prices pricing.PriceList) *Engine {
	if table == nil {
		table = materials.Default()
	}
	return &Engine{Table: table, Prices: prices}
}

// Calculate parses the flat string parameters of category and runs its
// calculator.
func (e *Engine) Calculate(category materials.Category, params map[string]string) (Result, error) {
	in, err := ParseParams(category, params)
	if err != nil {
		return nil, err
	}
	return e.Run(in)
}

// Run dispatches a typed input to its calculator.
func (e *Engine) Run(in Input) (Result, error) {
	switch v := in.(type) {
	case BrickInput:
		return e.Brick(v)
	case ConcreteInput:
		return e.Concrete(v)
	case TileInput:
		return e.Tile(v)
	case PaintInput:
		return e.Paint(v)
	case MortarInput:
		return e.Mortar(v)
	default:
		return nil, fmt.Errorf("%w: %T", materials.ErrUnknownCategory, in)
	}
}

func (e *Engine) checkReserve(pct float64) error {
	if e.Table.IsReserveStep(pct) {
		return nil
	}
	steps := e.Table.ReserveSteps()
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = strconv.FormatFloat(s, 'f', -1, 64)
	}
	return inputErr("reserveFactor", "must be one of "+strings.Join(parts, ", "))
}

func (e *Engine) price(items ...pricing.Item) Estimate {
	est := e.Prices.Calculate(items...)
	return approx(est.Totals.Total)
}
