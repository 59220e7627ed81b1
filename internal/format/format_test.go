package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Simplici0/stroycalc/internal/calc"
	"github.com/Simplici0/stroycalc/internal/materials"
	"github.com/Simplici0/stroycalc/internal/pricing"
)

func sampleResults(t *testing.T) []calc.Result {
	t.Helper()
	e := calc.New(materials.Default(), pricing.Default())
	inputs := []calc.Input{
		calc.BrickInput{Area: 20, BrickType: "single", WallThickness: "1", ReservePct: 5},
		calc.ConcreteInput{Length: 6, Width: 6, Depth: 1, FoundationType: "column", Grade: "m200", Winter: true},
		calc.TileInput{Area: 12, TileSize: "30x30", LayoutPattern: "straight", ReservePct: 10},
		calc.PaintInput{Area: 50, PaintType: "water", SurfaceType: "smooth"},
		calc.MortarInput{Volume: 2, Grade: "m100"},
	}
	out := make([]calc.Result, 0, len(inputs))
	for _, in := range inputs {
		r, err := e.Run(in)
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func byKey(lines []Line) map[string]Line {
	m := make(map[string]Line, len(lines))
	for _, l := range lines {
		m[l.Key] = l
	}
	return m
}

func TestDictionaryCoversEveryResultField(t *testing.T) {
	for _, r := range sampleResults(t) {
		known := make(map[string]bool)
		for _, fd := range dictionary[r.Category()] {
			known[fd.key] = true
		}
		for key := range r.Values() {
			if key == "priceApproximate" {
				continue
			}
			assert.True(t, known[key], "%s: no display entry for %q", r.Category(), key)
		}
	}
}

func TestBrickLines(t *testing.T) {
	f := New(language.English, "RUB")
	lines := byKey(f.Lines(sampleResults(t)[0]))

	assert.Equal(t, "1,125 pcs", lines["quantityWithReserve"].Value)
	assert.True(t, lines["quantityWithReserve"].Highlighted)
	assert.Equal(t, "0.28 m³", lines["mortar"].Value)
	assert.Equal(t, "single", lines["brickType"].Value)
	assert.Equal(t, "~14,552 ₽ (approx.)", lines["price"].Value)
	assert.True(t, lines["price"].Highlighted)
	assert.NotContains(t, lines, "priceApproximate")
}

func TestLinesFollowDictionaryOrder(t *testing.T) {
	f := New(language.English, "RUB")
	lines := f.Lines(sampleResults(t)[4])
	require.NotEmpty(t, lines)
	assert.Equal(t, "grade", lines[0].Key)
	assert.Equal(t, "price", lines[len(lines)-1].Key)
}

func TestPaintContainersLine(t *testing.T) {
	f := New(language.English, "RUB")
	lines := byKey(f.Lines(sampleResults(t)[3]))
	assert.Equal(t, "1×10 L + 1×2.5 L", lines["containers"].Value)
	assert.Equal(t, "11.00 L", lines["liters"].Value)
}

func TestValuesFromHistory(t *testing.T) {
	f := New(language.English, "EUR")
	// Numbers read back from JSON are float64; unknown keys are dropped.
	lines := f.Values(materials.Tile, map[string]any{
		"tilesNeeded":     169.0,
		"areaWithReserve": 15.18,
		"legacyField":     "x",
		"price":           8928.0,
	})

	require.Len(t, lines, 3)
	got := byKey(lines)
	assert.Equal(t, "169 pcs", got["tilesNeeded"].Value)
	assert.Equal(t, "15.18 m²", got["areaWithReserve"].Value)
	assert.Equal(t, "~8,928 € (approx.)", got["price"].Value)
	assert.NotContains(t, got, "legacyField")
}

func TestValuesSkipsMistypedAndUnknownCategory(t *testing.T) {
	f := New(language.English, "RUB")
	assert.Empty(t, f.Values("glass", map[string]any{"price": 1.0}))
	assert.Empty(t, f.Values(materials.Brick, map[string]any{"quantity": "many", "brickType": 3}))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "1,234,567 $", New(language.English, "USD").Price(1234566.2))
	assert.Equal(t, "10 CHF", New(language.English, "CHF").Price(10))
}
