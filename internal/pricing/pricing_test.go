package pricing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEqualDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, want %s", name, got, want)
	}
}

func TestCalculate_WeightedSumRoundsUp(t *testing.T) {
	list := Default()

	est := list.Calculate(
		Item{Key: Key("brick", "single"), Quantity: 1125},
		Item{Key: CementBag, Quantity: 3},
		Item{Key: SandTonne, Quantity: 0.44},
	)

	// 1125*12 + 3*350 + 0.44*800 = 13500 + 1050 + 352 = 14902
	mustEqualDecimal(t, "total", est.Totals.Total, "14902")
	require.Len(t, est.Breakdown, 3)
	mustEqualDecimal(t, "brick amount", est.Breakdown[0].Amount, "13500")
	assert.Empty(t, est.Missing)
}

func TestCalculate_FractionalTotalIsCeiled(t *testing.T) {
	list := NewPriceList("RUB", Entry{Key: "x", Price: decimal.RequireFromString("10")})

	est := list.Calculate(Item{Key: "x", Quantity: 1.01})

	mustEqualDecimal(t, "total", est.Totals.Total, "11")
}

func TestCalculate_UnknownKeyIsReportedAndPricedAtZero(t *testing.T) {
	est := Default().Calculate(Item{Key: "glass.m2", Quantity: 4}, Item{Key: TileM2, Quantity: 2})

	mustEqualDecimal(t, "total", est.Totals.Total, "900")
	assert.Equal(t, []string{"glass.m2"}, est.Missing)
}

func TestCalculate_NoItems(t *testing.T) {
	est := Default().Calculate()
	assert.True(t, est.Totals.Total.IsZero())
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	base := Default()
	updated := base.With(map[string]decimal.Decimal{CementBag: decimal.NewFromInt(400)})

	p, _ := base.Price(CementBag)
	mustEqualDecimal(t, "base cement", p, "350")
	p, _ = updated.Price(CementBag)
	mustEqualDecimal(t, "updated cement", p, "400")
}

func TestDecodeOverrides(t *testing.T) {
	doc, prices, err := DecodeOverrides(strings.NewReader(`
currency: EUR
prices:
  brick.single: 0.45
  cement.bag: "9"
`))
	require.NoError(t, err)
	assert.Equal(t, "EUR", doc.Currency)
	require.Len(t, prices, 2)
	mustEqualDecimal(t, "brick", prices["brick.single"], "0.45")
	mustEqualDecimal(t, "cement", prices[CementBag], "9")
}

func TestDecodeOverrides_Rejects(t *testing.T) {
	tests := map[string]string{
		"non numeric": "prices:\n  cement.bag: cheap\n",
		"negative":    "prices:\n  cement.bag: -1\n",
		"malformed":   "prices: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeOverrides(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestDecodeOverrides_EmptyDocument(t *testing.T) {
	_, prices, err := DecodeOverrides(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestLoadOverridesFile_Missing(t *testing.T) {
	_, prices, err := LoadOverridesFile(t.TempDir() + "/absent.yaml")
	require.NoError(t, err)
	assert.Empty(t, prices)
}
