package pricing

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Price keys shared by calculators. Keys of sub-typed goods are built with Key.
const (
	CementBag     = "cement.bag"
	SandTonne     = "sand.tonne"
	TileM2        = "tile.m2"
	TileAdhesive  = "tile.adhesive_bag"
	TileGrout     = "tile.grout_pack"
	TileCrosses   = "tile.cross_pack"
	PaintPrimerKg = "paint.primer_kg"
	PaintRoller   = "paint.roller"
	PaintBrush    = "paint.brush"
	PaintTape     = "paint.tape"
)

// DefaultCurrency is the ISO code of the built-in prices.
const DefaultCurrency = "RUB"

// Key builds the price key of a sub-typed good, e.g. Key("brick", "single").
func Key(category, subType string) string {
	return category + "." + subType
}

// Entry is a single priced good.
type Entry struct {
	Key   string
	Unit  string
	Price decimal.Decimal
}

// DefaultEntries returns the built-in approximate market prices.
func DefaultEntries() []Entry {
	e := func(key, unit string, price int64) Entry {
		return Entry{Key: key, Unit: unit, Price: decimal.NewFromInt(price)}
	}
	return []Entry{
		e(Key("brick", "single"), "pc", 12),
		e(Key("brick", "oneAndHalf"), "pc", 14),
		e(Key("brick", "double"), "pc", 18),
		e(Key("concrete", "m100"), "m3", 3200),
		e(Key("concrete", "m200"), "m3", 3500),
		e(Key("concrete", "m300"), "m3", 3800),
		e(Key("concrete", "m400"), "m3", 4200),
		e(Key("concrete", "m500"), "m3", 4800),
		e(CementBag, "bag", 350),
		e(SandTonne, "t", 800),
		e(TileM2, "m2", 450),
		e(TileAdhesive, "bag", 400),
		e(TileGrout, "pack", 300),
		e(TileCrosses, "pack", 50),
		e(Key("paint", "water"), "l", 300),
		e(Key("paint", "acrylic"), "l", 450),
		e(Key("paint", "latex"), "l", 600),
		e(Key("paint", "silicone"), "l", 800),
		e(PaintPrimerKg, "kg", 200),
		e(PaintRoller, "pc", 300),
		e(PaintBrush, "pc", 150),
		e(PaintTape, "roll", 100),
	}
}

// PriceList maps price keys to unit prices. The zero value has no prices.
type PriceList struct {
	Currency string
	prices   map[string]decimal.Decimal
}

// NewPriceList builds a price list from entries; later entries win.
func NewPriceList(currency string, entries ...Entry) PriceList {
	p := PriceList{Currency: currency, prices: make(map[string]decimal.Decimal, len(entries))}
	for _, entry := range entries {
		p.prices[entry.Key] = entry.Price
	}
	return p
}

// Default returns the built-in price list.
func Default() PriceList {
	return NewPriceList(DefaultCurrency, DefaultEntries()...)
}

// Price returns the unit price of key.
func (p PriceList) Price(key string) (decimal.Decimal, bool) {
	v, ok := p.prices[key]
	return v, ok
}

// With returns a copy with overrides applied.
func (p PriceList) With(overrides map[string]decimal.Decimal) PriceList {
	out := PriceList{Currency: p.Currency, prices: maps.Clone(p.prices)}
	if out.prices == nil {
		out.prices = make(map[string]decimal.Decimal, len(overrides))
	}
	maps.Copy(out.prices, overrides)
	return out
}

// Keys returns the priced keys in sorted order.
func (p PriceList) Keys() []string {
	return slices.Sorted(maps.Keys(p.prices))
}

// Item is a purchased quantity of one priced good.
type Item struct {
	Key      string
	Quantity float64
}

// LineItem is the priced form of an Item.
type LineItem struct {
	Key       string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

// Totals contains roll-up values of an estimate.
type Totals struct {
	Total decimal.Decimal
}

// Estimate groups the priced lines and totals. Estimates are always
// approximate: prices are indicative and unknown keys price at zero.
type Estimate struct {
	Breakdown []LineItem
	Missing   []string
	Totals    Totals
}

// Calculate computes the weighted sum of unit prices over items. The total is
// rounded up to a whole currency unit.
func (p PriceList) Calculate(items ...Item) Estimate {
	est := Estimate{Breakdown: make([]LineItem, 0, len(items))}
	total := decimal.Zero

	for _, item := range items {
		unit, ok := p.Price(item.Key)
		if !ok {
			est.Missing = append(est.Missing, item.Key)
			continue
		}
		qty := decimal.NewFromFloat(item.Quantity)
		amount := qty.Mul(unit)
		total = total.Add(amount)
		est.Breakdown = append(est.Breakdown, LineItem{
			Key:       item.Key,
			Quantity:  qty,
			UnitPrice: unit,
			Amount:    amount,
		})
	}

	est.Totals.Total = total.Ceil()
	return est
}
