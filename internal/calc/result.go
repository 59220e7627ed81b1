package calc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Simplici0/stroycalc/internal/materials"
)

// Result is the tagged union of calculator outputs: BrickResult,
// ConcreteResult, TileResult, PaintResult or MortarResult.
type Result interface {
	Category() materials.Category
	// Values flattens the result for persistence. Continuous values are
	// rounded to two decimals; counts are integers.
	Values() map[string]any
	isResult()
}

// Estimate is the approximate cost attached to every result.
type Estimate struct {
	Price decimal.Decimal
	// PriceApproximate is always true: prices are indicative market averages.
	PriceApproximate bool
}

func approx(price decimal.Decimal) Estimate {
	return Estimate{Price: price, PriceApproximate: true}
}

func (e Estimate) put(v map[string]any) map[string]any {
	v["price"] = e.Price.InexactFloat64()
	v["priceApproximate"] = e.PriceApproximate
	return v
}

// BrickResult is the output of the brick wall calculator.
type BrickResult struct {
	Estimate
	BrickType           string
	WallThickness       string
	Area                float64
	PerM2               float64
	Quantity            int
	QuantityWithWaste   int
	QuantityWithReserve int
	Waste               int
	Reserve             int
	MortarM3            float64
	CementKg            float64
	CementBags          int
	SandTonnes          float64
	WeightTonnes        float64
	Pallets             int
}

func (BrickResult) Category() materials.Category { return materials.Brick }
func (BrickResult) isResult()                    {}

func (r BrickResult) Values() map[string]any {
	return r.put(map[string]any{
		"brickType":           r.BrickType,
		"wallThickness":       r.WallThickness,
		"area":             round2(r.Area),
		"perM2":               round2(r.PerM2),
		"quantity":            r.Quantity,
		"quantityWithWaste":   r.QuantityWithWaste,
		"quantityWithReserve": r.QuantityWithReserve,
		"waste":               r.Waste,
		"reserve":             r.Reserve,
		"mortar":              round2(r.MortarM3),
		"cement":              round2(r.CementKg),
		"cementBags":          r.CementBags,
		"sand":                round2(r.SandTonnes),
		"weight":              round2(r.WeightTonnes),
		"pallets":             r.Pallets,
	})
}

// ConcreteResult is the output of the foundation calculator.
type ConcreteResult struct {
	Estimate
	FoundationType    string
	Grade             string
	Columns           int
	Volume            float64
	VolumeWithWaste   float64
	VolumeWithReserve float64
	CementKg          float64
	CementBags        int
	SandKg            float64
	CrushedKg         float64
	WaterL            float64
	PlasticizerKg     float64
	AntifreezeKg      float64
	Mixers            int
}

func (ConcreteResult) Category() materials.Category { return materials.Concrete }
func (ConcreteResult) isResult()                    {}

func (r ConcreteResult) Values() map[string]any {
	v := map[string]any{
		"foundationType":    r.FoundationType,
		"grade":             r.Grade,
		"volume":            round2(r.Volume),
		"volumeWithWaste":   round2(r.VolumeWithWaste),
		"volumeWithReserve": round2(r.VolumeWithReserve),
		"cement":            round2(r.CementKg),
		"cementBags":        r.CementBags,
		"sandKg":            round2(r.SandKg),
		"crushed":           round2(r.CrushedKg),
		"water":             round2(r.WaterL),
		"plasticizer":       round2(r.PlasticizerKg),
		"mixers":            r.Mixers,
	}
	if r.Columns > 0 {
		v["columns"] = r.Columns
	}
	if r.AntifreezeKg > 0 {
		v["antifreeze"] = round2(r.AntifreezeKg)
	}
	return r.put(v)
}

// TileResult is the output of the tile calculator. OrderedArea can exceed
// AreaWithReserve because tiles are sold in whole packs; the difference is
// ExcessArea.
type TileResult struct {
	Estimate
	TileSize        string
	Pattern         string
	Area            float64
	AreaWithWaste   float64
	AreaWithReserve float64
	Tiles           int
	Packs           int
	TilesInPacks    int
	ExtraTiles      int
	OrderedArea     float64
	ExcessArea      float64
	AdhesiveKg      float64
	AdhesiveBags    int
	GroutKg         float64
	GroutPacks      int
	Crosses         int
	CrossPacks      int
}

func (TileResult) Category() materials.Category { return materials.Tile }
func (TileResult) isResult()                    {}

func (r TileResult) Values() map[string]any {
	return r.put(map[string]any{
		"tileSize":        r.TileSize,
		"pattern":         r.Pattern,
		"area":             round2(r.Area),
		"areaWithWaste":    round2(r.AreaWithWaste),
		"areaWithReserve":  round2(r.AreaWithReserve),
		"tilesNeeded":     r.Tiles,
		"packsNeeded":     r.Packs,
		"tilesInPacks":    r.TilesInPacks,
		"extraTiles":      r.ExtraTiles,
		"areaToOrder":      round2(r.OrderedArea),
		"excessArea":      round2(r.ExcessArea),
		"adhesiveNeeded":  round2(r.AdhesiveKg),
		"adhesiveBags":    r.AdhesiveBags,
		"grout":           round2(r.GroutKg),
		"groutBags":       r.GroutPacks,
		"crosses":         r.Crosses,
		"crossesPacks":    r.CrossPacks,
	})
}

// Container is a count of paint containers of one size.
type Container struct {
	SizeL float64
	Count int
}

// PaintResult is the output of the paint calculator.
type PaintResult struct {
	Estimate
	PaintType          string
	SurfaceType        string
	Area               float64
	Layers             int
	PaintKg            float64
	PaintKgWithWaste   float64
	PaintKgWithReserve float64
	Liters             float64
	Containers         []Container
	ContainerLiters    float64
	PrimerKg           float64
	Rollers            int
	Brushes            int
	TapeRolls          int
	WorkHours          int
	DryingHours        float64
}

func (PaintResult) Category() materials.Category { return materials.Paint }
func (PaintResult) isResult()                    {}

func (r PaintResult) Values() map[string]any {
	return r.put(map[string]any{
		"paintType":        r.PaintType,
		"surfaceType":      r.SurfaceType,
		"area":             round2(r.Area),
		"layers":           r.Layers,
		"paintNeeded":      round2(r.PaintKg),
		"paintWithWaste":   round2(r.PaintKgWithWaste),
		"paintWithReserve": round2(r.PaintKgWithReserve),
		"liters":           round2(r.Liters),
		"containers":       describeContainers(r.Containers),
		"containerLiters":  round2(r.ContainerLiters),
		"primerNeeded":     round2(r.PrimerKg),
		"rollersNeeded":    r.Rollers,
		"brushesNeeded":    r.Brushes,
		"tapeRolls":        r.TapeRolls,
		"workHours":        r.WorkHours,
		"dryingTime":       round2(r.DryingHours),
	})
}

// Count returns the number of containers of the given size.
func (r PaintResult) Count(sizeL float64) int {
	for _, c := range r.Containers {
		if c.SizeL == sizeL {
			return c.Count
		}
	}
	return 0
}

func describeContainers(cs []Container) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, fmt.Sprintf("%d×%g L", c.Count, c.SizeL))
	}
	return strings.Join(parts, " + ")
}

// MortarResult is the output of the mortar calculator.
type MortarResult struct {
	Estimate
	Grade             string
	Volume            float64
	VolumeWithWaste   float64
	VolumeWithReserve float64
	CementKg          float64
	CementBags        int
	SandKg            float64
	WaterL            float64
}

func (MortarResult) Category() materials.Category { return materials.Mortar }
func (MortarResult) isResult()                    {}

func (r MortarResult) Values() map[string]any {
	return r.put(map[string]any{
		"grade":             r.Grade,
		"volume":            round2(r.Volume),
		"volumeWithWaste":   round2(r.VolumeWithWaste),
		"volumeWithReserve": round2(r.VolumeWithReserve),
		"cement":            round2(r.CementKg),
		"cementBags":        r.CementBags,
		"sandKg":            round2(r.SandKg),
		"water":             round2(r.WaterL),
	})
}
