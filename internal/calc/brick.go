package calc

import (
	"github.com/Simplici0/stroycalc/internal/materials"
	"github.com/Simplici0/stroycalc/internal/pricing"
)

// Brick estimates bricks, masonry mortar and pallets for a wall. Each stage
// (quantity, waste, reserve) is rounded up on its own before the next one is
// applied.
func (e *Engine) Brick(in BrickInput) (Result, error) {
	area, err := in.area()
	if err != nil {
		return nil, err
	}
	if err := e.checkReserve(in.ReservePct); err != nil {
		return nil, err
	}
	bt, err := e.Table.BrickType(in.BrickType)
	if err != nil {
		return nil, err
	}
	thickness, err := e.Table.WallThickness(in.WallThickness)
	if err != nil {
		return nil, err
	}
	spec := e.Table.BrickSpec()
	mortar, err := e.Table.MortarGrade(spec.MasonryMortar)
	if err != nil {
		return nil, err
	}

	perM2 := bt.PerM2 * thickness.Factor
	quantity := ceilCount(area * perM2)
	withWaste := ceilCount(float64(quantity) * (1 + spec.WasteFactor))
	withReserve := ceilCount(float64(withWaste) * reserveMultiplier(in.ReservePct))

	mortarM3 := float64(withReserve) / 1000 * spec.MortarPer1000M3 * thickness.Factor
	cementKg := mortarM3 * mortar.CementKg
	sandT := mortarM3 * mortar.SandKg / 1000

	r := BrickResult{
		BrickType:           bt.ID,
		WallThickness:       thickness.ID,
		Area:                area,
		PerM2:               perM2,
		Quantity:            quantity,
		QuantityWithWaste:   withWaste,
		QuantityWithReserve: withReserve,
		Waste:               withWaste - quantity,
		Reserve:             withReserve - withWaste,
		MortarM3:            mortarM3,
		CementKg:            cementKg,
		CementBags:          ceilCount(cementKg / e.Table.CementBagKg()),
		SandTonnes:          sandT,
		WeightTonnes:        float64(withReserve) * bt.WeightKg / 1000,
		Pallets:             ceilDiv(withReserve, spec.PerPallet),
	}
	r.Estimate = e.price(
		pricing.Item{Key: pricing.Key(string(materials.Brick), bt.ID), Quantity: float64(withReserve)},
		pricing.Item{Key: pricing.CementBag, Quantity: float64(r.CementBags)},
		pricing.Item{Key: pricing.SandTonne, Quantity: round2(sandT)},
	)
	return r, nil
}
