package calc

import (
	"github.com/Simplici0/stroycalc/internal/pricing"
)

// Mortar estimates cement, sand and water for a mortar batch.
func (e *Engine) Mortar(in MortarInput) (Result, error) {
	volume, err := in.volume()
	if err != nil {
		return nil, err
	}
	if err := e.checkReserve(in.ReservePct); err != nil {
		return nil, err
	}
	grade, err := e.Table.MortarGrade(in.Grade)
	if err != nil {
		return nil, err
	}
	spec := e.Table.MortarSpec()

	withWaste := volume * (1 + spec.WasteFactor)
	withReserve := withWaste * reserveMultiplier(in.ReservePct)
	cementKg := withReserve * grade.CementKg
	sandKg := withReserve * grade.SandKg

	r := MortarResult{
		Grade:             grade.ID,
		Volume:            volume,
		VolumeWithWaste:   withWaste,
		VolumeWithReserve: withReserve,
		CementKg:          cementKg,
		CementBags:        ceilCount(cementKg / e.Table.CementBagKg()),
		SandKg:            sandKg,
		WaterL:            withReserve * grade.WaterL,
	}
	r.Estimate = e.price(
		pricing.Item{Key: pricing.CementBag, Quantity: float64(r.CementBags)},
		pricing.Item{Key: pricing.SandTonne, Quantity: round2(sandKg / 1000)},
	)
	return r, nil
}
