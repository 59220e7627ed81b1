package calc

import (
	"github.com/Simplici0/stroycalc/internal/materials"
	"github.com/Simplici0/stroycalc/internal/pricing"
)

// Concrete estimates a foundation pour. Length and width are the outer
// dimensions of the building; depth is the foundation depth (or slab
// thickness).
func (e *Engine) Concrete(in ConcreteInput) (Result, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"length", in.Length}, {"width", in.Width}, {"depth", in.Depth}} {
		if err := positive(f.name, f.v); err != nil {
			return nil, err
		}
	}
	if err := e.checkReserve(in.ReservePct); err != nil {
		return nil, err
	}
	grade, err := e.Table.ConcreteGrade(in.Grade)
	if err != nil {
		return nil, err
	}
	shape, err := e.Table.FoundationShape(in.FoundationType)
	if err != nil {
		return nil, err
	}
	spec := e.Table.ConcreteSpec()

	var volume float64
	var columns int
	switch shape.ID {
	case materials.ShapeStrip:
		volume = 2 * (in.Length + in.Width) * in.Depth * spec.StripWidthM
	case materials.ShapeSlab:
		volume = in.Length * in.Width * in.Depth
	case materials.ShapeColumn:
		columns = ceilCount(in.Length * in.Width / spec.ColumnFootprintM2)
		volume = float64(columns) * spec.ColumnSideM * spec.ColumnSideM * in.Depth
	}

	withWaste := volume * (1 + spec.WasteFactor)
	withReserve := withWaste * reserveMultiplier(in.ReservePct)
	cementKg := withReserve * grade.CementKg

	r := ConcreteResult{
		FoundationType:    shape.ID,
		Grade:             grade.ID,
		Columns:           columns,
		Volume:            volume,
		VolumeWithWaste:   withWaste,
		VolumeWithReserve: withReserve,
		CementKg:          cementKg,
		CementBags:        ceilCount(cementKg / e.Table.CementBagKg()),
		SandKg:            withReserve * grade.SandKg,
		CrushedKg:         withReserve * grade.CrushedKg,
		WaterL:            withReserve * grade.WaterL,
		PlasticizerKg:     cementKg * spec.PlasticizerPct / 100,
		Mixers:            ceilCount(withReserve / spec.MixerM3),
	}
	if in.Winter {
		r.AntifreezeKg = cementKg * spec.AntifreezePct / 100
	}
	r.Estimate = e.price(pricing.Item{
		Key:      pricing.Key(string(materials.Concrete), grade.ID),
		Quantity: round2(withReserve),
	})
	return r, nil
}
