package calc

import (
	"github.com/Simplici0/stroycalc/internal/materials"
	"github.com/Simplici0/stroycalc/internal/pricing"
)

// Paint estimates paint, primer and tools for the walls of a room.
func (e *Engine) Paint(in PaintInput) (Result, error) {
	spec := e.Table.PaintSpec()
	area, err := paintArea(in, spec.DefaultWalls)
	if err != nil {
		return nil, err
	}
	if in.Layers < 0 {
		return nil, inputErr("layers", "must be greater than zero")
	}
	if err := e.checkReserve(in.ReservePct); err != nil {
		return nil, err
	}
	pt, err := e.Table.PaintType(in.PaintType)
	if err != nil {
		return nil, err
	}
	surface, err := e.Table.SurfaceType(in.SurfaceType)
	if err != nil {
		return nil, err
	}

	layers := pt.Layers
	if in.Layers > 0 {
		layers = in.Layers
	}

	kg := area * pt.CoverageGPerM2 * surface.Factor / 1000 * float64(layers)
	withWaste := kg * (1 + spec.WasteFactor)
	withReserve := withWaste * reserveMultiplier(in.ReservePct)
	liters := withReserve / spec.DensityKgPerL

	containers, total := packContainers(liters, spec.ContainersL)

	r := PaintResult{
		PaintType:          pt.ID,
		SurfaceType:        surface.ID,
		Area:               area,
		Layers:             layers,
		PaintKg:            kg,
		PaintKgWithWaste:   withWaste,
		PaintKgWithReserve: withReserve,
		Liters:             liters,
		Containers:         containers,
		ContainerLiters:    total,
		PrimerKg:           area * spec.PrimerGPerM2 / 1000,
		Rollers:            ceilCount(area / spec.RollerAreaM2),
		Brushes:            spec.Brushes,
		TapeRolls:          ceilCount(area / spec.TapeAreaM2),
		WorkHours:          ceilCount(area * float64(layers) / spec.WorkM2PerHour),
		DryingHours:        pt.DryHours * float64(layers),
	}
	r.Estimate = e.price(
		pricing.Item{Key: pricing.Key(string(materials.Paint), pt.ID), Quantity: total},
		pricing.Item{Key: pricing.PaintPrimerKg, Quantity: round2(r.PrimerKg)},
		pricing.Item{Key: pricing.PaintRoller, Quantity: float64(r.Rollers)},
		pricing.Item{Key: pricing.PaintBrush, Quantity: float64(r.Brushes)},
		pricing.Item{Key: pricing.PaintTape, Quantity: float64(r.TapeRolls)},
	)
	return r, nil
}

func paintArea(in PaintInput, defaultWalls int) (float64, error) {
	if in.Mode != ModeDimensions {
		return planeArea(in.Mode, in.Area, "", 0, "", 0)
	}
	walls := in.Walls
	if walls == 0 {
		walls = defaultWalls
	}
	if walls < 0 {
		return 0, inputErr("walls", "must be greater than zero")
	}
	if err := positive("length", in.Length); err != nil {
		return 0, err
	}
	if err := positive("height", in.Height); err != nil {
		return 0, err
	}
	return in.Length * float64(walls) * in.Height, nil
}

// packContainers fills liters greedily from the largest container down. The
// smallest size absorbs the remainder, so the packed volume never falls
// short of liters.
func packContainers(liters float64, sizes []float64) ([]Container, float64) {
	var (
		out       []Container
		total     float64
		remaining = liters
	)
	for i, size := range sizes {
		if remaining <= countTolerance {
			break
		}
		var n int
		if i == len(sizes)-1 {
			n = ceilCount(remaining / size)
		} else {
			n = floorCount(remaining / size)
		}
		if n == 0 {
			continue
		}
		out = append(out, Container{SizeL: size, Count: n})
		total += float64(n) * size
		remaining -= float64(n) * size
	}
	return out, total
}
