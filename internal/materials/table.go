package materials

import (
	"fmt"
	"slices"
)

// catalog is an ordered, read-only index of records by id.
type catalog[T any] struct {
	order []T
	byID  map[string]T
}

func newCatalog[T any](id func(T) string, items ...T) catalog[T] {
	c := catalog[T]{order: items, byID: make(map[string]T, len(items))}
	for _, item := range items {
		c.byID[id(item)] = item
	}
	return c
}

func (c catalog[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c catalog[T]) all() []T {
	return slices.Clone(c.order)
}

// Table is the immutable set of coefficient tables. Build it once with
// Default and share it; no method mutates it.
type Table struct {
	bricks      catalog[BrickType]
	thicknesses catalog[WallThickness]
	brick       BrickSpec

	grades   catalog[ConcreteGrade]
	shapes   catalog[FoundationShape]
	concrete ConcreteSpec

	tiles    catalog[TileSize]
	patterns catalog[LayoutPattern]
	tile     TileSpec

	paints   catalog[PaintType]
	surfaces catalog[SurfaceType]
	paint    PaintSpec

	mortars catalog[MortarGrade]
	mortar  MortarSpec

	cementBagKg  float64
	reserveSteps []float64
}

// BrickType looks up a brick format.
func (t *Table) BrickType(id string) (BrickType, error) {
	if v, ok := t.bricks.get(id); ok {
		return v, nil
	}
	return BrickType{}, subTypeErr(Brick, "brick type", id)
}

// WallThickness looks up a masonry thickness.
func (t *Table) WallThickness(id string) (WallThickness, error) {
	if v, ok := t.thicknesses.get(id); ok {
		return v, nil
	}
	return WallThickness{}, subTypeErr(Brick, "wall thickness", id)
}

// ConcreteGrade looks up a concrete mix.
func (t *Table) ConcreteGrade(id string) (ConcreteGrade, error) {
	if v, ok := t.grades.get(id); ok {
		return v, nil
	}
	return ConcreteGrade{}, subTypeErr(Concrete, "grade", id)
}

// FoundationShape looks up a foundation shape.
func (t *Table) FoundationShape(id string) (FoundationShape, error) {
	if v, ok := t.shapes.get(id); ok {
		return v, nil
	}
	return FoundationShape{}, subTypeErr(Concrete, "foundation shape", id)
}

// TileSize looks up a tile format.
func (t *Table) TileSize(id string) (TileSize, error) {
	if v, ok := t.tiles.get(id); ok {
		return v, nil
	}
	return TileSize{}, subTypeErr(Tile, "tile size", id)
}

// LayoutPattern looks up a tile layout.
func (t *Table) LayoutPattern(id string) (LayoutPattern, error) {
	if v, ok := t.patterns.get(id); ok {
		return v, nil
	}
	return LayoutPattern{}, subTypeErr(Tile, "layout pattern", id)
}

// PaintType looks up a paint.
func (t *Table) PaintType(id string) (PaintType, error) {
	if v, ok := t.paints.get(id); ok {
		return v, nil
	}
	return PaintType{}, subTypeErr(Paint, "paint type", id)
}

// SurfaceType looks up a wall surface.
func (t *Table) SurfaceType(id string) (SurfaceType, error) {
	if v, ok := t.surfaces.get(id); ok {
		return v, nil
	}
	return SurfaceType{}, subTypeErr(Paint, "surface type", id)
}

// MortarGrade looks up a mortar mix.
func (t *Table) MortarGrade(id string) (MortarGrade, error) {
	if v, ok := t.mortars.get(id); ok {
		return v, nil
	}
	return MortarGrade{}, subTypeErr(Mortar, "grade", id)
}

// Lookup resolves the primary sub-type of a category. There is no fallback:
// an unknown id fails with ErrInvalidSubType.
func (t *Table) Lookup(c Category, subType string) (Coefficients, error) {
	switch c {
	case Brick:
		return t.BrickType(subType)
	case Concrete:
		return t.ConcreteGrade(subType)
	case Tile:
		return t.TileSize(subType)
	case Paint:
		return t.PaintType(subType)
	case Mortar:
		return t.MortarGrade(subType)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
}

func (t *Table) BrickSpec() BrickSpec       { return t.brick }
func (t *Table) ConcreteSpec() ConcreteSpec { return t.concrete }
func (t *Table) TileSpec() TileSpec         { return t.tile }
func (t *Table) MortarSpec() MortarSpec     { return t.mortar }

func (t *Table) PaintSpec() PaintSpec {
	spec := t.paint
	spec.ContainersL = slices.Clone(t.paint.ContainersL)
	return spec
}

// CementBagKg is the mass of one cement bag.
func (t *Table) CementBagKg() float64 { return t.cementBagKg }

// ReserveSteps returns the reserve percentages a caller may choose from.
func (t *Table) ReserveSteps() []float64 { return slices.Clone(t.reserveSteps) }

// IsReserveStep reports whether pct is one of ReserveSteps.
func (t *Table) IsReserveStep(pct float64) bool {
	return slices.Contains(t.reserveSteps, pct)
}

// WasteFactor returns the intrinsic loss fraction of a category.
func (t *Table) WasteFactor(c Category) float64 {
	switch c {
	case Brick:
		return t.brick.WasteFactor
	case Concrete:
		return t.concrete.WasteFactor
	case Tile:
		return t.tile.WasteFactor
	case Paint:
		return t.paint.WasteFactor
	case Mortar:
		return t.mortar.WasteFactor
	}
	return 0
}

// Options lists the selectable variants of a category keyed by selector name.
func (t *Table) Options(c Category) map[string][]Option {
	switch c {
	case Brick:
		return map[string][]Option{
			"brickType": mapOptions(t.bricks.all(), func(b BrickType) Option {
				return Option{ID: b.ID, Name: b.Name, Description: fmt.Sprintf("%s, %g pcs/m²", b.Size, b.PerM2)}
			}),
			"wallThickness": mapOptions(t.thicknesses.all(), func(w WallThickness) Option {
				return Option{ID: w.ID, Name: w.Label, Description: fmt.Sprintf("%d mm", w.WidthMM)}
			}),
		}
	case Concrete:
		return map[string][]Option{
			"grade": mapOptions(t.grades.all(), func(g ConcreteGrade) Option {
				return Option{ID: g.ID, Name: g.Name, Description: g.Usage}
			}),
			"foundationType": mapOptions(t.shapes.all(), func(s FoundationShape) Option {
				return Option{ID: s.ID, Name: s.Name}
			}),
		}
	case Tile:
		return map[string][]Option{
			"tileSize": mapOptions(t.tiles.all(), func(s TileSize) Option {
				return Option{ID: s.ID, Name: s.Name, Description: fmt.Sprintf("%d pcs/pack", s.PackSize)}
			}),
			"layoutPattern": mapOptions(t.patterns.all(), func(p LayoutPattern) Option {
				return Option{ID: p.ID, Name: p.Name, Description: fmt.Sprintf("%.0f%% cutting waste", p.WasteFactor*100)}
			}),
		}
	case Paint:
		return map[string][]Option{
			"paintType": mapOptions(t.paints.all(), func(p PaintType) Option {
				return Option{ID: p.ID, Name: p.Name, Description: fmt.Sprintf("%g g/m², %d layers", p.CoverageGPerM2, p.Layers)}
			}),
			"surfaceType": mapOptions(t.surfaces.all(), func(s SurfaceType) Option {
				return Option{ID: s.ID, Name: s.Name, Description: fmt.Sprintf("x%g", s.Factor)}
			}),
		}
	case Mortar:
		return map[string][]Option{
			"grade": mapOptions(t.mortars.all(), func(m MortarGrade) Option {
				return Option{ID: m.ID, Name: m.Name, Description: m.Usage}
			}),
		}
	}
	return nil
}

func mapOptions[T any](items []T, fn func(T) Option) []Option {
	out := make([]Option, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
