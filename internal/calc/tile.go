package calc

import (
	"github.com/Simplici0/stroycalc/internal/pricing"
)

// Tile estimates tiles, packs, adhesive, grout and spacer crosses for a
// surface. Cutting waste is the layout pattern's share plus the intrinsic
// tile waste.
func (e *Engine) Tile(in TileInput) (Result, error) {
	area, err := in.area()
	if err != nil {
		return nil, err
	}
	if err := e.checkReserve(in.ReservePct); err != nil {
		return nil, err
	}
	size, err := e.Table.TileSize(in.TileSize)
	if err != nil {
		return nil, err
	}
	pattern, err := e.Table.LayoutPattern(in.LayoutPattern)
	if err != nil {
		return nil, err
	}
	spec := e.Table.TileSpec()

	withWaste := area * (1 + pattern.WasteFactor + spec.WasteFactor)
	withReserve := withWaste * reserveMultiplier(in.ReservePct)

	tiles := ceilCount(withReserve / size.AreaM2)
	packs := ceilDiv(tiles, size.PackSize)
	inPacks := packs * size.PackSize
	ordered := float64(inPacks) * size.AreaM2

	adhesiveKg := withReserve * spec.AdhesiveKgPerM2
	groutKg := area * spec.SeamWidthMM / 1000 * 2 * spec.GroutDensity
	perM2 := spec.CrossesLargeM2
	if size.AreaM2 < spec.SmallTileAreaM2 {
		perM2 = spec.CrossesSmallM2
	}
	crosses := ceilCount(area * perM2)

	r := TileResult{
		TileSize:        size.ID,
		Pattern:         pattern.ID,
		Area:            area,
		AreaWithWaste:   withWaste,
		AreaWithReserve: withReserve,
		Tiles:           tiles,
		Packs:           packs,
		TilesInPacks:    inPacks,
		ExtraTiles:      inPacks - tiles,
		OrderedArea:     ordered,
		ExcessArea:      ordered - withReserve,
		AdhesiveKg:      adhesiveKg,
		AdhesiveBags:    ceilCount(adhesiveKg / spec.AdhesiveBagKg),
		GroutKg:         groutKg,
		GroutPacks:      ceilCount(groutKg / spec.GroutPackKg),
		Crosses:         crosses,
		CrossPacks:      ceilDiv(crosses, spec.CrossesPerPack),
	}
	r.Estimate = e.price(
		pricing.Item{Key: pricing.TileM2, Quantity: round2(ordered)},
		pricing.Item{Key: pricing.TileAdhesive, Quantity: float64(r.AdhesiveBags)},
		pricing.Item{Key: pricing.TileGrout, Quantity: float64(r.GroutPacks)},
		pricing.Item{Key: pricing.TileCrosses, Quantity: float64(r.CrossPacks)},
	)
	return r, nil
}
