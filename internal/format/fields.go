package format

import "github.com/Simplici0/stroycalc/internal/materials"

type kind int

const (
	kindDecimal kind = iota
	kindCount
	kindText
	kindPrice
)

type field struct {
	key       string
	label     string
	unit      string
	kind      kind
	highlight bool
}

func text(key, label string) field { return field{key: key, label: label, kind: kindText} }

func count(key, label, unit string) field {
	return field{key: key, label: label, unit: unit, kind: kindCount}
}

func dec(key, label, unit string) field {
	return field{key: key, label: label, unit: unit, kind: kindDecimal}
}

func hl(f field) field {
	f.highlight = true
	return f
}

var price = hl(field{key: "price", label: "Approximate cost", kind: kindPrice})

var brickFields = []field{
	text("brickType", "Brick type"),
	text("wallThickness", "Wall thickness, bricks"),
	dec("area", "Wall area", "m²"),
	dec("perM2", "Bricks per m²", "pcs"),
	count("quantity", "Bricks", "pcs"),
	count("quantityWithWaste", "Bricks with breakage", "pcs"),
	hl(count("quantityWithReserve", "Bricks to buy", "pcs")),
	count("waste", "Breakage allowance", "pcs"),
	count("reserve", "Reserve", "pcs"),
	dec("mortar", "Masonry mortar", "m³"),
	dec("cement", "Cement", "kg"),
	hl(count("cementBags", "Cement bags", "bags")),
	dec("sand", "Sand", "t"),
	dec("weight", "Brick weight", "t"),
	count("pallets", "Pallets", "pcs"),
	price,
}

var concreteFields = []field{
	text("foundationType", "Foundation type"),
	text("grade", "Concrete grade"),
	count("columns", "Columns", "pcs"),
	dec("volume", "Concrete volume", "m³"),
	dec("volumeWithWaste", "Volume with losses", "m³"),
	hl(dec("volumeWithReserve", "Concrete to order", "m³")),
	dec("cement", "Cement", "kg"),
	hl(count("cementBags", "Cement bags", "bags")),
	dec("sandKg", "Sand", "kg"),
	dec("crushed", "Crushed stone", "kg"),
	dec("water", "Water", "L"),
	dec("plasticizer", "Plasticizer", "kg"),
	dec("antifreeze", "Antifreeze additive", "kg"),
	count("mixers", "Mixer trucks", "pcs"),
	price,
}

var tileFields = []field{
	text("tileSize", "Tile size"),
	text("pattern", "Layout"),
	dec("area", "Surface area", "m²"),
	dec("areaWithWaste", "Area with cutting", "m²"),
	dec("areaWithReserve", "Area with reserve", "m²"),
	count("tilesNeeded", "Tiles needed", "pcs"),
	hl(count("packsNeeded", "Packs to buy", "packs")),
	count("tilesInPacks", "Tiles in packs", "pcs"),
	count("extraTiles", "Spare tiles", "pcs"),
	hl(dec("areaToOrder", "Area ordered", "m²")),
	dec("excessArea", "Excess area", "m²"),
	dec("adhesiveNeeded", "Tile adhesive", "kg"),
	count("adhesiveBags", "Adhesive bags", "bags"),
	dec("grout", "Grout", "kg"),
	count("groutBags", "Grout packs", "packs"),
	count("crosses", "Spacer crosses", "pcs"),
	count("crossesPacks", "Cross packs", "packs"),
	price,
}

var paintFields = []field{
	text("paintType", "Paint type"),
	text("surfaceType", "Surface"),
	dec("area", "Painted area", "m²"),
	count("layers", "Layers", ""),
	dec("paintNeeded", "Paint", "kg"),
	dec("paintWithWaste", "Paint with losses", "kg"),
	dec("paintWithReserve", "Paint with reserve", "kg"),
	hl(dec("liters", "Paint volume", "L")),
	hl(text("containers", "Containers")),
	dec("containerLiters", "Volume in containers", "L"),
	dec("primerNeeded", "Primer", "kg"),
	count("rollersNeeded", "Rollers", "pcs"),
	count("brushesNeeded", "Brushes", "pcs"),
	count("tapeRolls", "Masking tape", "rolls"),
	count("workHours", "Work time", "h"),
	dec("dryingTime", "Drying time", "h"),
	price,
}

var mortarFields = []field{
	text("grade", "Mortar grade"),
	dec("volume", "Mortar volume", "m³"),
	dec("volumeWithWaste", "Volume with losses", "m³"),
	hl(dec("volumeWithReserve", "Mortar to mix", "m³")),
	dec("cement", "Cement", "kg"),
	hl(count("cementBags", "Cement bags", "bags")),
	dec("sandKg", "Sand", "kg"),
	dec("water", "Water", "L"),
	price,
}

var dictionary = map[materials.Category][]field{
	materials.Brick:    brickFields,
	materials.Concrete: concreteFields,
	materials.Tile:     tileFields,
	materials.Paint:    paintFields,
	materials.Mortar:   mortarFields,
}
