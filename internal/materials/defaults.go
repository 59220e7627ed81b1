package materials

// Default builds the reference tables. Values follow GOST 530-2012 (brick),
// GOST 26633-2015 (concrete), GOST 6787-2001 (tile), GOST 28196-89 (paint)
// and GOST 28013-98 (mortar).
func Default() *Table {
	return &Table{
		bricks: newCatalog(BrickType.SubTypeID,
			BrickType{ID: "single", Name: "Single (1NF)", Size: "250×120×65 mm", PerM2: 51, PerM3: 394, WeightKg: 3.5},
			BrickType{ID: "oneAndHalf", Name: "One-and-a-half (1.4NF)", Size: "250×120×88 mm", PerM2: 39, PerM3: 302, WeightKg: 4.2},
			BrickType{ID: "double", Name: "Double (2.1NF)", Size: "250×120×138 mm", PerM2: 26, PerM3: 200, WeightKg: 5.4},
		),
		thicknesses: newCatalog(func(w WallThickness) string { return w.ID },
			WallThickness{ID: "0.5", Label: "0.5 brick", Factor: 0.5, WidthMM: 120},
			WallThickness{ID: "1", Label: "1 brick", Factor: 1, WidthMM: 250},
			WallThickness{ID: "1.5", Label: "1.5 bricks", Factor: 1.5, WidthMM: 380},
			WallThickness{ID: "2", Label: "2 bricks", Factor: 2, WidthMM: 510},
			WallThickness{ID: "2.5", Label: "2.5 bricks", Factor: 2.5, WidthMM: 640},
		),
		brick: BrickSpec{
			WasteFactor:     0.05,
			MortarPer1000M3: 0.25,
			MasonryMortar:   "m100",
			PerPallet:       350,
		},

		grades: newCatalog(ConcreteGrade.SubTypeID,
			ConcreteGrade{ID: "m100", Name: "M100 (B7.5)", Class: "B7.5", CementKg: 170, SandKg: 755, CrushedKg: 1150, WaterL: 185, Density: 2350, Usage: "Blinding, preparatory works"},
			ConcreteGrade{ID: "m200", Name: "M200 (B15)", Class: "B15", CementKg: 250, SandKg: 700, CrushedKg: 1200, WaterL: 180, Density: 2380, Usage: "Low-rise foundations"},
			ConcreteGrade{ID: "m300", Name: "M300 (B22.5)", Class: "B22.5", CementKg: 300, SandKg: 650, CrushedKg: 1250, WaterL: 175, Density: 2400, Usage: "Monolithic structures"},
			ConcreteGrade{ID: "m400", Name: "M400 (B30)", Class: "B30", CementKg: 400, SandKg: 600, CrushedKg: 1300, WaterL: 170, Density: 2430, Usage: "Hydraulic structures"},
			ConcreteGrade{ID: "m500", Name: "M500 (B40)", Class: "B40", CementKg: 500, SandKg: 550, CrushedKg: 1350, WaterL: 165, Density: 2450, Usage: "Special structures"},
		),
		shapes: newCatalog(func(s FoundationShape) string { return s.ID },
			FoundationShape{ID: ShapeStrip, Name: "Strip foundation"},
			FoundationShape{ID: ShapeSlab, Name: "Slab foundation"},
			FoundationShape{ID: ShapeColumn, Name: "Column foundation"},
		),
		concrete: ConcreteSpec{
			WasteFactor:       0.03,
			StripWidthM:       0.4,
			ColumnSideM:       0.4,
			ColumnFootprintM2: 9,
			MixerM3:           7,
			PlasticizerPct:    0.5,
			AntifreezePct:     2.0,
		},

		tiles: newCatalog(TileSize.SubTypeID,
			TileSize{ID: "20x20", Name: "200×200 mm", AreaM2: 0.04, PackSize: 25},
			TileSize{ID: "25x25", Name: "250×250 mm", AreaM2: 0.0625, PackSize: 16},
			TileSize{ID: "30x30", Name: "300×300 mm", AreaM2: 0.09, PackSize: 11},
			TileSize{ID: "33x33", Name: "330×330 mm", AreaM2: 0.1089, PackSize: 9},
			TileSize{ID: "40x40", Name: "400×400 mm", AreaM2: 0.16, PackSize: 7},
			TileSize{ID: "45x45", Name: "450×450 mm", AreaM2: 0.2025, PackSize: 5},
			TileSize{ID: "60x60", Name: "600×600 mm", AreaM2: 0.36, PackSize: 4},
		),
		patterns: newCatalog(func(p LayoutPattern) string { return p.ID },
			LayoutPattern{ID: "straight", Name: "Straight", WasteFactor: 0.05},
			LayoutPattern{ID: "diagonal", Name: "Diagonal", WasteFactor: 0.15},
			LayoutPattern{ID: "herringbone", Name: "Herringbone", WasteFactor: 0.10},
			LayoutPattern{ID: "offset", Name: "Offset", WasteFactor: 0.07},
		),
		tile: TileSpec{
			WasteFactor:     0.10,
			AdhesiveKgPerM2: 4.5,
			AdhesiveBagKg:   25,
			SeamWidthMM:     3,
			GroutDensity:    1.6,
			GroutPackKg:     2,
			SmallTileAreaM2: 0.1,
			CrossesSmallM2:  50,
			CrossesLargeM2:  30,
			CrossesPerPack:  100,
		},

		paints: newCatalog(PaintType.SubTypeID,
			PaintType{ID: "water", Name: "Water-based VD-AK", CoverageGPerM2: 150, Layers: 2, DryHours: 2},
			PaintType{ID: "acrylic", Name: "Acrylic", CoverageGPerM2: 120, Layers: 2, DryHours: 4},
			PaintType{ID: "latex", Name: "Latex", CoverageGPerM2: 100, Layers: 1, DryHours: 3},
			PaintType{ID: "silicone", Name: "Silicone", CoverageGPerM2: 110, Layers: 2, DryHours: 6},
		),
		surfaces: newCatalog(func(s SurfaceType) string { return s.ID },
			SurfaceType{ID: "smooth", Name: "Smooth", Factor: 1.0},
			SurfaceType{ID: "textured", Name: "Textured", Factor: 1.15},
			SurfaceType{ID: "rough", Name: "Rough", Factor: 1.3},
			SurfaceType{ID: "porous", Name: "Porous", Factor: 1.4},
		),
		paint: PaintSpec{
			WasteFactor:   0.10,
			DensityKgPerL: 1.5,
			ContainersL:   []float64{10, 2.5},
			PrimerGPerM2:  100,
			RollerAreaM2:  40,
			TapeAreaM2:    20,
			Brushes:       2,
			WorkM2PerHour: 10,
			DefaultWalls:  4,
		},

		mortars: newCatalog(MortarGrade.SubTypeID,
			MortarGrade{ID: "m50", Name: "M50", CementKg: 220, SandKg: 1680, WaterL: 340, Usage: "Partition masonry"},
			MortarGrade{ID: "m75", Name: "M75", CementKg: 270, SandKg: 1650, WaterL: 330, Usage: "Wall masonry"},
			MortarGrade{ID: "m100", Name: "M100", CementKg: 340, SandKg: 1550, WaterL: 320, Usage: "Load-bearing masonry"},
			MortarGrade{ID: "m150", Name: "M150", CementKg: 450, SandKg: 1400, WaterL: 300, Usage: "Plastering"},
		),
		mortar: MortarSpec{WasteFactor: 0.03},

		cementBagKg:  50,
		reserveSteps: []float64{0, 5, 10, 15, 20},
	}
}
