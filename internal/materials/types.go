package materials

// Coefficients is implemented by every sub-type record a category is keyed by.
type Coefficients interface {
	SubTypeID() string
	DisplayName() string
}

// BrickType is a brick format with its laying consumption.
type BrickType struct {
	ID       string
	Name     string
	Size     string
	PerM2    float64
	PerM3    float64
	WeightKg float64
}

func (b BrickType) SubTypeID() string   { return b.ID }
func (b BrickType) DisplayName() string { return b.Name }

// WallThickness is a masonry thickness measured in bricks.
type WallThickness struct {
	ID      string
	Label   string
	Factor  float64
	WidthMM int
}

// ConcreteGrade is a concrete mix per cubic metre.
type ConcreteGrade struct {
	ID        string
	Name      string
	Class     string
	CementKg  float64
	SandKg    float64
	CrushedKg float64
	WaterL    float64
	Density   float64
	Usage     string
}

func (g ConcreteGrade) SubTypeID() string   { return g.ID }
func (g ConcreteGrade) DisplayName() string { return g.Name }

// FoundationShape selects the volume formula of a concrete foundation.
type FoundationShape struct {
	ID   string
	Name string
}

const (
	ShapeStrip  = "strip"
	ShapeSlab   = "slab"
	ShapeColumn = "column"
)

// TileSize is a ceramic tile format and how many tiles a pack holds.
type TileSize struct {
	ID       string
	Name     string
	AreaM2   float64
	PackSize int
}

func (t TileSize) SubTypeID() string   { return t.ID }
func (t TileSize) DisplayName() string { return t.Name }

// LayoutPattern carries the cutting waste of a tile layout.
type LayoutPattern struct {
	ID          string
	Name        string
	WasteFactor float64
}

// PaintType is a paint with its per-layer coverage.
type PaintType struct {
	ID             string
	Name           string
	CoverageGPerM2 float64
	Layers         int
	DryHours       float64
}

func (p PaintType) SubTypeID() string   { return p.ID }
func (p PaintType) DisplayName() string { return p.Name }

// SurfaceType scales paint consumption by surface roughness.
type SurfaceType struct {
	ID     string
	Name   string
	Factor float64
}

// MortarGrade is a cement-sand mortar per cubic metre.
type MortarGrade struct {
	ID       string
	Name     string
	CementKg float64
	SandKg   float64
	WaterL   float64
	Usage    string
}

func (m MortarGrade) SubTypeID() string   { return m.ID }
func (m MortarGrade) DisplayName() string { return m.Name }

// BrickSpec holds the scalar brick coefficients.
type BrickSpec struct {
	WasteFactor     float64
	// MortarPer1000M3 is mortar volume per 1000 bricks at a thickness factor of 1.
	MortarPer1000M3 float64
	MasonryMortar   string
	PerPallet       int
}

// ConcreteSpec holds the scalar concrete coefficients.
type ConcreteSpec struct {
	WasteFactor       float64
	StripWidthM       float64
	ColumnSideM       float64
	ColumnFootprintM2 float64
	MixerM3           float64
	PlasticizerPct    float64
	AntifreezePct     float64
}

// TileSpec holds the scalar tile coefficients.
type TileSpec struct {
	WasteFactor     float64
	AdhesiveKgPerM2 float64
	AdhesiveBagKg   float64
	SeamWidthMM     float64
	GroutDensity    float64
	GroutPackKg     float64
	SmallTileAreaM2 float64
	CrossesSmallM2  float64
	CrossesLargeM2  float64
	CrossesPerPack  int
}

// PaintSpec holds the scalar paint coefficients.
type PaintSpec struct {
	WasteFactor   float64
	DensityKgPerL float64
	ContainersL   []float64
	PrimerGPerM2  float64
	RollerAreaM2  float64
	TapeAreaM2    float64
	Brushes       int
	WorkM2PerHour float64
	DefaultWalls  int
}

// MortarSpec holds the scalar mortar coefficients.
type MortarSpec struct {
	WasteFactor float64
}

// Option is a selectable variant as exposed to callers listing the tables.
type Option struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
