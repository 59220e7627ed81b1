package calc

import (
	"math"

	"github.com/Simplici0/stroycalc/internal/materials"
)

// Mode selects how the base quantity is obtained.
type Mode string

const (
	ModeArea       Mode = "area"
	ModeVolume     Mode = "volume"
	ModeDimensions Mode = "dimensions"
)

// Input is implemented by the typed input of every category.
type Input interface {
	Category() materials.Category
	// Params returns the normalized input as a flat map for persistence.
	Params() map[string]any
}

// BrickInput describes a brick wall.
type BrickInput struct {
	Mode          Mode
	Area          float64
	Length        float64
	Height        float64
	BrickType     string
	WallThickness string
	ReservePct    float64
}

func (BrickInput) Category() materials.Category { return materials.Brick }

func (in BrickInput) Params() map[string]any {
	p := map[string]any{
		"mode":          string(modeOr(in.Mode, ModeArea)),
		"brickType":     in.BrickType,
		"wallThickness": in.WallThickness,
		"reserveFactor": in.ReservePct,
	}
	if in.Mode == ModeDimensions {
		p["length"], p["height"] = in.Length, in.Height
	} else {
		p["area"] = in.Area
	}
	return p
}

func (in BrickInput) area() (float64, error) {
	return planeArea(in.Mode, in.Area, "length", in.Length, "height", in.Height)
}

// ConcreteInput describes a foundation.
type ConcreteInput struct {
	Length         float64
	Width          float64
	Depth          float64
	FoundationType string
	Grade          string
	Winter         bool
	ReservePct     float64
}

func (ConcreteInput) Category() materials.Category { return materials.Concrete }

func (in ConcreteInput) Params() map[string]any {
	return map[string]any{
		"length":         in.Length,
		"width":          in.Width,
		"depth":          in.Depth,
		"foundationType": in.FoundationType,
		"grade":          in.Grade,
		"winter":         in.Winter,
		"reserveFactor":  in.ReservePct,
	}
}

// TileInput describes a floor or wall to tile.
type TileInput struct {
	Mode          Mode
	Area          float64
	Length        float64
	Width         float64
	TileSize      string
	LayoutPattern string
	ReservePct    float64
}

func (TileInput) Category() materials.Category { return materials.Tile }

func (in TileInput) Params() map[string]any {
	p := map[string]any{
		"mode":          string(modeOr(in.Mode, ModeArea)),
		"tileSize":      in.TileSize,
		"layoutPattern": in.LayoutPattern,
		"reserveFactor": in.ReservePct,
	}
	if in.Mode == ModeDimensions {
		p["length"], p["width"] = in.Length, in.Width
	} else {
		p["area"] = in.Area
	}
	return p
}

func (in TileInput) area() (float64, error) {
	return planeArea(in.Mode, in.Area, "length", in.Length, "width", in.Width)
}

// PaintInput describes the walls of a room to paint. In dimensions mode the
// area is wall length × number of walls × wall height.
type PaintInput struct {
	Mode        Mode
	Area        float64
	Length      float64
	Height      float64
	Walls       int
	PaintType   string
	SurfaceType string
	// Layers overrides the paint's default layer count when positive.
	Layers      int
	ReservePct  float64
}

func (PaintInput) Category() materials.Category { return materials.Paint }

func (in PaintInput) Params() map[string]any {
	p := map[string]any{
		"mode":          string(modeOr(in.Mode, ModeArea)),
		"paintType":     in.PaintType,
		"surfaceType":   in.SurfaceType,
		"reserveFactor": in.ReservePct,
	}
	if in.Layers > 0 {
		p["layers"] = in.Layers
	}
	if in.Mode == ModeDimensions {
		p["length"], p["height"], p["walls"] = in.Length, in.Height, in.Walls
	} else {
		p["area"] = in.Area
	}
	return p
}

// MortarInput describes a cement-sand mortar batch.
type MortarInput struct {
	Mode       Mode
	Volume     float64
	Length     float64
	Width      float64
	Height     float64
	Grade      string
	ReservePct float64
}

func (MortarInput) Category() materials.Category { return materials.Mortar }

func (in MortarInput) Params() map[string]any {
	p := map[string]any{
		"mode":          string(modeOr(in.Mode, ModeVolume)),
		"grade":         in.Grade,
		"reserveFactor": in.ReservePct,
	}
	if in.Mode == ModeDimensions {
		p["length"], p["width"], p["height"] = in.Length, in.Width, in.Height
	} else {
		p["volume"] = in.Volume
	}
	return p
}

func (in MortarInput) volume() (float64, error) {
	switch in.Mode {
	case ModeVolume, "":
		if err := positive("volume", in.Volume); err != nil {
			return 0, err
		}
		return in.Volume, nil
	case ModeDimensions:
		if err := positive("length", in.Length); err != nil {
			return 0, err
		}
		if err := positive("width", in.Width); err != nil {
			return 0, err
		}
		if err := positive("height", in.Height); err != nil {
			return 0, err
		}
		return in.Length * in.Width * in.Height, nil
	default:
		return 0, inputErr("mode", "must be volume or dimensions")
	}
}

func modeOr(m, def Mode) Mode {
	if m == "" {
		return def
	}
	return m
}

// planeArea resolves the m² base of an area-based category in either mode.
func planeArea(mode Mode, area float64, aName string, a float64, bName string, b float64) (float64, error) {
	switch mode {
	case ModeArea, "":
		if err := positive("area", area); err != nil {
			return 0, err
		}
		return area, nil
	case ModeDimensions:
		if err := positive(aName, a); err != nil {
			return 0, err
		}
		if err := positive(bName, b); err != nil {
			return 0, err
		}
		return a * b, nil
	default:
		return 0, inputErr("mode", "must be area or dimensions")
	}
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return inputErr(field, "must be a number")
	}
	if v <= 0 {
		return inputErr(field, "must be greater than zero")
	}
	return nil
}
