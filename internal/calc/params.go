package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Simplici0/stroycalc/internal/materials"
)

// Defaults applied by ParseParams when a modifier is not given. The primary
// sub-type of a category (brickType, grade, tileSize, paintType) has no
// default.
const (
	DefaultWallThickness  = "0.5"
	DefaultFoundationType = materials.ShapeStrip
	DefaultLayoutPattern  = "straight"
	DefaultSurfaceType    = "smooth"
)

// ParseParams builds the typed input of category from a flat string map, as
// posted by a form or stored in history. Decimal commas are accepted.
func ParseParams(category materials.Category, params map[string]string) (Input, error) {
	p := paramReader(params)
	switch category {
	case materials.Brick:
		mode, err := p.mode(ModeArea, "area", "length")
		if err != nil {
			return nil, err
		}
		in := BrickInput{
			Mode:          mode,
			BrickType:     p.str("brickType", ""),
			WallThickness: p.str("wallThickness", DefaultWallThickness),
		}
		if mode == ModeDimensions {
			in.Length, in.Height, err = p.pair("length", "height")
		} else {
			in.Area, err = p.required("area")
		}
		if err != nil {
			return nil, err
		}
		in.ReservePct, err = p.reserve()
		return in, err

	case materials.Concrete:
		in := ConcreteInput{
			FoundationType: p.str("foundationType", DefaultFoundationType),
			Grade:          p.str("grade", ""),
		}
		var err error
		if in.Length, in.Width, err = p.pair("length", "width"); err != nil {
			return nil, err
		}
		depthKey := "depth"
		if p.get("depth") == "" && p.get("height") != "" {
			depthKey = "height"
		}
		if in.Depth, err = p.required(depthKey); err != nil {
			return nil, err
		}
		if in.Winter, err = p.flag("winter"); err != nil {
			return nil, err
		}
		in.ReservePct, err = p.reserve()
		return in, err

	case materials.Tile:
		mode, err := p.mode(ModeArea, "area", "length")
		if err != nil {
			return nil, err
		}
		in := TileInput{
			Mode:          mode,
			TileSize:      p.str("tileSize", ""),
			LayoutPattern: p.str("layoutPattern", DefaultLayoutPattern),
		}
		if mode == ModeDimensions {
			in.Length, in.Width, err = p.pair("length", "width")
		} else {
			in.Area, err = p.required("area")
		}
		if err != nil {
			return nil, err
		}
		in.ReservePct, err = p.reserve()
		return in, err

	case materials.Paint:
		mode, err := p.mode(ModeArea, "area", "length")
		if err != nil {
			return nil, err
		}
		in := PaintInput{
			Mode:        mode,
			PaintType:   p.str("paintType", ""),
			SurfaceType: p.str("surfaceType", DefaultSurfaceType),
		}
		if mode == ModeDimensions {
			if in.Length, in.Height, err = p.pair("length", "height"); err != nil {
				return nil, err
			}
			if in.Walls, err = p.count("walls"); err != nil {
				return nil, err
			}
		} else if in.Area, err = p.required("area"); err != nil {
			return nil, err
		}
		if in.Layers, err = p.count("layers"); err != nil {
			return nil, err
		}
		in.ReservePct, err = p.reserve()
		return in, err

	case materials.Mortar:
		mode, err := p.mode(ModeVolume, "volume", "length")
		if err != nil {
			return nil, err
		}
		in := MortarInput{Mode: mode, Grade: p.str("grade", "")}
		if mode == ModeDimensions {
			if in.Length, in.Width, err = p.pair("length", "width"); err != nil {
				return nil, err
			}
			in.Height, err = p.required("height")
		} else {
			in.Volume, err = p.required("volume")
		}
		if err != nil {
			return nil, err
		}
		in.ReservePct, err = p.reserve()
		return in, err
	}
	return nil, fmt.Errorf("%w: %q", materials.ErrUnknownCategory, string(category))
}

type paramReader map[string]string

func (p paramReader) get(key string) string {
	return strings.TrimSpace(p[key])
}

func (p paramReader) str(key, def string) string {
	if v := p.get(key); v != "" {
		return v
	}
	return def
}

// mode returns the explicit mode, or infers it from which base field is
// present.
func (p paramReader) mode(def Mode, baseKey, dimKey string) (Mode, error) {
	switch raw := Mode(p.get("mode")); raw {
	case "":
		if p.get(baseKey) == "" && p.get(dimKey) != "" {
			return ModeDimensions, nil
		}
		return def, nil
	case def, ModeDimensions:
		return raw, nil
	default:
		return "", inputErr("mode", fmt.Sprintf("must be %s or %s", def, ModeDimensions))
	}
}

func (p paramReader) number(key string) (float64, bool, error) {
	raw := p.get(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true, inputErr(key, "must be a number")
	}
	return v, true, nil
}

func (p paramReader) required(key string) (float64, error) {
	v, ok, err := p.number(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, inputErr(key, "is required")
	}
	return v, nil
}

func (p paramReader) pair(a, b string) (float64, float64, error) {
	x, err := p.required(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := p.required(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// count parses an optional whole number; absent means zero.
func (p paramReader) count(key string) (int, error) {
	v, ok, err := p.number(key)
	if err != nil || !ok {
		return 0, err
	}
	if v <= 0 {
		return 0, inputErr(key, "must be greater than zero")
	}
	if v != math.Trunc(v) {
		return 0, inputErr(key, "must be a whole number")
	}
	return int(v), nil
}

func (p paramReader) reserve() (float64, error) {
	v, _, err := p.number("reserveFactor")
	return v, err
}

func (p paramReader) flag(key string) (bool, error) {
	switch strings.ToLower(p.get(key)) {
	case "", "0", "false", "off", "no":
		return false, nil
	case "1", "true", "on", "yes":
		return true, nil
	default:
		return false, inputErr(key, "must be a boolean")
	}
}
