// Package materials holds the reference coefficient tables used by the
// calculation engine: consumption per unit, weights, pack sizes and the
// intrinsic waste factor of every material category.
package materials

import "fmt"

// Category identifies a material calculator.
type Category string

const (
	Brick    Category = "brick"
	Concrete Category = "concrete"
	Tile     Category = "tile"
	Paint    Category = "paint"
	Mortar   Category = "mortar"
)

// Categories lists every supported category in display order.
func Categories() []Category {
	return []Category{Brick, Concrete, Tile, Paint, Mortar}
}

// ParseCategory maps a raw identifier to a Category.
func ParseCategory(raw string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
}

func (c Category) String() string { return string(c) }
