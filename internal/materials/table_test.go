package materials

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownSubTypes(t *testing.T) {
	table := Default()

	tests := []struct {
		category Category
		subType  string
		name     string
	}{
		{Brick, "single", "Single (1NF)"},
		{Concrete, "m200", "M200 (B15)"},
		{Tile, "30x30", "300×300 mm"},
		{Paint, "acrylic", "Acrylic"},
		{Mortar, "m100", "M100"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			c, err := table.Lookup(tt.category, tt.subType)
			require.NoError(t, err)
			assert.Equal(t, tt.subType, c.SubTypeID())
			assert.Equal(t, tt.name, c.DisplayName())
		})
	}
}

func TestLookupUnknownSubTypeHasNoFallback(t *testing.T) {
	table := Default()

	for _, c := range Categories() {
		_, err := table.Lookup(c, "nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSubType)

		var subErr *SubTypeError
		require.True(t, errors.As(err, &subErr))
		assert.Equal(t, c, subErr.Category)
		assert.Equal(t, "nope", subErr.SubType)
	}
}

func TestLookupUnknownCategory(t *testing.T) {
	_, err := Default().Lookup(Category("glass"), "x")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCoefficientRecords(t *testing.T) {
	table := Default()

	brick, err := table.BrickType("single")
	require.NoError(t, err)
	assert.Equal(t, 51.0, brick.PerM2)
	assert.Equal(t, 0.05, table.BrickSpec().WasteFactor)

	tile, err := table.TileSize("30x30")
	require.NoError(t, err)
	assert.Equal(t, 0.09, tile.AreaM2)
	assert.Equal(t, 11, tile.PackSize)

	pattern, err := table.LayoutPattern("diagonal")
	require.NoError(t, err)
	assert.Equal(t, 0.15, pattern.WasteFactor)

	_, err = table.WallThickness("3")
	assert.ErrorIs(t, err, ErrInvalidSubType)
	_, err = table.FoundationShape("ring")
	assert.ErrorIs(t, err, ErrInvalidSubType)
	_, err = table.SurfaceType("glossy")
	assert.ErrorIs(t, err, ErrInvalidSubType)
}

func TestEveryCategoryHasIntrinsicWaste(t *testing.T) {
	table := Default()
	for _, c := range Categories() {
		assert.Greater(t, table.WasteFactor(c), 0.0, "category %s", c)
	}
}

func TestTableAccessorsDoNotExposeInternals(t *testing.T) {
	table := Default()

	steps := table.ReserveSteps()
	steps[0] = 99
	assert.True(t, table.IsReserveStep(0))
	assert.False(t, table.IsReserveStep(99))

	spec := table.PaintSpec()
	spec.ContainersL[0] = 1
	assert.Equal(t, 10.0, table.PaintSpec().ContainersL[0])
}

func TestReserveSteps(t *testing.T) {
	table := Default()
	assert.Equal(t, []float64{0, 5, 10, 15, 20}, table.ReserveSteps())
	assert.False(t, table.IsReserveStep(7))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("tile")
	require.NoError(t, err)
	assert.Equal(t, Tile, c)

	_, err = ParseCategory("wallpaper")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestOptionsCoverEverySelector(t *testing.T) {
	table := Default()
	assert.Len(t, table.Options(Brick)["brickType"], 3)
	assert.Len(t, table.Options(Brick)["wallThickness"], 5)
	assert.Len(t, table.Options(Concrete)["grade"], 5)
	assert.Len(t, table.Options(Concrete)["foundationType"], 3)
	assert.Len(t, table.Options(Tile)["tileSize"], 7)
	assert.Len(t, table.Options(Tile)["layoutPattern"], 4)
	assert.Len(t, table.Options(Paint)["paintType"], 4)
	assert.Len(t, table.Options(Paint)["surfaceType"], 4)
	assert.Len(t, table.Options(Mortar)["grade"], 4)
}
