package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDotEnvLine(t *testing.T) {
	tests := []struct {
		raw   string
		key   string
		value string
		ok    bool
	}{
		{raw: "", ok: false},
		{raw: "   # DB_PATH=./x.db", ok: false},
		{raw: "no separator", ok: false},
		{raw: "=value", ok: false},
		{raw: "PORT=9090", key: "PORT", value: "9090", ok: true},
		{raw: "export LOCALE=en-US", key: "LOCALE", value: "en-US", ok: true},
		{raw: `PRICES_FILE="prices dir/prices.yaml"`, key: "PRICES_FILE", value: "prices dir/prices.yaml", ok: true},
		{raw: "API_TOKEN='s3 cret'", key: "API_TOKEN", value: "s3 cret", ok: true},
		{raw: "HISTORY_BACKEND=file # or sqlite", key: "HISTORY_BACKEND", value: "file", ok: true},
		{raw: `CURRENCY="RUB # roubles" # quoted`, key: "CURRENCY", value: "RUB # roubles", ok: true},
		{raw: "LOG_LEVEL=", key: "LOG_LEVEL", value: "", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			k, v, ok := parseDotEnvLine(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, k)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestLoadDotEnvSetsOnlyUnsetVariables(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("HISTORY_FILE", "")
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	content := "# local dev\n\nDB_PATH=./dev.db\nexport HISTORY_FILE=\"./dev history.json\"\nPORT=9090\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	n, err := loadDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "./dev.db", os.Getenv("DB_PATH"))
	assert.Equal(t, "./dev history.json", os.Getenv("HISTORY_FILE"))
	assert.Equal(t, "7000", os.Getenv("PORT"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	n, err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Zero(t, n)
}
