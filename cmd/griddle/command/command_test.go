package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/linshaoyong/griddle/config"
	"github.com/linshaoyong/griddle/constants"
	"github.com/linshaoyong/griddle/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buffer := new(bytes.Buffer)
	app := &cli.Command{
		Name:   "griddle",
		Writer: buffer,
	}

	for _, command := range Commands {
		app.Commands = append(app.Commands, command.Command())
	}

	err := app.Run(context.Background(), append([]string{"griddle"}, args...))

	return buffer.String(), err
}

func TestVersion(t *testing.T) {
	output, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, constants.Version+"\n", output)
}

func TestShowRow(t *testing.T) {
	output, err := run(t, "row", "--spacing", "0.05", "--index", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "| 0.05 | 0.95 | 0.955 | 0.950 | 10545 | 11100 | 0.995 | 1.000 | 10000 |")

	_, err = run(t, "row", "--spacing", "1.5")
	assert.Error(t, err)

	_, err = run(t, "row", "--index=-1")
	assert.Error(t, err)

	for _, index := range []string{"20", "25"} {
		output, err = run(t, "row", "--spacing", "0.05", "--index", index)
		assert.ErrorIs(t, err, grid.ErrInvalidStart, index)
		assert.NotContains(t, output, "Inf")
		assert.NotContains(t, output, "NaN")
	}

	output, err = run(t, "row", "--spacing", "0.05", "--index", "19")
	require.NoError(t, err)
	assert.Contains(t, output, "| 0.05 | 0.05 |")
}

func TestInitAndLadder(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "init", "--dir", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, constants.DefaultConfigFile))
	assert.FileExists(t, filepath.Join(dir, constants.DefaultInputFile))

	_, err = run(t, "init", "--dir", dir)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "init", "--dir", dir, "--force")
	require.NoError(t, err)

	output := filepath.Join(dir, "out", "ladder.md")
	_, err = run(t, "ladder",
		"--config", filepath.Join(dir, constants.DefaultConfigFile),
		"--input", filepath.Join(dir, constants.DefaultInputFile),
		"--output", output)
	require.NoError(t, err)

	buffer, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(buffer), "#### 中概互联（513050）")
	assert.Contains(t, string(buffer), "#### 证券ETF（512880）")
	assert.Contains(t, string(buffer), `|<span style="color:black"> 小网 </span>| 1.00 | 1.005 | 1.000 | 10000 | 10000 | 1.045 | 1.050 | 9000 |`)
}

func TestLadderFormats(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "etf.toml")
	err := os.WriteFile(input, []byte(`
[[instruments]]
name = "中概互联"
code = "513050"
start_price = 1.0
start_numbers = 10000
small_grid = 0.05
medium_grid = 0.15
large_grid = 0.30
`), 0644)
	require.NoError(t, err)

	missing := filepath.Join(dir, "missing.toml")

	output, err := run(t, "ladder", "--input", input, "--format", "json", "--output", "-")
	require.NoError(t, err)
	assert.Empty(t, output)

	xlsx := filepath.Join(dir, "ladder.xlsx")
	_, err = run(t, "ladder", "--input", input, "--format", "xlsx", "--output", xlsx)
	require.NoError(t, err)
	assert.FileExists(t, xlsx)

	_, err = run(t, "ladder", "--input", input, "--format", "pdf")
	assert.ErrorIs(t, err, constants.ErrUnknownFormat)

	_, err = run(t, "ladder", "--input", input, "--floor", "1.5")
	assert.Error(t, err)

	_, err = run(t, "ladder", "--config", missing, "--input", input)
	assert.Error(t, err)
}

func TestLoadInstruments(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", "--dir", dir)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Input = filepath.Join(dir, constants.DefaultInputFile)
	cfg.Instruments = []grid.Config{sampleInstruments[0]}

	instruments, err := loadInstruments(cfg)
	require.NoError(t, err)
	assert.Len(t, instruments, len(sampleInstruments)+1)

	cfg.Input = ""
	cfg.Instruments = nil
	_, err = loadInstruments(cfg)
	assert.ErrorIs(t, err, constants.ErrNoInstruments)
}
