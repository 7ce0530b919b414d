package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/utils"
)

// stepFile reads a text grid from path, advances it one generation and
// returns the serialized next generation
func stepFile(path string, pool *model.GridPool, config utils.Config) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "[stepFile] failed to read grid: %+v", path)
	}

	return stepText(string(raw), pool, config)
}

// stepText runs one evolution step over a raw text grid. An input with
// no rows is a legitimate empty grid and yields empty output.
func stepText(raw string, pool *model.GridPool, config utils.Config) (string, error) {
	grid, err := model.GridFromRows(model.ParseRows(raw), pool)
	if err != nil {
		return "", errors.Wrap(err, "[stepText] failed to build grid")
	}
	defer model.GridToPool(grid, pool)

	stats := utils.NewStepStats()
	populationBefore := grid.CountLivingCells()

	grid.Evolve()

	if config.ShowStats {
		stats.Record(populationBefore, grid.CountLivingCells())
		fmt.Fprintln(os.Stderr, stats.Summary())
	}

	renderer := &model.TextRenderer{}
	return renderer.RenderString(grid), nil
}
