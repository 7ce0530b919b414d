package main

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		config = utils.DefaultConfig()
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	paths := os.Args[1:]
	if len(paths) == 0 {
		out, err := stepFile(config.InputPath, pool, config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	// Batch mode: one goroutine per input file. Grids are independent,
	// each one is still evolved by the single-threaded engine.
	var (
		eg      errgroup.Group
		results = make([]string, len(paths))
	)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			out, err := stepFile(path, pool, config)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, path := range paths {
		fmt.Printf("%s:\n%s\n", path, results[i])
	}
}
