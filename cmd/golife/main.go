package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/yasserelgammal/rate-limiter/limiter"
	"github.com/yasserelgammal/rate-limiter/store"

	"golife/internal/evolve"
	"golife/internal/support"
)

func main() {
	generations := flag.Int("generations", 200, "number of generations to run")
	populationSize := flag.Int("population", 100, "population size")
	gardenSize := flag.Int("garden", 64, "board width and height in cells")
	wrapBorder := flag.Bool("wrap", false, "use a toroidal board instead of a zero border")
	bitsPerCell := flag.Uint("bits-per-cell", 4, "expressor bits per cell (0 or 1 selects the simple expressor)")
	flag.Parse()

	settings := evolve.DefaultEaSettings()
	settings.PopulationSize = *populationSize
	settings.GardenSize = *gardenSize
	settings.WrapBorder = *wrapBorder
	settings.BitsPerCell = uint8(*bitsPerCell)

	driver, err := evolve.SetupGA(settings)
	if err != nil {
		support.ErrorLog("failed to set up search", support.Err(err))
		os.Exit(1)
	}

	fmt.Printf("golife: searching %d generations, population %d, garden %dx%d\n",
		*generations, settings.PopulationSize, settings.GardenSize, settings.GardenSize)

	progressStore := store.NewMemoryStore(time.Minute)
	progressLimiter, err := limiter.NewTokenBucket(
		limiter.Config{Rate: 2, Duration: time.Second, Burst: 1},
		progressStore,
	)
	if err != nil {
		support.ErrorLog("failed to set up progress limiter", support.Err(err))
		os.Exit(1)
	}

	for gen := 0; gen < *generations; gen++ {
		driver.Step()

		if !progressLimiter.Allow("progress") && gen != *generations-1 {
			continue
		}

		stats, _ := driver.PopulationStats()
		driverStats := driver.Stats()

		fmt.Printf("generation=%d max_fitness=%.2f avg_fitness=%.2f ca_steps=%d\n",
			driverStats.NumGenerations, stats.MaxFitness, stats.AvgFitness, driverStats.NumCASteps)
	}

	os.Exit(0)
}
