// Command monosim runs batches of autonomous Monopoly games for
// statistical study of the game's economy.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/tmthydvnprt/monosim/internal/board"
	"github.com/tmthydvnprt/monosim/internal/game"
	"github.com/tmthydvnprt/monosim/internal/persistence"
	"github.com/tmthydvnprt/monosim/internal/report"
)

func main() {
	players := flag.Int("players", 4, "players per game")
	games := flag.Int("games", 1, "independent games to run")
	rounds := flag.Int("rounds", 100, "round ceiling per game")
	seed := flag.Int64("seed", 0, "base random seed; 0 seeds each game randomly")
	record := flag.Bool("record", false, "emit per-turn statistics rows")
	dbPath := flag.String("db", "", "sqlite path for results; empty disables persistence")
	configPath := flag.String("config", "", "board tables yaml; empty uses built-in tables")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "concurrent games")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := board.Load(*configPath)
	if err != nil {
		slog.Error("failed to load board tables", "error", err)
		os.Exit(1)
	}
	slog.Info("board loaded",
		"spaces", cfg.Size(),
		"properties", len(cfg.Properties),
		"total_money", cfg.TotalMoney(),
	)

	var db *persistence.DB
	if *dbPath != "" {
		db, err = persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database opened", "path", *dbPath)
	}

	results, err := runBatch(cfg, *players, *games, *rounds, *seed, *record, *workers)
	if err != nil {
		slog.Error("batch failed", "error", err)
		os.Exit(1)
	}

	// Persist in game order; sqlite writes stay on one goroutine.
	if db != nil {
		for _, res := range results {
			if err := db.SaveResult(res); err != nil {
				slog.Error("save failed", "game", res.Number, "error", err)
			}
		}
	}

	for _, res := range results {
		fmt.Println(report.RankingTable(res))
	}
	if len(results) > 1 {
		fmt.Println(report.BatchSummary(results))
	}
}

// runBatch plays the requested games across a bounded worker pool. Every
// game owns an independently seeded random source, so games are free to
// run fully in parallel.
func runBatch(cfg *board.Config, players, games, rounds int, baseSeed int64, record bool, workers int) ([]*game.Result, error) {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var mu sync.Mutex
	var results []*game.Result
	var firstErr error
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				gameSeed := int64(0)
				if baseSeed != 0 {
					gameSeed = baseSeed + int64(n)
				}
				g, err := game.New(game.Options{
					Players:   players,
					Seed:      gameSeed,
					MaxRounds: rounds,
					Record:    record,
					Number:    n,
					Board:     cfg,
				})
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				res := g.Run()
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}

	for n := 0; n < games; n++ {
		jobs <- n
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Number < results[j].Number })
	return results, nil
}
