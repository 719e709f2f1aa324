// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/ilygor/chessjerk/internal/config"
)

var (
	// Search
	gen1     = flag.Int("gen1", 3, "First moves explored per search")
	gen2     = flag.Int("gen2", 2, "Opponent replies explored per first move")
	workers  = flag.Int("workers", 1, "Goroutines exploring first moves")
	policy   = flag.String("policy", string(config.WorstLeaf), "Leaf selection policy: worst-leaf, minimax")
	divisor  = flag.Float64("backup-divisor", 10, "Divisor applied to backup bonuses")
	kingVal  = flag.Float64("king-value", 9, "Material value of the king")
	side     = flag.String("engine", "black", "Colour played by the engine: white, black, none")
	fen      = flag.String("fen", "", "Start from this FEN position")
	seed     = flag.Int64("seed", 0, "Start from a random position generated from this seed")
	aiOnly   = flag.Bool("auto", false, "Let the engine play both sides until the game ends")
	maxTurns = flag.Int("max-turns", 200, "Stop an -auto game after N plies")

	// Recording
	recordPath   = flag.String("record", "", "Write each search's leaf table to this file or directory")
	recordFormat = flag.String("record-format", string(config.RecordCSV), "Leaf table format: csv, jsonl, badger")

	// Logging
	logFile  = flag.String("l", "", "Write log to file")
	logLevel = flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	jsonLog  = flag.Bool("json-log", false, "Log JSON lines instead of console text")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig maps the parsed flags onto a validated Config.
func buildConfig() (*config.Config, error) {
	return config.NewConfigBuilder().
		WithBreadth(*gen1, *gen2).
		WithWorkers(*workers).
		WithPolicy(config.Policy(*policy)).
		WithBackupDivisor(*divisor).
		WithKingValue(*kingVal).
		WithEngineSide(*side).
		WithFEN(*fen).
		WithSeed(*seed).
		WithRecord(*recordPath, config.RecordFormat(*recordFormat)).
		WithLogLevel(*logLevel, !*jsonLog).
		Build()
}
