package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning
// the board and the pace of the game. Command line flags default to them.
var (
	GridWidth    = getEnvInt("SNAKE2P_GRID_WIDTH", 76)
	GridHeight   = getEnvInt("SNAKE2P_GRID_HEIGHT", 57)
	TickRate     = rate.Limit(getEnvInt("SNAKE2P_TICK_RATE", 10))
	Port         = getEnvInt("SNAKE2P_PORT", 7777)
	FoodAttempts = getEnvInt("SNAKE2P_FOOD_ATTEMPTS", 100)
)

// getEnvInt reads a positive integer from the environment, falling back to
// def when the variable is unset or unusable.
func getEnvInt(name string, def int) int {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
