package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses the seed for deterministic simulation; the platform uses the
// rest to size the terminal canvas and pace frames.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the loop driver.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and what happened during the tick.
type StepResult struct {
	State     GameState
	Fired     bool // A projectile was launched this tick
	Destroyed int  // Enemies destroyed by projectiles this tick
	Spawned   bool // An enemy was spawned this tick
}
