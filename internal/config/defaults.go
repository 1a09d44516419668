package config

// Hardcoded defaults mirror the embedded YAML and serve as the final
// fallback when no config file is found anywhere.

// DefaultBrickLayerConfig returns the normal-difficulty falling-block setup.
func DefaultBrickLayerConfig() BrickLayerConfig {
	return BrickLayerConfig{
		Rows:         20,
		Cols:         10,
		GravityBase:  0.85,
		GravityAccel: 0.0010,
		GravityMin:   0.05,
		SoftFactor:   0.10,
	}
}

// DefaultMinesweeperConfig returns the classic 16x16/40 board.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Rows:      16,
		Cols:      16,
		MineCount: 40,
	}
}

// DefaultPipelineConfig returns the normal 6x6 five-pair puzzle.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Rows:        6,
		Cols:        6,
		PairCount:   5,
		MinSegment:  4,
		MaxAttempts: 64,
	}
}

// DefaultSnakeConfig returns the 15x15 normal economy.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Rows:             15,
		Cols:             15,
		Speed:            6,
		AppleRatio:       0.75,
		MaxItems:         15,
		PoisonExtraSpawn: 3.0,
		PoisonLifeMin:    10.0,
		PoisonLifeMax:    30.0,
	}
}

// DefaultWordItConfig returns the normal (non-hard) ruleset.
func DefaultWordItConfig() WordItConfig {
	return WordItConfig{HardMode: false}
}

// DefaultHangmanConfig returns the normal list with the classic 7 frames.
func DefaultHangmanConfig() HangmanConfig {
	return HangmanConfig{
		ListKey:     "normal",
		MaxMistakes: 7,
	}
}

var defaultBrickLayerYAML = []byte(`
rows: 20
cols: 10
gravity_base: 0.85
gravity_accel: 0.0010
gravity_min: 0.05
soft_factor: 0.10
`)

var defaultMinesweeperYAML = []byte(`
rows: 16
cols: 16
mine_count: 40
`)

var defaultPipelineYAML = []byte(`
rows: 6
cols: 6
pair_count: 5
min_segment: 4
max_attempts: 64
`)

var defaultSnakeYAML = []byte(`
rows: 15
cols: 15
speed: 6
apple_ratio: 0.75
max_items: 15
poison_extra_spawn: 3.0
poison_life_min: 10.0
poison_life_max: 30.0
`)

var defaultWordItYAML = []byte(`
hard_mode: false
`)

var defaultHangmanYAML = []byte(`
list_key: normal
max_mistakes: 7
`)
