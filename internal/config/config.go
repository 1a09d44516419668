// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform. Each game has its own
// typed config struct; there is no loosely-typed keyword bag.
package config

// BrickLayerConfig contains all tunables for the falling-block game.
type BrickLayerConfig struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	GravityBase  float64 `yaml:"gravity_base"`  // Seconds per row at start
	GravityAccel float64 `yaml:"gravity_accel"` // Interval shrink per elapsed second
	GravityMin   float64 `yaml:"gravity_min"`   // Interval floor
	SoftFactor   float64 `yaml:"soft_factor"`   // Interval multiplier while soft-dropping
}

// MinesweeperConfig contains board and mine parameters.
type MinesweeperConfig struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	MineCount int `yaml:"mine_count"`
}

// PipelineConfig contains board generation parameters.
type PipelineConfig struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	PairCount   int `yaml:"pair_count"`
	MinSegment  int `yaml:"min_segment"`
	MaxAttempts int `yaml:"max_attempts"` // Whole-board generation retries before error
}

// SnakeConfig contains movement and food-economy parameters.
type SnakeConfig struct {
	Rows             int     `yaml:"rows"`
	Cols             int     `yaml:"cols"`
	Speed            float64 `yaml:"speed"`       // Steps per second
	AppleRatio       float64 `yaml:"apple_ratio"` // P(benign); poison probability is 1-ratio
	MaxItems         int     `yaml:"max_items"`
	PoisonExtraSpawn float64 `yaml:"poison_extra_spawn"` // Seconds until bonus spawn
	PoisonLifeMin    float64 `yaml:"poison_life_min"`    // Despawn window lower bound
	PoisonLifeMax    float64 `yaml:"poison_life_max"`    // Despawn window upper bound
}

// WordItConfig selects the guess-validation ruleset.
type WordItConfig struct {
	HardMode bool `yaml:"hard_mode"`
}

// HangmanConfig selects the word list and mistake budget.
type HangmanConfig struct {
	ListKey     string `yaml:"list_key"` // easy | normal | hard | expert
	MaxMistakes int    `yaml:"max_mistakes"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyExpert  DifficultyPreset = "expert"
	DifficultyExtreme DifficultyPreset = "extreme" // Pipeline only
)

// KnownPresets lists the presets accepted on the command line.
func KnownPresets() []DifficultyPreset {
	return []DifficultyPreset{
		DifficultyEasy, DifficultyNormal, DifficultyHard,
		DifficultyExpert, DifficultyExtreme,
	}
}

// ApplyBrickLayerPreset overwrites gravity with the preset's values.
func ApplyBrickLayerPreset(cfg *BrickLayerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.GravityBase, cfg.GravityAccel = 1.10, 0.0006
	case DifficultyNormal:
		cfg.GravityBase, cfg.GravityAccel = 0.85, 0.0010
	case DifficultyHard:
		cfg.GravityBase, cfg.GravityAccel = 0.65, 0.0015
	case DifficultyExpert:
		cfg.GravityBase, cfg.GravityAccel = 0.45, 0.0022
	}
}

// ApplyMinesweeperPreset overwrites board size and mine count.
func ApplyMinesweeperPreset(cfg *MinesweeperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rows, cfg.Cols, cfg.MineCount = 9, 9, 10
	case DifficultyNormal:
		cfg.Rows, cfg.Cols, cfg.MineCount = 16, 16, 40
	case DifficultyHard:
		cfg.Rows, cfg.Cols, cfg.MineCount = 16, 25, 75
	case DifficultyExpert:
		cfg.Rows, cfg.Cols, cfg.MineCount = 16, 35, 100
	}
}

// ApplyPipelinePreset overwrites board size and pair parameters.
func ApplyPipelinePreset(cfg *PipelineConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rows, cfg.Cols, cfg.PairCount, cfg.MinSegment = 5, 5, 4, 3
	case DifficultyNormal:
		cfg.Rows, cfg.Cols, cfg.PairCount, cfg.MinSegment = 6, 6, 5, 4
	case DifficultyHard:
		cfg.Rows, cfg.Cols, cfg.PairCount, cfg.MinSegment = 7, 7, 6, 4
	case DifficultyExtreme:
		cfg.Rows, cfg.Cols, cfg.PairCount, cfg.MinSegment = 9, 9, 8, 4
	}
}

// ApplySnakePreset overwrites speed and apple ratio.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed, cfg.AppleRatio = 4, 1.00
	case DifficultyNormal:
		cfg.Speed, cfg.AppleRatio = 6, 0.75
	case DifficultyHard:
		cfg.Speed, cfg.AppleRatio = 8, 0.50
	case DifficultyExpert:
		cfg.Speed, cfg.AppleRatio = 12, 0.25
	}
}

// ApplyWordItPreset maps presets onto the normal/hard ruleset split.
func ApplyWordItPreset(cfg *WordItConfig, preset DifficultyPreset) {
	cfg.HardMode = preset == DifficultyHard || preset == DifficultyExpert
}

// ApplyHangmanPreset selects the word list for the preset.
func ApplyHangmanPreset(cfg *HangmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert:
		cfg.ListKey = string(preset)
	}
}
