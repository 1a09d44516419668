package config

import "fmt"

// Validate rejects board dimensions or gravity values a game cannot run with.
func (c BrickLayerConfig) Validate() error {
	if c.Rows < 4 || c.Cols < 4 {
		return fmt.Errorf("bricklayer: board %dx%d is too small", c.Rows, c.Cols)
	}
	if c.GravityBase <= 0 || c.GravityMin <= 0 {
		return fmt.Errorf("bricklayer: gravity intervals must be positive")
	}
	if c.SoftFactor <= 0 || c.SoftFactor > 1 {
		return fmt.Errorf("bricklayer: soft_factor %v out of (0,1]", c.SoftFactor)
	}
	return nil
}

// Validate checks that the mine count leaves room for the guaranteed
// safe 3x3 area around the first click.
func (c MinesweeperConfig) Validate() error {
	if c.Rows < 3 || c.Cols < 3 {
		return fmt.Errorf("minesweeper: board %dx%d is too small", c.Rows, c.Cols)
	}
	if c.MineCount < 1 {
		return fmt.Errorf("minesweeper: mine_count must be at least 1")
	}
	if c.MineCount > c.Rows*c.Cols-9 {
		return fmt.Errorf("minesweeper: %d mines do not fit a %dx%d board with a safe first click",
			c.MineCount, c.Rows, c.Cols)
	}
	return nil
}

// Validate checks that the requested pipe pairs can fit on the board at all.
func (c PipelineConfig) Validate() error {
	if c.Rows < 3 || c.Cols < 3 {
		return fmt.Errorf("pipeline: board %dx%d is too small", c.Rows, c.Cols)
	}
	if c.PairCount < 1 {
		return fmt.Errorf("pipeline: pair_count must be at least 1")
	}
	if c.MinSegment < 2 {
		return fmt.Errorf("pipeline: min_segment %d below the 2-cell minimum", c.MinSegment)
	}
	if c.PairCount*c.MinSegment > c.Rows*c.Cols {
		return fmt.Errorf("pipeline: %d pairs of %d+ cells cannot fit a %dx%d board",
			c.PairCount, c.MinSegment, c.Rows, c.Cols)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("pipeline: max_attempts must be at least 1")
	}
	return nil
}

// Validate rejects impossible movement or food-economy parameters.
func (c SnakeConfig) Validate() error {
	if c.Rows < 5 || c.Cols < 5 {
		return fmt.Errorf("snake: board %dx%d is too small", c.Rows, c.Cols)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("snake: speed must be positive")
	}
	if c.AppleRatio < 0 || c.AppleRatio > 1 {
		return fmt.Errorf("snake: apple_ratio %v out of [0,1]", c.AppleRatio)
	}
	if c.MaxItems < 1 {
		return fmt.Errorf("snake: max_items must be at least 1")
	}
	if c.PoisonLifeMin <= 0 || c.PoisonLifeMax < c.PoisonLifeMin {
		return fmt.Errorf("snake: poison lifetime window [%v,%v] is invalid",
			c.PoisonLifeMin, c.PoisonLifeMax)
	}
	return nil
}

// Validate checks the hangman list key against the known difficulty lists.
func (c HangmanConfig) Validate() error {
	switch c.ListKey {
	case "easy", "normal", "hard", "expert":
	default:
		return fmt.Errorf("hangman: unknown list_key %q", c.ListKey)
	}
	if c.MaxMistakes < 1 {
		return fmt.Errorf("hangman: max_mistakes must be at least 1")
	}
	return nil
}
