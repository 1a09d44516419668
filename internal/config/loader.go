package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// loadChain fills cfg from the first source that parses:
// customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the fallback
// chain is silent because missing optional files are expected.
func loadChain(name, customPath string, defaultYAML []byte, cfg any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(name + ".yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(defaultYAML, cfg)
}

// userConfigPath returns the path to a user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadBrickLayer loads the falling-block game configuration.
func LoadBrickLayer(customPath string) (BrickLayerConfig, error) {
	cfg := DefaultBrickLayerConfig()
	if err := loadChain("bricklayer", customPath, defaultBrickLayerYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadMinesweeper loads the mine board configuration.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()
	if err := loadChain("minesweeper", customPath, defaultMinesweeperYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadPipeline loads the pipe puzzle configuration.
func LoadPipeline(customPath string) (PipelineConfig, error) {
	cfg := DefaultPipelineConfig()
	if err := loadChain("pipeline", customPath, defaultPipelineYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadSnake loads the snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := loadChain("snake", customPath, defaultSnakeYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWordIt loads the word-guessing game configuration.
func LoadWordIt(customPath string) (WordItConfig, error) {
	cfg := DefaultWordItConfig()
	if err := loadChain("wordit", customPath, defaultWordItYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadHangman loads the hangman configuration.
func LoadHangman(customPath string) (HangmanConfig, error) {
	cfg := DefaultHangmanConfig()
	if err := loadChain("hangman", customPath, defaultHangmanYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
