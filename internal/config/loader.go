package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs and logs, relative to $HOME.
const AppDir = ".tui-pong"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadPong loads the game configuration.
// Search order: customPath -> ~/.tui-pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are layered over the defaults, so partial files only override what they set.
func LoadPong(customPath string) (PongConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PongConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c PongConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that the configuration describes a playable game.
func (c PongConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: arena must have positive size, got %gx%g", ErrInvalid, c.Arena.Width, c.Arena.Height)
	}
	if c.Paddles.Width <= 0 || c.Paddles.Width > c.Arena.Width {
		return fmt.Errorf("%w: paddle width %g must be in (0, %g]", ErrInvalid, c.Paddles.Width, c.Arena.Width)
	}
	if c.Paddles.Diff <= 0 || 2*c.Paddles.Diff >= c.Arena.Height {
		return fmt.Errorf("%w: paddle diff %g does not fit the arena", ErrInvalid, c.Paddles.Diff)
	}
	if c.Gameplay.WinningScore <= 0 {
		return fmt.Errorf("%w: winning score must be positive, got %d", ErrInvalid, c.Gameplay.WinningScore)
	}
	if _, _, err := ParseDeviceClass(c.Device.Class); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for name, p := range map[string]SpeedProfile{"pointer": c.Speeds.Pointer, "touch": c.Speeds.Touch} {
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: speeds.%s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

func (p SpeedProfile) validate() error {
	if p.BaseSpeed <= 0 || p.SpeedCap < p.BaseSpeed {
		return fmt.Errorf("base speed %g and cap %g must satisfy 0 < base <= cap", p.BaseSpeed, p.SpeedCap)
	}
	if p.EscalationStep < 0 {
		return fmt.Errorf("escalation step must not be negative, got %g", p.EscalationStep)
	}
	if p.OpponentBaseSpeed < 0 || p.OpponentCapSpeed < 0 {
		return errors.New("opponent speeds must not be negative")
	}
	switch p.ReturnRule {
	case ReturnAccelerate, ReturnSettle:
		return nil
	default:
		return fmt.Errorf("unknown return rule %q", p.ReturnRule)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}
