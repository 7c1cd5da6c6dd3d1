package options

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileSettings mirrors the options file on disk. All fields are
// optional; absent fields leave the current value untouched.
type fileSettings struct {
	MoveAngleMode    *string  `toml:"move-angle-mode"`
	ConnectAngleMode *string  `toml:"connect-angle-mode"`
	SnapToGrid       *bool    `toml:"snap-to-grid"`
	GridMicron       *float64 `toml:"grid-micron"`
}

// ApplyFile reads a TOML options file and pushes every present setting
// through Configure, exactly as the host would push live changes.
func (o *Options) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read options file: %w", err)
	}

	var settings fileSettings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to parse options file %s: %w", path, err)
	}

	push := func(name string, value *string) error {
		if value == nil {
			return nil
		}
		if !o.Configure(name, *value) {
			return fmt.Errorf("invalid value %q for %s in %s", *value, name, path)
		}
		return nil
	}

	if err := push(ConfigMoveAngleMode, settings.MoveAngleMode); err != nil {
		return err
	}
	if err := push(ConfigConnectAngleMode, settings.ConnectAngleMode); err != nil {
		return err
	}
	if settings.SnapToGrid != nil {
		o.Configure(ConfigSnapToGrid, fmt.Sprintf("%t", *settings.SnapToGrid))
	}
	if settings.GridMicron != nil {
		grid := fmt.Sprintf("%g", *settings.GridMicron)
		if !o.Configure(ConfigGridMicron, grid) {
			return fmt.Errorf("invalid value %s for %s in %s", grid, ConfigGridMicron, path)
		}
	}
	return nil
}
