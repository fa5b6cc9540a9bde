package theme

import (
	"fmt"
	"os"
	"path/filepath"

	stderrors "errors"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tableview/pkg/errors"
	"github.com/go-drift/tableview/pkg/graphics"
)

// ConfigFileName is the optional per-project theme file.
const ConfigFileName = "tableview.yaml"

// Config represents the optional tableview.yaml configuration.
type Config struct {
	Table  TableConfig  `yaml:"table"`
	Colors ColorsConfig `yaml:"colors"`
}

// TableConfig contains table metrics overrides.
type TableConfig struct {
	RowExtent    float64 `yaml:"rowExtent,omitempty"`
	CacheExtent  float64 `yaml:"cacheExtent,omitempty"`
	MaxIdleCells int     `yaml:"maxIdleCells,omitempty"`
}

// ColorsConfig contains palette overrides as hex strings ("#RRGGBB").
type ColorsConfig struct {
	Background string `yaml:"background,omitempty"`
	Cell       string `yaml:"cell,omitempty"`
	Highlight  string `yaml:"highlight,omitempty"`
	Text       string `yaml:"text,omitempty"`
	Detail     string `yaml:"detail,omitempty"`
}

// LoadOptional reads tableview.yaml from dir if present and applies it on
// top of the default theme. A missing file yields the default theme.
func LoadOptional(dir string) (*TableThemeData, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return DefaultTableTheme(), nil
		}
		return nil, &errors.TableError{
			Op:   "theme.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to read %s: %w", ConfigFileName, err),
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.TableError{
			Op:   "theme.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to parse %s: %w", ConfigFileName, err),
		}
	}

	return Apply(DefaultTableTheme(), &cfg)
}

// Apply overlays non-zero config values onto base and returns the result.
// Base is not mutated.
func Apply(base *TableThemeData, cfg *Config) (*TableThemeData, error) {
	themed := base.Copy()
	if cfg == nil {
		return themed, nil
	}
	if cfg.Table.RowExtent > 0 {
		themed.RowExtent = cfg.Table.RowExtent
	}
	if cfg.Table.CacheExtent > 0 {
		themed.CacheExtent = cfg.Table.CacheExtent
	}
	if cfg.Table.MaxIdleCells > 0 {
		themed.MaxIdleCells = cfg.Table.MaxIdleCells
	}

	assign := func(target *graphics.Color, value, field string) error {
		if value == "" {
			return nil
		}
		color, err := graphics.ParseColor(value)
		if err != nil {
			return &errors.TableError{
				Op:   "theme.Apply",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("colors.%s: %w", field, err),
			}
		}
		*target = color
		return nil
	}

	if err := assign(&themed.Background, cfg.Colors.Background, "background"); err != nil {
		return nil, err
	}
	if err := assign(&themed.CellBackground, cfg.Colors.Cell, "cell"); err != nil {
		return nil, err
	}
	if err := assign(&themed.Highlight, cfg.Colors.Highlight, "highlight"); err != nil {
		return nil, err
	}
	if err := assign(&themed.Text, cfg.Colors.Text, "text"); err != nil {
		return nil, err
	}
	if err := assign(&themed.Detail, cfg.Colors.Detail, "detail"); err != nil {
		return nil, err
	}
	return themed, nil
}
