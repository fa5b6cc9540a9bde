package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/tableview/pkg/errors"
	"github.com/go-drift/tableview/pkg/graphics"
)

func TestDefaultTableTheme(t *testing.T) {
	themed := DefaultTableTheme()
	if themed.Face == nil {
		t.Fatal("default theme has no font face")
	}
	if themed.RowExtent <= 0 {
		t.Errorf("RowExtent = %v, want positive", themed.RowExtent)
	}
	if themed.CacheExtent <= 0 {
		t.Errorf("CacheExtent = %v, want positive", themed.CacheExtent)
	}
	if themed.MaxIdleCells <= 0 {
		t.Errorf("MaxIdleCells = %d, want positive", themed.MaxIdleCells)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	base := DefaultTableTheme()
	copied := base.Copy()
	copied.RowExtent = 99
	if base.RowExtent == 99 {
		t.Error("Copy shares state with the original")
	}
}

func TestApplyOverlaysValues(t *testing.T) {
	base := DefaultTableTheme()
	cfg := &Config{
		Table: TableConfig{RowExtent: 48, MaxIdleCells: 8},
		Colors: ColorsConfig{
			Highlight: "#FF0000",
		},
	}

	themed, err := Apply(base, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if themed.RowExtent != 48 {
		t.Errorf("RowExtent = %v, want 48", themed.RowExtent)
	}
	if themed.MaxIdleCells != 8 {
		t.Errorf("MaxIdleCells = %d, want 8", themed.MaxIdleCells)
	}
	if themed.Highlight != graphics.RGB(0xFF, 0, 0) {
		t.Errorf("Highlight = %v, want red", themed.Highlight)
	}
	// Unset fields keep their defaults.
	if themed.CacheExtent != base.CacheExtent {
		t.Errorf("CacheExtent = %v, want unchanged %v", themed.CacheExtent, base.CacheExtent)
	}
	if base.RowExtent == 48 {
		t.Error("Apply mutated the base theme")
	}
}

func TestApplyNilConfig(t *testing.T) {
	base := DefaultTableTheme()
	themed, err := Apply(base, nil)
	if err != nil {
		t.Fatalf("Apply(nil): %v", err)
	}
	if themed.RowExtent != base.RowExtent {
		t.Error("Apply(nil) changed the theme")
	}
}

func TestApplyRejectsBadColor(t *testing.T) {
	_, err := Apply(DefaultTableTheme(), &Config{
		Colors: ColorsConfig{Text: "not-a-color"},
	})
	if err == nil {
		t.Fatal("Apply accepted a malformed color")
	}
	var tableErr *errors.TableError
	if !stderrors.As(err, &tableErr) {
		t.Fatalf("error type = %T, want *errors.TableError", err)
	}
	if tableErr.Kind != errors.KindConfig {
		t.Errorf("Kind = %v, want config", tableErr.Kind)
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	themed, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if themed.RowExtent != DefaultTableTheme().RowExtent {
		t.Error("missing config did not yield the default theme")
	}
}

func TestLoadOptionalReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "table:\n  rowExtent: 40\n  cacheExtent: 120\ncolors:\n  background: \"#101010\"\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	themed, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if themed.RowExtent != 40 {
		t.Errorf("RowExtent = %v, want 40", themed.RowExtent)
	}
	if themed.CacheExtent != 120 {
		t.Errorf("CacheExtent = %v, want 120", themed.CacheExtent)
	}
	if themed.Background != graphics.RGB(0x10, 0x10, 0x10) {
		t.Errorf("Background = %v, want #101010", themed.Background)
	}
}

func TestLoadOptionalRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("table: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadOptional(dir)
	if err == nil {
		t.Fatal("LoadOptional accepted malformed YAML")
	}
	var tableErr *errors.TableError
	if !stderrors.As(err, &tableErr) {
		t.Fatalf("error type = %T, want *errors.TableError", err)
	}
	if tableErr.Kind != errors.KindConfig {
		t.Errorf("Kind = %v, want config", tableErr.Kind)
	}
}
