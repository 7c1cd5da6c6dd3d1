package options

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/quicklayout/movequickly/pkg/geometry"
)

func TestConfigureAngleModes(t *testing.T) {
	o := New()

	if !o.Configure(ConfigMoveAngleMode, "ortho") {
		t.Fatal("move angle mode not handled")
	}
	if o.MoveAngleMode() != AngleModeManhattan {
		t.Errorf("expected ortho, got %s", o.MoveAngleMode())
	}

	if !o.Configure(ConfigConnectAngleMode, "diagonal") {
		t.Fatal("connect angle mode not handled")
	}
	if o.ConnectAngleMode() != AngleModeDiagonal {
		t.Errorf("expected diagonal, got %s", o.ConnectAngleMode())
	}

	// The two modes are independent.
	if o.MoveAngleMode() != AngleModeManhattan {
		t.Error("configuring connect mode changed move mode")
	}
}

func TestConfigureUnknownKey(t *testing.T) {
	o := New()
	if o.Configure("edit-top-level-selection", "true") {
		t.Error("unknown key must be reported as unhandled")
	}
}

func TestConfigureBadValue(t *testing.T) {
	o := New()
	if o.Configure(ConfigMoveAngleMode, "sideways") {
		t.Error("bad angle mode value must be unhandled")
	}
	if o.Configure(ConfigGridMicron, "-1") {
		t.Error("non-positive grid must be unhandled")
	}
	if o.Configure(ConfigSnapToGrid, "maybe") {
		t.Error("unparsable bool must be unhandled")
	}
}

func TestSnapPoint(t *testing.T) {
	o := New()
	o.Configure(ConfigGridMicron, "0.5")

	p := o.SnapPoint(geometry.NewPoint(1.3, -0.76))
	expected := geometry.NewPoint(1.5, -1.0)
	if math.Abs(p.X-expected.X) > 1e-12 || math.Abs(p.Y-expected.Y) > 1e-12 {
		t.Errorf("expected %v, got %v", expected, p)
	}
}

func TestSnapPointDisabled(t *testing.T) {
	o := New()
	o.Configure(ConfigSnapToGrid, "false")

	p := geometry.NewPoint(1.2345, 6.789)
	if o.SnapPoint(p) != p {
		t.Error("snapping disabled must return the point unchanged")
	}
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	content := `
move-angle-mode = "diagonal"
snap-to-grid = false
grid-micron = 0.25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	o := New()
	if err := o.ApplyFile(path); err != nil {
		t.Fatalf("ApplyFile failed: %v", err)
	}

	if o.MoveAngleMode() != AngleModeDiagonal {
		t.Errorf("move mode not applied: %s", o.MoveAngleMode())
	}
	if o.SnapToGrid() {
		t.Error("snap-to-grid not applied")
	}
	if o.GridMicron() != 0.25 {
		t.Errorf("grid not applied: %v", o.GridMicron())
	}
	// Absent key keeps the default.
	if o.ConnectAngleMode() != AngleModeAny {
		t.Errorf("connect mode should stay default, got %s", o.ConnectAngleMode())
	}
}

func TestApplyFileBadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	if err := os.WriteFile(path, []byte(`move-angle-mode = "bogus"`), 0o644); err != nil {
		t.Fatal(err)
	}

	o := New()
	if err := o.ApplyFile(path); err == nil {
		t.Error("expected error for invalid angle mode value")
	}
}
