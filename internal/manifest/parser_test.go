package manifest

import "testing"

func TestParse(t *testing.T) {
	m, err := Parse(testPath("valid-full.yaml"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if m.OutputDir != "../gui/" {
		t.Errorf("OutputDir = %q, want %q", m.OutputDir, "../gui/")
	}
	if m.IncludeTarget != "GuiElement.h" {
		t.Errorf("IncludeTarget = %q, want %q", m.IncludeTarget, "GuiElement.h")
	}
	if m.Atomic == nil || !*m.Atomic {
		t.Errorf("Atomic = %v, want true", m.Atomic)
	}
	if m.NoClobber == nil || *m.NoClobber {
		t.Errorf("NoClobber = %v, want false", m.NoClobber)
	}
	if m.Requires != ">= 0.1.0" {
		t.Errorf("Requires = %q, want %q", m.Requires, ">= 0.1.0")
	}
}

func TestParse_UnsetFields(t *testing.T) {
	m, err := Parse(testPath("valid-variant.yaml"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.Variant != "aggregate" {
		t.Errorf("Variant = %q, want %q", m.Variant, "aggregate")
	}
	if m.Atomic != nil {
		t.Errorf("Atomic = %v, want nil", *m.Atomic)
	}
	if m.IncludeTarget != "" {
		t.Errorf("IncludeTarget = %q, want empty", m.IncludeTarget)
	}
}

func TestParse_NotFound(t *testing.T) {
	if _, err := Parse(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
