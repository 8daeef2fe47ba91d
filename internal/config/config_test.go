package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// isolate points the user config at a temp dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("GUIGEN_HOME", home)
	for _, k := range Keys() {
		name := "GUIGEN_" + strings.ToUpper(k)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags %v: %v", args, err)
	}
	return fs
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	s, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", s.OutputDir, DefaultOutputDir)
	}
	if s.IncludeTarget != "GuiElement.h" || s.BaseType != "GuiElement" {
		t.Errorf("IncludeTarget/BaseType = %q/%q", s.IncludeTarget, s.BaseType)
	}
	if s.HeaderExt != "h" || s.SourceExt != "cpp" {
		t.Errorf("extensions = %q/%q, want h/cpp", s.HeaderExt, s.SourceExt)
	}
	if !s.Atomic || s.NoClobber || s.SilentNoArgs {
		t.Errorf("bools = atomic:%v no_clobber:%v silent_no_args:%v", s.Atomic, s.NoClobber, s.SilentNoArgs)
	}
	if s.ManifestPath != "" {
		t.Errorf("ManifestPath = %q, want empty", s.ManifestPath)
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "config.yaml"), "output_dir: from-user\nbase_type: UserBase\nheader_ext: hh\nsource_ext: cc\n")

	manifestPath := filepath.Join(t.TempDir(), "guigen.yaml")
	writeFile(t, manifestPath, "output_dir: from-manifest\nbase_type: ManifestBase\n")

	t.Run("manifest over user config", func(t *testing.T) {
		s, err := Load(LoadOptions{ManifestPath: manifestPath})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if s.OutputDir != "from-manifest" {
			t.Errorf("OutputDir = %q, want from-manifest", s.OutputDir)
		}
		if s.HeaderExt != "hh" {
			t.Errorf("HeaderExt = %q, want hh from user config", s.HeaderExt)
		}
		if s.ManifestPath != manifestPath {
			t.Errorf("ManifestPath = %q, want %q", s.ManifestPath, manifestPath)
		}
	})

	t.Run("env over manifest", func(t *testing.T) {
		t.Setenv("GUIGEN_OUTPUT_DIR", "from-env")
		s, err := Load(LoadOptions{ManifestPath: manifestPath})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if s.OutputDir != "from-env" {
			t.Errorf("OutputDir = %q, want from-env", s.OutputDir)
		}
		if s.BaseType != "ManifestBase" {
			t.Errorf("BaseType = %q, want ManifestBase", s.BaseType)
		}
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("GUIGEN_OUTPUT_DIR", "from-env")
		s, err := Load(LoadOptions{
			ManifestPath: manifestPath,
			Flags:        newFlags(t, "--output-dir", "from-flag"),
		})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if s.OutputDir != "from-flag" {
			t.Errorf("OutputDir = %q, want from-flag", s.OutputDir)
		}
		// Unchanged flags must not shadow lower layers.
		if s.BaseType != "ManifestBase" {
			t.Errorf("BaseType = %q, want ManifestBase", s.BaseType)
		}
	})
}

func TestLoadEnvBool(t *testing.T) {
	isolate(t)
	t.Setenv("GUIGEN_SILENT_NO_ARGS", "true")
	t.Setenv("GUIGEN_ATOMIC", "false")

	s, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !s.SilentNoArgs {
		t.Error("SilentNoArgs = false, want true from env")
	}
	if s.Atomic {
		t.Error("Atomic = true, want false from env")
	}
}

func TestLoadInvalidManifest(t *testing.T) {
	isolate(t)
	manifestPath := filepath.Join(t.TempDir(), "guigen.yaml")
	writeFile(t, manifestPath, "header_ext: .h\nunknown_key: 1\n")

	_, err := Load(LoadOptions{ManifestPath: manifestPath})
	var me *ManifestError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want *ManifestError", err)
	}
	if len(me.Issues) < 2 {
		t.Errorf("Issues = %+v, want at least 2", me.Issues)
	}
}

func TestLoadMissingExplicitManifest(t *testing.T) {
	isolate(t)
	if _, err := Load(LoadOptions{ManifestPath: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Fatal("expected error for missing explicit manifest")
	}
}

func TestSettingsOptions(t *testing.T) {
	isolate(t)

	t.Run("variant replaces include target", func(t *testing.T) {
		manifestPath := filepath.Join(t.TempDir(), "guigen.yaml")
		writeFile(t, manifestPath, "variant: aggregate\n")

		s, err := Load(LoadOptions{ManifestPath: manifestPath})
		if err != nil {
			t.Fatal(err)
		}
		opts, err := s.Options()
		if err != nil {
			t.Fatal(err)
		}
		if opts.IncludeTarget != "../guiElements.h" {
			t.Errorf("IncludeTarget = %q, want ../guiElements.h", opts.IncludeTarget)
		}
		if !opts.Atomic {
			t.Error("Atomic should default to true")
		}
	})

	t.Run("explicit include flag beats manifest variant", func(t *testing.T) {
		manifestPath := filepath.Join(t.TempDir(), "guigen.yaml")
		writeFile(t, manifestPath, "variant: aggregate\n")

		s, err := Load(LoadOptions{
			ManifestPath: manifestPath,
			Flags:        newFlags(t, "--include-target", "Custom.h"),
		})
		if err != nil {
			t.Fatal(err)
		}
		opts, err := s.Options()
		if err != nil {
			t.Fatal(err)
		}
		if opts.IncludeTarget != "Custom.h" {
			t.Errorf("IncludeTarget = %q, want Custom.h", opts.IncludeTarget)
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		s := &Settings{Variant: "bogus"}
		if _, err := s.Options(); err == nil {
			t.Error("expected error for unknown variant")
		}
	})
}

func TestSetGet(t *testing.T) {
	home := isolate(t)

	if err := Set(KeyOutputDir, "src/gui"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := Set(KeyNoClobber, "yes"); err != nil {
		t.Fatalf("Set(bool) error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := Get(KeyOutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if got != "src/gui" {
		t.Errorf("Get(output_dir) = %q, want src/gui", got)
	}

	s, err := Load(LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.OutputDir != "src/gui" || !s.NoClobber {
		t.Errorf("Load after Set: OutputDir=%q NoClobber=%v", s.OutputDir, s.NoClobber)
	}

	all, err := All()
	if err != nil {
		t.Fatal(err)
	}
	if all[KeyOutputDir] != "src/gui" || all[KeyNoClobber] != "true" || all[KeyHeaderExt] != "h" {
		t.Errorf("All() = %v", all)
	}
}

func TestSetRejects(t *testing.T) {
	isolate(t)

	tests := []struct {
		name, key, value string
	}{
		{"unknown key", "colour", "blue"},
		{"bad bool", KeyAtomic, "maybe"},
		{"bad extension", KeyHeaderExt, ".h"},
		{"bad variant", KeyVariant, "everything"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Set(tt.key, tt.value); err == nil {
				t.Errorf("Set(%q, %q) should fail", tt.key, tt.value)
			}
		})
	}
	if _, err := Get("colour"); err == nil {
		t.Error("Get(unknown) should fail")
	}
}
