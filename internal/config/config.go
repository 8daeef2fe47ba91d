package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/synthgui/guigen/internal/branding"
	"github.com/synthgui/guigen/internal/manifest"
	"github.com/synthgui/guigen/internal/scaffold"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys shared by the user config, the manifest, env vars, and flags.
const (
	KeyOutputDir       = "output_dir"
	KeyIncludeTarget   = "include_target"
	KeyVariant         = "variant"
	KeyBaseType        = "base_type"
	KeyHeaderExt       = "header_ext"
	KeySourceExt       = "source_ext"
	KeyAtomic          = "atomic"
	KeyNoClobber       = "no_clobber"
	KeySilentNoArgs    = "silent_no_args"
	KeyAggregateHeader = "aggregate_header"
	KeyRequires        = "requires"
)

// DefaultOutputDir is where the classic generator dropped its files.
const DefaultOutputDir = "../gui/"

var defaults = map[string]interface{}{
	KeyOutputDir:       DefaultOutputDir,
	KeyIncludeTarget:   scaffold.DefaultIncludeTarget,
	KeyVariant:         "",
	KeyBaseType:        scaffold.DefaultBaseType,
	KeyHeaderExt:       scaffold.DefaultHeaderExt,
	KeySourceExt:       scaffold.DefaultSourceExt,
	KeyAtomic:          true,
	KeyNoClobber:       false,
	KeySilentNoArgs:    false,
	KeyAggregateHeader: "",
	KeyRequires:        "",
}

// Keys returns every known setting key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is a known setting.
func IsKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

// Settings is the resolved configuration for one run.
type Settings struct {
	OutputDir       string `mapstructure:"output_dir"`
	IncludeTarget   string `mapstructure:"include_target"`
	Variant         string `mapstructure:"variant"`
	BaseType        string `mapstructure:"base_type"`
	HeaderExt       string `mapstructure:"header_ext"`
	SourceExt       string `mapstructure:"source_ext"`
	Atomic          bool   `mapstructure:"atomic"`
	NoClobber       bool   `mapstructure:"no_clobber"`
	SilentNoArgs    bool   `mapstructure:"silent_no_args"`
	AggregateHeader string `mapstructure:"aggregate_header"`
	Requires        string `mapstructure:"requires"`

	// ManifestPath is the project manifest that was merged, if any.
	ManifestPath string `mapstructure:"-"`
}

// Options converts the settings into scaffold options. A variant, when set,
// replaces the include target.
func (s *Settings) Options() (scaffold.Options, error) {
	opts := scaffold.Options{
		IncludeTarget:   s.IncludeTarget,
		BaseType:        s.BaseType,
		HeaderExt:       s.HeaderExt,
		SourceExt:       s.SourceExt,
		Atomic:          s.Atomic,
		NoClobber:       s.NoClobber,
		AggregateHeader: s.AggregateHeader,
	}
	if s.Variant != "" {
		target, err := scaffold.IncludeForVariant(s.Variant)
		if err != nil {
			return scaffold.Options{}, err
		}
		opts.IncludeTarget = target
	}
	return opts, nil
}

// ManifestError reports a project manifest that failed schema validation.
type ManifestError struct {
	Path   string
	Issues []manifest.ValidationIssue
}

func (e *ManifestError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("invalid manifest %s: %s", e.Path, strings.Join(msgs, "; "))
}

// LoadOptions selects the sources Load merges.
type LoadOptions struct {
	// ManifestPath is an explicit project manifest. When empty, the default
	// manifest file in the working directory is used if it exists.
	ManifestPath string

	// Flags, when non-nil, are bound by key name with dashes (output-dir →
	// output_dir). Only flags the user changed take precedence.
	Flags *pflag.FlagSet
}

// Dir returns the user config directory. GUIGEN_HOME overrides ~/.guigen.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load resolves settings from every layer.
func Load(opts LoadOptions) (*Settings, error) {
	v := newViper()

	if err := readIfExists(v, FilePath(), v.ReadInConfig); err != nil {
		return nil, err
	}

	manifestPath, err := resolveManifest(opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	if manifestPath != "" {
		result, err := manifest.ValidateFile(manifestPath)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, &ManifestError{Path: manifestPath, Issues: result.Issues}
		}
		if err := readIfExists(v, manifestPath, v.MergeInConfig); err != nil {
			return nil, err
		}
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	s.ManifestPath = manifestPath
	return &s, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	return v
}

// readIfExists points v at path and runs read, skipping missing files.
func readIfExists(v *viper.Viper, path string, read func() error) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	v.SetConfigFile(path)
	if err := read(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

func resolveManifest(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("manifest: %w", err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(branding.ManifestFile()); err == nil {
		return branding.ManifestFile(), nil
	}
	return "", nil
}

// FlagName returns the command-line flag for a setting key
// (output_dir → output-dir).
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// bindFlags binds every flag whose name maps to a setting key. An explicit
// --include-target clears any variant coming from a lower layer.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !IsKey(key) || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return fmt.Errorf("binding flags: %w", bindErr)
	}

	if flagChanged(flags, KeyIncludeTarget) && !flagChanged(flags, KeyVariant) {
		v.Set(KeyVariant, "")
	}
	return nil
}

func flagChanged(flags *pflag.FlagSet, key string) bool {
	f := flags.Lookup(FlagName(key))
	return f != nil && f.Changed
}
