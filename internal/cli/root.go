package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/synthgui/guigen/internal/branding"
	"github.com/synthgui/guigen/internal/config"
	"github.com/synthgui/guigen/internal/diag"
	"github.com/synthgui/guigen/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Persistent flags shared by all commands.
var (
	verbose      bool
	quiet        bool
	manifestPath string
)

// reporter is set up in PersistentPreRun once flags are parsed.
var reporter *diag.Reporter

// errUsage marks command-line misuse (bad flags, too many arguments).
var errUsage = errors.New("usage error")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [ClassName]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` writes a declaration/implementation file pair for a new class that
publicly extends GuiElement:

  <output-dir>/<ClassName>.h    include guard, #include, empty class body
  <output-dir>/<ClassName>.cpp  #include of the header

Settings come from flags, ` + branding.EnvPrefix() + `_* environment variables, the project
manifest (` + branding.ManifestFile() + `) and the user config file, in that order.

The subcommand names (version, config, validate, completion, help) run those
commands, so they cannot be used as class names.

Examples:
  guigen Button
  guigen Slider --output-dir src/gui --variant aggregate
  guigen Knob --aggregate-header ../gui/GuiElements.h
  guigen Meter --stdout`,
	Args:          classNameArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		reporter = diag.New(diag.LevelFor(quiet, verbose), cmd.ErrOrStderr())
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Report every file written")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only report errors")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "config", "", "Project manifest (default ./"+branding.ManifestFile()+" when present)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
}

func classNameArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected one class name, got %d arguments", errUsage, len(args))
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	reporter = nil
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		r := reporter
		if r == nil {
			r = diag.New(diag.LevelError, stderr)
		}
		r.Error("%v", err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status:
// 2 for usage problems, 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage),
		errors.Is(err, scaffold.ErrMissingArgument),
		errors.Is(err, scaffold.ErrInvalidName):
		return 2
	default:
		return 1
	}
}

// loadSettings resolves settings for commands that take scaffold flags.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	s, err := config.Load(config.LoadOptions{
		ManifestPath: manifestPath,
		Flags:        cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}
	if s.ManifestPath != "" {
		reporter.Verbose("Using manifest %s", s.ManifestPath)
	}
	return s, nil
}
