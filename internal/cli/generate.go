package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synthgui/guigen/internal/config"
	"github.com/synthgui/guigen/internal/scaffold"
	"github.com/synthgui/guigen/internal/version"
)

var printStdout bool

func init() {
	config.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().BoolVar(&printStdout, "stdout", false, "Print both files to stdout instead of writing them")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := version.CheckRequires(settings.Requires, buildVersion); err != nil {
		return err
	}

	if len(args) == 0 {
		if settings.SilentNoArgs {
			return nil
		}
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return scaffold.ErrMissingArgument
	}
	name := args[0]

	opts, err := settings.Options()
	if err != nil {
		return err
	}

	if printStdout {
		return printScaffold(cmd, name, opts)
	}

	reporter.Verbose("Output directory: %s", settings.OutputDir)
	reporter.Verbose("Include target: %s, base type: %s", opts.IncludeTarget, opts.BaseType)

	result, err := scaffold.WriteScaffold(settings.OutputDir, name, opts)
	if result != nil {
		for _, f := range result.Files {
			reporter.Verbose("Wrote %s", f)
		}
	}
	if err != nil {
		return err
	}

	for _, f := range result.Overwritten {
		reporter.Verbose("Overwrote existing %s", f)
	}
	if opts.AggregateHeader != "" {
		if result.Registered {
			reporter.Info("Registered %s in %s", name, opts.AggregateHeader)
		} else {
			reporter.Verbose("%s already lists %s", opts.AggregateHeader, name)
		}
	}
	return nil
}

func printScaffold(cmd *cobra.Command, name string, opts scaffold.Options) error {
	s, err := scaffold.Render(name, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, f := range []struct{ name, body string }{
		{s.DeclarationFile, s.Declaration},
		{s.ImplementationFile, s.Implementation},
	} {
		fmt.Fprintf(out, "// ==> %s <==\n%s", f.name, f.body)
		// The declaration has no final newline; keep the next header on its own line.
		if !strings.HasSuffix(f.body, "\n") {
			fmt.Fprintln(out)
		}
	}
	return nil
}
