package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synthgui/guigen/internal/branding"
	"github.com/synthgui/guigen/internal/config"
	"github.com/synthgui/guigen/internal/manifest"
	"github.com/synthgui/guigen/internal/scaffold"
	"github.com/synthgui/guigen/internal/version"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a project manifest against the schema",
	Long: `Validate a project manifest (default ./` + branding.ManifestFile() + `). Schema problems are
listed one per line. A "requires" constraint the running binary does not
satisfy and an unknown variant are reported as well.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := branding.ManifestFile()
		if len(args) == 1 {
			path = args[0]
		}

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", issue)
			}
			return &config.ManifestError{Path: path, Issues: result.Issues}
		}

		m, err := manifest.Parse(path)
		if err != nil {
			return err
		}
		if err := version.CheckRequires(m.Requires, buildVersion); err != nil {
			return err
		}
		if m.Requires != "" && !version.IsRelease(buildVersion) {
			reporter.Warn("%s build, requires %q not checked", buildVersion, m.Requires)
		}
		if m.Variant != "" {
			if _, err := scaffold.IncludeForVariant(m.Variant); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
		return nil
	},
}
