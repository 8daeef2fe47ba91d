package config

import (
	"github.com/spf13/pflag"

	"github.com/synthgui/guigen/internal/scaffold"
)

// RegisterFlags defines one flag per overridable setting. Load binds them
// back by name.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagName(KeyOutputDir), "o", DefaultOutputDir, "Directory to write the file pair into (must exist)")
	fs.String(FlagName(KeyIncludeTarget), scaffold.DefaultIncludeTarget, "Header named in the generated #include line")
	fs.String(FlagName(KeyVariant), "", "Include target preset: element or aggregate")
	fs.String(FlagName(KeyBaseType), scaffold.DefaultBaseType, "Base class of the generated type")
	fs.String(FlagName(KeyHeaderExt), scaffold.DefaultHeaderExt, "Declaration file extension")
	fs.String(FlagName(KeySourceExt), scaffold.DefaultSourceExt, "Implementation file extension")
	fs.Bool(FlagName(KeyAtomic), true, "Stage both files and rename them into place, rolling back on failure")
	fs.Bool(FlagName(KeyNoClobber), false, "Refuse to overwrite existing files")
	fs.Bool(FlagName(KeySilentNoArgs), false, "Exit 0 without output when no class name is given")
	fs.String(FlagName(KeyAggregateHeader), "", "Aggregate header that should include the new class")
}
