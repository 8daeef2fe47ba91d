package manifest

// Manifest is the typed form of guigen.yaml. Pointer fields distinguish
// "not set" from the zero value.
type Manifest struct {
	OutputDir       string `yaml:"output_dir,omitempty"`
	IncludeTarget   string `yaml:"include_target,omitempty"`
	Variant         string `yaml:"variant,omitempty"`
	BaseType        string `yaml:"base_type,omitempty"`
	HeaderExt       string `yaml:"header_ext,omitempty"`
	SourceExt       string `yaml:"source_ext,omitempty"`
	Atomic          *bool  `yaml:"atomic,omitempty"`
	NoClobber       *bool  `yaml:"no_clobber,omitempty"`
	SilentNoArgs    *bool  `yaml:"silent_no_args,omitempty"`
	AggregateHeader string `yaml:"aggregate_header,omitempty"`
	Requires        string `yaml:"requires,omitempty"`
}
