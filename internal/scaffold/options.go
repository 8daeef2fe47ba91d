package scaffold

import (
	"fmt"
	"sort"
	"strings"
)

// Include target presets. The element preset includes the base class header
// directly; the aggregate preset pulls in the header that includes every
// GUI element.
const (
	VariantElement   = "element"
	VariantAggregate = "aggregate"
)

var variants = map[string]string{
	VariantElement:   "GuiElement.h",
	VariantAggregate: "../guiElements.h",
}

// Defaults applied by DefaultOptions and to empty Options fields.
const (
	DefaultIncludeTarget = "GuiElement.h"
	DefaultBaseType      = "GuiElement"
	DefaultHeaderExt     = "h"
	DefaultSourceExt     = "cpp"
)

// Options controls the shape of the generated pair.
type Options struct {
	IncludeTarget   string // header named in the #include line
	BaseType        string // parent class of the generated type
	HeaderExt       string // declaration file extension, without dot
	SourceExt       string // implementation file extension, without dot
	Atomic          bool   // stage both files and rename into place
	NoClobber       bool   // refuse to overwrite existing files
	AggregateHeader string // header to register the new class in; empty skips
}

// DefaultOptions returns the options matching the classic generator output.
func DefaultOptions() Options {
	return Options{
		IncludeTarget: DefaultIncludeTarget,
		BaseType:      DefaultBaseType,
		HeaderExt:     DefaultHeaderExt,
		SourceExt:     DefaultSourceExt,
		Atomic:        true,
	}
}

// IncludeForVariant maps a preset name to its include target.
func IncludeForVariant(variant string) (string, error) {
	target, ok := variants[variant]
	if !ok {
		names := make([]string, 0, len(variants))
		for name := range variants {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", fmt.Errorf("unknown variant %q: must be one of %s", variant, strings.Join(names, ", "))
	}
	return target, nil
}

func (o Options) withDefaults() Options {
	if o.IncludeTarget == "" {
		o.IncludeTarget = DefaultIncludeTarget
	}
	if o.BaseType == "" {
		o.BaseType = DefaultBaseType
	}
	if o.HeaderExt == "" {
		o.HeaderExt = DefaultHeaderExt
	}
	if o.SourceExt == "" {
		o.SourceExt = DefaultSourceExt
	}
	return o
}

func (o Options) validate() error {
	if !baseTypePattern.MatchString(o.BaseType) {
		return fmt.Errorf("invalid base type %q", o.BaseType)
	}
	if !extPattern.MatchString(o.HeaderExt) {
		return fmt.Errorf("invalid header extension %q", o.HeaderExt)
	}
	if !extPattern.MatchString(o.SourceExt) {
		return fmt.Errorf("invalid source extension %q", o.SourceExt)
	}
	if o.HeaderExt == o.SourceExt {
		return fmt.Errorf("header and source extensions must differ, both are %q", o.HeaderExt)
	}
	if strings.ContainsAny(o.IncludeTarget, "\"\n") {
		return fmt.Errorf("invalid include target %q", o.IncludeTarget)
	}
	return nil
}
