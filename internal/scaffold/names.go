package scaffold

import (
	"fmt"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const guardSuffix = "_H_INCLUDED"

var (
	identPattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	baseTypePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)
	extPattern      = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// cppKeywords cannot be used as class names.
var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "asm": true, "auto": true,
	"bool": true, "break": true, "case": true, "catch": true, "char": true,
	"class": true, "const": true, "constexpr": true, "continue": true,
	"decltype": true, "default": true, "delete": true, "do": true,
	"double": true, "else": true, "enum": true, "explicit": true,
	"export": true, "extern": true, "false": true, "float": true, "for": true,
	"friend": true, "goto": true, "if": true, "inline": true, "int": true,
	"long": true, "mutable": true, "namespace": true, "new": true,
	"noexcept": true, "not": true, "nullptr": true, "operator": true,
	"or": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "template": true,
	"this": true, "throw": true, "true": true, "try": true, "typedef": true,
	"typename": true, "union": true, "unsigned": true, "using": true,
	"virtual": true, "void": true, "volatile": true, "while": true,
}

// ValidateName checks that name is usable as a C++ class identifier and as a
// file name fragment.
func ValidateName(name string) error {
	if name == "" {
		return ErrMissingArgument
	}
	if !identPattern.MatchString(name) {
		return fmt.Errorf("%w %q: must match pattern [A-Za-z_][A-Za-z0-9_]*", ErrInvalidName, name)
	}
	if cppKeywords[name] {
		return fmt.Errorf("%w %q: reserved C++ keyword", ErrInvalidName, name)
	}
	return nil
}

// Guard returns the include guard token for a class name, e.g. "Button" →
// "BUTTON_H_INCLUDED".
func Guard(name string) string {
	return cases.Upper(language.Und).String(name) + guardSuffix
}
