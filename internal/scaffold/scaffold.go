package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var scaffoldFS embed.FS

const (
	declarationTemplate    = "declaration.h.tmpl"
	implementationTemplate = "implementation.cpp.tmpl"
)

var templates = template.Must(template.ParseFS(scaffoldFS, "templates/*.tmpl"))

// templateData holds all variables available to the scaffold templates.
type templateData struct {
	ClassName     string // e.g., "Button"
	Guard         string // e.g., "BUTTON_H_INCLUDED"
	IncludeTarget string // e.g., "GuiElement.h"
	BaseType      string // e.g., "GuiElement"
	HeaderExt     string // e.g., "h"
}

// Scaffold is a rendered file pair that has not been written anywhere.
type Scaffold struct {
	ClassName          string
	DeclarationFile    string // e.g., "Button.h"
	ImplementationFile string // e.g., "Button.cpp"
	Declaration        string
	Implementation     string
}

// GenerateDeclaration renders the declaration file for className.
func GenerateDeclaration(className string, opts Options) (string, error) {
	data, err := newTemplateData(className, opts)
	if err != nil {
		return "", err
	}
	return execute(declarationTemplate, data)
}

// GenerateImplementation renders the implementation file for className: an
// include of the declaration file followed by a blank line.
func GenerateImplementation(className string, opts Options) (string, error) {
	data, err := newTemplateData(className, opts)
	if err != nil {
		return "", err
	}
	return execute(implementationTemplate, data)
}

// Render produces both files for className without touching the filesystem.
func Render(className string, opts Options) (*Scaffold, error) {
	opts = opts.withDefaults()

	decl, err := GenerateDeclaration(className, opts)
	if err != nil {
		return nil, err
	}
	impl, err := GenerateImplementation(className, opts)
	if err != nil {
		return nil, err
	}

	return &Scaffold{
		ClassName:          className,
		DeclarationFile:    className + "." + opts.HeaderExt,
		ImplementationFile: className + "." + opts.SourceExt,
		Declaration:        decl,
		Implementation:     impl,
	}, nil
}

func newTemplateData(className string, opts Options) (*templateData, error) {
	if err := ValidateName(className); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &templateData{
		ClassName:     className,
		Guard:         Guard(className),
		IncludeTarget: opts.IncludeTarget,
		BaseType:      opts.BaseType,
		HeaderExt:     opts.HeaderExt,
	}, nil
}

func execute(name string, data *templateData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
