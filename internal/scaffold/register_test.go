package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const guiElementsHeader = `#ifndef GUI_ELEMENTS_H_INCLUDED
#define GUI_ELEMENTS_H_INCLUDED

#include <SFML/Graphics.hpp>

#include "events.h"
#include "GuiElement.h"
#include "Button.h"


#endif // GUI_ELEMENTS_H_INCLUDED`

func TestRegisterInclude(t *testing.T) {
	path := writeAggregate(t, guiElementsHeader)

	added, err := RegisterInclude(path, sibling(path, "Knob.h"))
	if err != nil {
		t.Fatalf("RegisterInclude() error: %v", err)
	}
	if !added {
		t.Fatal("added = false, want true")
	}

	want := `#ifndef GUI_ELEMENTS_H_INCLUDED
#define GUI_ELEMENTS_H_INCLUDED

#include <SFML/Graphics.hpp>

#include "events.h"
#include "GuiElement.h"
#include "Button.h"
#include "Knob.h"


#endif // GUI_ELEMENTS_H_INCLUDED`
	if got := readFile(t, path); got != want {
		t.Errorf("aggregate header mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRegisterIncludeIdempotent(t *testing.T) {
	path := writeAggregate(t, guiElementsHeader)

	if _, err := RegisterInclude(path, sibling(path, "Knob.h")); err != nil {
		t.Fatal(err)
	}
	once := readFile(t, path)

	added, err := RegisterInclude(path, sibling(path, "Knob.h"))
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("second RegisterInclude should report false")
	}
	if readFile(t, path) != once {
		t.Error("second RegisterInclude modified the file")
	}

	added, err = RegisterInclude(path, sibling(path, "Button.h"))
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("already listed include should not be added")
	}
}

func TestRegisterIncludeNoEndif(t *testing.T) {
	path := writeAggregate(t, "#pragma once\n#include \"Button.h\"")

	if _, err := RegisterInclude(path, sibling(path, "Knob.h")); err != nil {
		t.Fatal(err)
	}
	want := "#pragma once\n#include \"Button.h\"\n#include \"Knob.h\"\n"
	if got := readFile(t, path); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRegisterIncludeLastEndif(t *testing.T) {
	content := "#ifndef A\n#define A\n#ifdef DEBUG\n#include \"Debug.h\"\n#endif\n#include \"Button.h\"\n#endif //A\n"
	path := writeAggregate(t, content)

	if _, err := RegisterInclude(path, sibling(path, "Knob.h")); err != nil {
		t.Fatal(err)
	}
	got := readFile(t, path)
	if !strings.HasSuffix(got, "#include \"Button.h\"\n#include \"Knob.h\"\n#endif //A\n") {
		t.Errorf("include should go before the last #endif, got:\n%s", got)
	}
}

func TestRegisterIncludeRelativeToAggregate(t *testing.T) {
	root := t.TempDir()
	aggregate := filepath.Join(root, "guiElements.h")
	content := "#ifndef GUIELEMENTS_H_INCLUDED\n#define GUIELEMENTS_H_INCLUDED\n\n#include \"gui/Button.h\"\n\n#endif //GUIELEMENTS_H_INCLUDED\n"
	if err := os.WriteFile(aggregate, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	added, err := RegisterInclude(aggregate, filepath.Join(root, "gui", "Knob.h"))
	if err != nil {
		t.Fatalf("RegisterInclude() error: %v", err)
	}
	if !added {
		t.Fatal("added = false, want true")
	}
	got := readFile(t, aggregate)
	if !strings.Contains(got, "#include \"gui/Button.h\"\n#include \"gui/Knob.h\"\n") {
		t.Errorf("include should be relative to the aggregate header, got:\n%s", got)
	}

	added, err = RegisterInclude(aggregate, filepath.Join(root, "gui", "Button.h"))
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("gui/Button.h is already listed and should not be added")
	}
}

func TestRegisterIncludeMissingFile(t *testing.T) {
	if _, err := RegisterInclude(filepath.Join(t.TempDir(), "nope.h"), "Knob.h"); err == nil {
		t.Fatal("expected error for missing aggregate header")
	}
}

func writeAggregate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "GuiElements.h")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// sibling returns name in the same directory as path.
func sibling(path, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
