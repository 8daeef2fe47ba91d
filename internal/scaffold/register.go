package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/synthgui/guigen/internal/platform"
)

var endifPattern = regexp.MustCompile(`(?m)^[ \t]*#endif\b`)

// RegisterInclude adds an include of headerPath to an aggregate header such as
// gui/GuiElements.h. The include names headerPath relative to the aggregate's
// directory, so a root guiElements.h gets `#include "gui/Knob.h"`. The line
// goes right before the last #endif, or at the end of the file when there is
// none. It reports false when the include is already present.
func RegisterInclude(aggregatePath, headerPath string) (bool, error) {
	content, err := os.ReadFile(aggregatePath)
	if err != nil {
		return false, fmt.Errorf("reading aggregate header: %w", err)
	}

	include, err := relativeInclude(aggregatePath, headerPath)
	if err != nil {
		return false, err
	}
	line := []byte(fmt.Sprintf("#include \"%s\"", include))
	if hasLine(content, line) {
		return false, nil
	}

	updated := insertInclude(content, line)

	mode := os.FileMode(filePerm)
	if info, err := os.Stat(aggregatePath); err == nil {
		mode = info.Mode().Perm()
	}
	if err := platform.WriteFileAtomic(aggregatePath, updated, mode); err != nil {
		return false, fmt.Errorf("writing aggregate header: %w", err)
	}
	return true, nil
}

// relativeInclude returns headerPath as seen from the aggregate header's
// directory, with forward slashes.
func relativeInclude(aggregatePath, headerPath string) (string, error) {
	from, err := filepath.Abs(filepath.Dir(aggregatePath))
	if err != nil {
		return "", fmt.Errorf("resolving aggregate header: %w", err)
	}
	to, err := filepath.Abs(headerPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", headerPath, err)
	}
	rel, err := filepath.Rel(from, to)
	if err != nil {
		return "", fmt.Errorf("relating %s to %s: %w", headerPath, aggregatePath, err)
	}
	return filepath.ToSlash(rel), nil
}

func hasLine(content, line []byte) bool {
	for _, l := range bytes.Split(content, []byte("\n")) {
		if bytes.Equal(bytes.TrimSpace(l), line) {
			return true
		}
	}
	return false
}

func insertInclude(content, line []byte) []byte {
	locs := endifPattern.FindAllIndex(content, -1)
	if len(locs) == 0 {
		out := append([]byte{}, content...)
		if len(out) > 0 && out[len(out)-1] != '\n' {
			out = append(out, '\n')
		}
		out = append(out, line...)
		return append(out, '\n')
	}

	at := locs[len(locs)-1][0]
	head := content[:at]

	// Keep the blank-line padding above #endif: put the include right after
	// the last non-blank line.
	trimmed := bytes.TrimRight(head, " \t\r\n")
	rest := head[len(trimmed):]

	var out bytes.Buffer
	out.Write(trimmed)
	out.WriteByte('\n')
	out.Write(line)
	if len(rest) > 0 && rest[0] == '\n' {
		rest = rest[1:]
	}
	out.WriteByte('\n')
	out.Write(rest)
	out.Write(content[at:])
	return out.Bytes()
}
