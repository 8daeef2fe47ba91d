package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/synthgui/guigen/internal/platform"
)

const filePerm = 0644

// Result holds the outcome of a scaffold write.
type Result struct {
	OutputDir   string
	Files       []string // written paths, declaration first
	Overwritten []string // paths that existed before the write
	Registered  bool     // include line added to the aggregate header
}

// commitStaged is swapped out by tests to simulate a failing rename.
var commitStaged = (*platform.StagedFile).Commit

// target is one file of the pair along with what was on disk before.
type target struct {
	path    string
	data    []byte
	existed bool
	prev    []byte
	mode    fs.FileMode
}

// WriteScaffold renders the pair for className and writes it to outputDir,
// overwriting existing files unless opts.NoClobber is set. outputDir must
// already exist.
func WriteScaffold(outputDir, className string, opts Options) (*Result, error) {
	rendered, err := Render(className, opts)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	info, err := os.Stat(outputDir)
	if err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output directory: %w", &fs.PathError{Op: "stat", Path: outputDir, Err: syscall.ENOTDIR})
	}

	targets := []*target{
		{path: filepath.Join(outputDir, rendered.DeclarationFile), data: []byte(rendered.Declaration)},
		{path: filepath.Join(outputDir, rendered.ImplementationFile), data: []byte(rendered.Implementation)},
	}

	result := &Result{OutputDir: outputDir}
	for _, t := range targets {
		if err := t.inspect(); err != nil {
			return nil, err
		}
		if t.existed {
			if opts.NoClobber {
				return nil, fmt.Errorf("%s: %w", t.path, ErrExists)
			}
			result.Overwritten = append(result.Overwritten, t.path)
		}
	}

	if opts.Atomic {
		if err := writeAtomic(targets); err != nil {
			return result, err
		}
		for _, t := range targets {
			result.Files = append(result.Files, t.path)
		}
	} else if err := writeDirect(targets, result); err != nil {
		return result, err
	}

	if opts.AggregateHeader != "" {
		added, err := RegisterInclude(opts.AggregateHeader, targets[0].path)
		if err != nil {
			return result, err
		}
		result.Registered = added
	}

	return result, nil
}

// inspect records whether the target exists and keeps its content so that a
// failed atomic write can put it back.
func (t *target) inspect() error {
	info, err := os.Stat(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		t.mode = filePerm
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", t.path, err)
	}
	if info.IsDir() {
		return &fs.PathError{Op: "write", Path: t.path, Err: syscall.EISDIR}
	}
	prev, err := os.ReadFile(t.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", t.path, err)
	}
	t.existed = true
	t.prev = prev
	t.mode = info.Mode().Perm()
	return nil
}

// restore undoes a committed write.
func (t *target) restore() error {
	if !t.existed {
		return os.Remove(t.path)
	}
	return platform.WriteFileAtomic(t.path, t.prev, t.mode)
}

// writeAtomic stages every target before renaming any of them. A failed
// rename rolls back the targets already committed.
func writeAtomic(targets []*target) error {
	staged := make([]*platform.StagedFile, 0, len(targets))
	defer func() {
		for _, s := range staged {
			s.Discard()
		}
	}()

	for _, t := range targets {
		s, err := platform.StageFile(t.path, t.data, t.mode)
		if err != nil {
			return fmt.Errorf("staging %s: %w", t.path, err)
		}
		staged = append(staged, s)
	}

	for i, s := range staged {
		if err := commitStaged(s); err != nil {
			for _, done := range targets[:i] {
				if rerr := done.restore(); rerr != nil {
					return fmt.Errorf("writing %s: %w (rollback of %s failed: %v)", s.Path, err, done.path, rerr)
				}
			}
			return fmt.Errorf("writing %s: %w", s.Path, err)
		}
	}
	return nil
}

// writeDirect writes targets in order with no rollback. A failure can leave
// the first file written; result.Files reports what landed.
func writeDirect(targets []*target, result *Result) error {
	for _, t := range targets {
		if err := os.WriteFile(t.path, t.data, filePerm); err != nil {
			return fmt.Errorf("writing %s: %w", t.path, err)
		}
		result.Files = append(result.Files, t.path)
	}
	return nil
}
