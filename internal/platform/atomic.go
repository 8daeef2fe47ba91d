package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const tempPattern = ".guigen-tmp-*"

// StagedFile is content written to a temp file beside its final path,
// waiting for Commit to rename it into place.
type StagedFile struct {
	Path    string
	tmpPath string
	done    bool
}

// StageFile writes data to a temp file in the same directory as path so that
// the later rename stays on one filesystem. The caller must ensure the parent
// directory exists and must call Commit or Discard.
func StageFile(path string, data []byte, perm os.FileMode) (*StagedFile, error) {
	f, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return nil, err
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, err
	}
	if err := chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return nil, err
	}

	return &StagedFile{Path: path, tmpPath: tmpPath}, nil
}

// Commit renames the temp file over Path.
func (s *StagedFile) Commit() error {
	if s.done {
		return fmt.Errorf("staged file for %s already finalized", s.Path)
	}
	if err := os.Rename(s.tmpPath, s.Path); err != nil {
		return err
	}
	s.done = true
	return nil
}

// Discard removes the temp file. It is safe to call after Commit.
func (s *StagedFile) Discard() {
	if s.done {
		return
	}
	os.Remove(s.tmpPath)
	s.done = true
}

// WriteFileAtomic writes data to path using a temp file + rename.
// If the operation fails, the original file (if any) is left unchanged.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	staged, err := StageFile(path, data, perm)
	if err != nil {
		return err
	}
	defer staged.Discard()
	return staged.Commit()
}

// chmod is a no-op on Windows, which has no Unix permission bits.
func chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
