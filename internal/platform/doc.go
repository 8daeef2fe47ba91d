// Package platform provides staged file writes that land with a rename, so a
// reader never sees a half-written file. Permission bits are applied before
// the rename and skipped on Windows.
package platform
