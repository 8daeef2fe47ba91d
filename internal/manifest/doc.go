// Package manifest reads and validates the project manifest (guigen.yaml).
// The manifest pins scaffold settings for a source tree, such as the output
// directory and include target. Validation runs against an embedded JSON
// Schema so that typos in keys are reported instead of silently ignored.
package manifest
