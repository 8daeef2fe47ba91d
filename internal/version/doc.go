// Package version checks the running binary against the semver constraint a
// project manifest may declare in its "requires" key.
package version
