package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrUnsupported is returned when the running binary does not satisfy the
// manifest's version constraint.
var ErrUnsupported = errors.New("unsupported guigen version")

// IsRelease reports whether v parses as a semantic version. Local builds
// ("dev") are not releases.
func IsRelease(v string) bool {
	_, err := parseSemver(v)
	return err == nil
}

// CheckRequires verifies that current satisfies constraint (e.g. ">= 0.2.0").
// An empty constraint always passes, and so does a non-release build, since
// there is no version to compare.
func CheckRequires(constraint, current string) error {
	if strings.TrimSpace(constraint) == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	if !IsRelease(current) {
		return nil
	}

	cv, _ := parseSemver(current)
	if ok, errs := c.Validate(cv); !ok {
		reasons := make([]string, 0, len(errs))
		for _, e := range errs {
			reasons = append(reasons, e.Error())
		}
		return fmt.Errorf("%w: %s (%s)", ErrUnsupported, current, strings.Join(reasons, "; "))
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
