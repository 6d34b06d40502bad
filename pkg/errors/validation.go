package errors

import (
	"regexp"
)

// nameRegex matches the slugs and variant names that end up in output
// filenames: lowercase ASCII words joined by single dashes.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// maxNameLength bounds filenames well below common filesystem limits.
const maxNameLength = 128

// ValidateName checks that name is safe to embed in an output filename.
// kind names the field in the error message (for example "slug").
//
// The rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 128 characters
//   - Only lowercase letters, digits and single inner dashes, which also
//     rules out path separators, traversal sequences and control characters
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "%s cannot be empty", kind)
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidConfig, "%s too long (max %d characters)", kind, maxNameLength)
	}
	if !nameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid %s: %q (use lowercase letters, digits and dashes)", kind, name)
	}
	return nil
}
