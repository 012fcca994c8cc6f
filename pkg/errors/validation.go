package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseCount parses a positional CLI token as a base-10 integer.
// name identifies the parameter in the error message (e.g. "nodeCount").
func ParseCount(name, token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, Wrap(ErrCodeInvalidArgument, err, "%s must be an integer, got %q", name, token)
	}
	return n, nil
}

// ValidateRange checks that v lies within [lo, hi].
func ValidateRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidArgument, "%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return nil
}

// ValidateNonNegative checks that v is zero or positive.
func ValidateNonNegative(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidArgument, "%s must not be negative, got %d", name, v)
	}
	return nil
}

// ValidateFilename validates an output filename for safety.
// It ensures the filename is a simple basename without path components,
// so a generated name can never escape the output directory.
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidArgument, "output filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidArgument, "output filename cannot contain path separators: %q", filename)
	}

	if filename == "." || filename == ".." {
		return New(ErrCodeInvalidArgument, "invalid output filename: %q", filename)
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidArgument, "output filename contains invalid control characters")
		}
	}

	return nil
}
