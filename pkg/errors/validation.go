package errors

import (
	"strings"
	"unicode"
)

// MaxModulus bounds the level N of congruence subgroups accepted from users.
// The index of Γ(N) grows like N³, so larger levels are rejected up front.
const MaxModulus = 1000

// ValidateModulus validates the level N of a congruence subgroup.
func ValidateModulus(n int64) error {
	if n < 1 {
		return New(ErrCodeInvalidGroup, "modulus must be positive, got %d", n)
	}
	if n > MaxModulus {
		return New(ErrCodeInvalidGroup, "modulus too large (max %d), got %d", MaxModulus, n)
	}
	return nil
}

// ValidateGroupSpec performs cheap syntactic checks on a subgroup spec string
// before it is parsed. It rejects empty input, control characters and
// anything longer than 64 characters.
func ValidateGroupSpec(spec string) error {
	if strings.TrimSpace(spec) == "" {
		return New(ErrCodeInvalidGroup, "group cannot be empty")
	}
	if len(spec) > 64 {
		return New(ErrCodeInvalidGroup, "group spec too long (max 64 characters)")
	}
	for _, r := range spec {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGroup, "group spec contains invalid control characters")
		}
	}
	return nil
}

// ValidateOutputBase validates a base path for generated files.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not end in a path separator
func ValidateOutputBase(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidInput, "output path must name a file, not a directory")
	}

	return nil
}
