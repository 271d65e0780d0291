package errors

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
)

// graphNameRegex matches valid stored-graph names. Names are used as store
// keys and as file basenames, so the alphabet is intentionally narrow.
var graphNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateGraphName validates a stored-graph name for safety and
// correctness. It rejects names that could be used for path traversal when
// the file backend maps names to paths.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidGraphName, "graph name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidGraphName, "graph name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraphName, "graph name contains invalid control characters")
		}
	}

	if !graphNameRegex.MatchString(name) {
		return New(ErrCodeInvalidGraphName, "invalid graph name: %q", name)
	}

	return nil
}

// ValidateArchetype validates a node archetype identifier against the
// catalog.
func ValidateArchetype(name string) error {
	if name == "" {
		return New(ErrCodeInvalidArchetype, "archetype cannot be empty")
	}
	if !shader.NodeType(name).IsValid() {
		return New(ErrCodeInvalidArchetype, "unknown archetype: %q", name)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateRenderFormat validates a render output format identifier.
func ValidateRenderFormat(format string) error {
	switch strings.ToLower(format) {
	case "dot", "svg":
		return nil
	default:
		return New(ErrCodeInvalidFormat, "unsupported render format: %q (want dot or svg)", format)
	}
}
