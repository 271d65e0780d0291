package errors

import "testing"

func TestValidateGraphName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "gold-material", false},
		{"with dots and underscores", "scene_01.v2", false},
		{"single character", "a", false},
		{"empty", "", true},
		{"leading dot", ".hidden", true},
		{"path separator", "a/b", true},
		{"backslash", "a\\b", true},
		{"traversal", "..", true},
		{"control character", "bad\x00name", true},
		{"space", "two words", true},
		{"too long", string(make([]byte, 200)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraphName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGraphName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGraphName) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidGraphName)
			}
		})
	}
}

func TestValidateArchetype(t *testing.T) {
	if err := ValidateArchetype("diffuse_bsdf"); err != nil {
		t.Errorf("ValidateArchetype(diffuse_bsdf) error = %v", err)
	}
	if err := ValidateArchetype("wavelength"); !Is(err, ErrCodeInvalidArchetype) {
		t.Errorf("unknown archetype error = %v, want %v", err, ErrCodeInvalidArchetype)
	}
	if err := ValidateArchetype(""); !Is(err, ErrCodeInvalidArchetype) {
		t.Errorf("empty archetype error = %v, want %v", err, ErrCodeInvalidArchetype)
	}
}

func TestValidateOutputPath(t *testing.T) {
	if err := ValidateOutputPath("out/material.svg"); err != nil {
		t.Errorf("ValidateOutputPath() error = %v", err)
	}
	if err := ValidateOutputPath(""); !Is(err, ErrCodeInvalidPath) {
		t.Errorf("empty path error = %v, want %v", err, ErrCodeInvalidPath)
	}
	if err := ValidateOutputPath("bad\x00path"); !Is(err, ErrCodeInvalidPath) {
		t.Errorf("null byte error = %v, want %v", err, ErrCodeInvalidPath)
	}
}

func TestValidateRenderFormat(t *testing.T) {
	for _, format := range []string{"dot", "svg", "SVG"} {
		if err := ValidateRenderFormat(format); err != nil {
			t.Errorf("ValidateRenderFormat(%q) error = %v", format, err)
		}
	}
	if err := ValidateRenderFormat("pdf"); !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("unsupported format error = %v, want %v", err, ErrCodeInvalidFormat)
	}
}
