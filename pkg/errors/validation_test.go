package errors

import (
	"strings"
	"testing"
)

func TestValidateModulus(t *testing.T) {
	tests := []struct {
		name    string
		n       int64
		wantErr bool
	}{
		{"one", 1, false},
		{"prime", 17, false},
		{"max", MaxModulus, false},
		{"zero", 0, true},
		{"negative", -5, true},
		{"too large", MaxModulus + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModulus(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateModulus(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGroup) {
				t.Errorf("ValidateModulus(%d) code = %v, want %v", tt.n, GetCode(err), ErrCodeInvalidGroup)
			}
		})
	}
}

func TestValidateGroupSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"gamma0", "gamma0(5)", false},
		{"short form", "g1:7", false},
		{"full", "full", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("g", 65), true},
		{"control char", "gamma\x01(3)", true},
		{"newline", "gamma0(3)\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGroupSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGroupSpec(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputBase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "main", false},
		{"nested", "out/gamma0-5", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "main\x00", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputBase(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputBase(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
