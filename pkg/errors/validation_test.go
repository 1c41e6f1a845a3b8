package errors

import (
	"testing"
)

func TestValidatePartition(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		wantErr bool
	}{
		{"single row", []int{5}, false},
		{"staircase", []int{3, 2, 1}, false},
		{"equal parts", []int{2, 2, 2}, false},
		{"single column", []int{1, 1, 1, 1}, false},

		{"empty", nil, true},
		{"zero part", []int{3, 0}, true},
		{"negative part", []int{3, -1}, true},
		{"increasing", []int{1, 2}, true},
		{"increasing later", []int{3, 1, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePartition(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePartition(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPartition) {
				t.Errorf("ValidatePartition(%v) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateCycleCounts(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		wantErr bool
	}{
		{"identity", []int{3, 0, 0}, false},
		{"all zero", []int{0, 0}, false},
		{"mixed", []int{3, 1, 0, 0, 1, 0, 0, 0, 0, 0}, false},

		{"empty", []int{}, true},
		{"negative", []int{1, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCycleCounts(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCycleCounts(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCycles) {
				t.Errorf("ValidateCycleCounts(%v) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateConsistent(t *testing.T) {
	tests := []struct {
		name    string
		parts   []int
		counts  []int
		wantErr bool
	}{
		{"identity n=3", []int{2, 1}, []int{3, 0, 0}, false},
		{"three-cycle", []int{2, 1}, []int{0, 0, 1}, false},
		{"n=10", []int{5, 3, 2}, []int{3, 1, 0, 0, 1, 0, 0, 0, 0, 0}, false},

		{"vector too short", []int{2, 1}, []int{3, 0}, true},
		{"vector too long", []int{2, 1}, []int{3, 0, 0, 0}, true},
		{"cycles cover too few points", []int{2, 1}, []int{1, 0, 0}, true},
		{"cycles cover too many points", []int{2, 1}, []int{1, 0, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConsistent(tt.parts, tt.counts)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConsistent(%v, %v) error = %v, wantErr %v", tt.parts, tt.counts, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeSizeMismatch) {
				t.Errorf("ValidateConsistent(%v, %v) returned wrong error code: %v", tt.parts, tt.counts, err)
			}
		})
	}
}

func TestValidateDegree(t *testing.T) {
	if err := ValidateDegree(5, 20); err != nil {
		t.Errorf("ValidateDegree(5, 20) = %v, want nil", err)
	}
	if err := ValidateDegree(20, 20); err != nil {
		t.Errorf("ValidateDegree(20, 20) = %v, want nil", err)
	}
	if err := ValidateDegree(0, 20); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("ValidateDegree(0, 20) = %v, want %s", err, ErrCodeInvalidInput)
	}
	if err := ValidateDegree(21, 20); !Is(err, ErrCodeTooLarge) {
		t.Errorf("ValidateDegree(21, 20) = %v, want %s", err, ErrCodeTooLarge)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidPartition,
		ErrCodeInvalidCycles,
		ErrCodeInvalidFormat,
		ErrCodeInvalidConfig,
		ErrCodeSizeMismatch,
		ErrCodeTooLarge,
		ErrCodeFileNotFound,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
