package errors

import (
	"testing"
)

func TestValidateRoomID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "r1", false},
		{"with dashes", "master-bedroom", false},
		{"unicode", "salón", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"control char", "r\x01", true},
		{"newline", "r1\n", true},
		{"leading space", " r1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoomID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRoomID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRoom) {
				t.Errorf("ValidateRoomID(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateCanvas(t *testing.T) {
	tests := []struct {
		w, h    int
		wantErr bool
	}{
		{40, 40, false},
		{60, 60, false},
		{48, 55, false},
		{39, 40, true},
		{40, 61, true},
		{0, 0, true},
		{-50, 50, true},
	}

	for _, tt := range tests {
		err := ValidateCanvas(tt.w, tt.h)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCanvas(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
		}
		if err != nil && GetCode(err) != ErrCodeInvalidCanvas {
			t.Errorf("ValidateCanvas(%d, %d) code = %v", tt.w, tt.h, GetCode(err))
		}
	}
}

func TestValidateDimension(t *testing.T) {
	zero, neg, ok := 0, -3, 6

	if err := ValidateDimension("r1", "width", nil); err != nil {
		t.Errorf("absent dimension should pass: %v", err)
	}
	if err := ValidateDimension("r1", "width", &ok); err != nil {
		t.Errorf("positive dimension should pass: %v", err)
	}
	for _, v := range []*int{&zero, &neg} {
		err := ValidateDimension("r1", "height", v)
		if !Is(err, ErrCodeInvalidDimension) {
			t.Errorf("ValidateDimension(%d) = %v, want %s", *v, err, ErrCodeInvalidDimension)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "plan.json", false},
		{"valid nested", "out/plans/house.png", false},

		{"empty", "", true},
		{"path traversal", "../../../etc/passwd", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidCanvas,
		ErrCodeInvalidRoom,
		ErrCodeDuplicateRoom,
		ErrCodeUnknownConnection,
		ErrCodeInvalidDimension,
		ErrCodeInvalidStyle,
		ErrCodeInvalidTheme,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
