package bishop

import (
	"errors"
	"testing"
)

func TestDecodeLength(t *testing.T) {
	tests := []struct {
		fingerprint string
		want        int
	}{
		{"", 0},
		{"00", 4},
		{"d41d8cd9", 16},
		{"d41d8cd98f00b204e9800998ecf8427e", 64},
	}

	for _, tt := range tests {
		moves, err := Decode(tt.fingerprint)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", tt.fingerprint, err)
		}
		if len(moves) != tt.want {
			t.Errorf("Decode(%q): expected %d moves, got %d", tt.fingerprint, tt.want, len(moves))
		}
	}
}

func TestDecodeZeroByte(t *testing.T) {
	moves, err := Decode("00")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := []Move{NW, NW, NW, NW}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move %d: expected %v, got %v", i, want[i], m)
		}
	}
}

func TestDecodePairOrder(t *testing.T) {
	// Bit pairs come out least-significant pair first within each byte.
	tests := []struct {
		fingerprint string
		want        []Move
	}{
		// 0x1b = 00 01 10 11 written, reversed per byte
		{"1b", []Move{SE, SW, NE, NW}},
		// 0xd4 = 11 01 01 00 written
		{"d4", []Move{NW, NE, NE, SE}},
		// byte order itself is preserved
		{"001b", []Move{NW, NW, NW, NW, SE, SW, NE, NW}},
	}

	for _, tt := range tests {
		t.Run(tt.fingerprint, func(t *testing.T) {
			moves, err := Decode(tt.fingerprint)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if len(moves) != len(tt.want) {
				t.Fatalf("expected %d moves, got %d", len(tt.want), len(moves))
			}
			for i, m := range moves {
				if m != tt.want[i] {
					t.Errorf("move %d: expected %v, got %v", i, tt.want[i], m)
				}
			}
		})
	}
}

func TestDecodeCaseInsensitive(t *testing.T) {
	lower, err := Decode("ab9f")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	upper, err := Decode("AB9F")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for i := range lower {
		if lower[i] != upper[i] {
			t.Errorf("move %d: lower %v != upper %v", i, lower[i], upper[i])
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name        string
		fingerprint string
	}{
		{"odd length", "abc"},
		{"single digit", "f"},
		{"non-hex pair", "zz"},
		{"non-hex second digit", "0g"},
		{"whitespace", "0 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := Decode(tt.fingerprint)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if moves != nil {
				t.Errorf("expected no moves on failure, got %d", len(moves))
			}
		})
	}
}

func TestDecodeErrorOffset(t *testing.T) {
	_, err := Decode("00x0")
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %T", err)
	}
	if derr.Offset != 2 {
		t.Errorf("expected offset 2, got %d", derr.Offset)
	}
}
