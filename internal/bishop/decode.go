package bishop

// Decode turns a hex fingerprint into the bishop's move sequence.
//
// The string is split into 2-character bytes left to right. Within each
// byte the four bit pairs are consumed least-significant pair first, so
// move order inside a byte is reversed relative to its written bits while
// byte order across the fingerprint is preserved. Each pair selects a
// move: 00 NW, 01 NE, 10 SW, 11 SE. The result always holds exactly four
// moves per fingerprint byte.
func Decode(fingerprint string) ([]Move, error) {
	if len(fingerprint)%2 != 0 {
		return nil, &DecodeError{
			Offset:  len(fingerprint) - 1,
			Reason:  "odd number of hex digits",
			Wrapped: ErrInvalidInput,
		}
	}

	moves := make([]Move, 0, len(fingerprint)*2)
	for i := 0; i < len(fingerprint); i += 2 {
		hi, ok := hexNibble(fingerprint[i])
		if !ok {
			return nil, &DecodeError{Offset: i, Reason: "not a hex digit", Wrapped: ErrInvalidInput}
		}
		lo, ok := hexNibble(fingerprint[i+1])
		if !ok {
			return nil, &DecodeError{Offset: i + 1, Reason: "not a hex digit", Wrapped: ErrInvalidInput}
		}
		b := hi<<4 | lo
		for shift := 0; shift < 8; shift += 2 {
			moves = append(moves, Move(b>>shift&0b11))
		}
	}

	return moves, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
