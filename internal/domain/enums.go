package domain

import (
	"fmt"
	"strings"
)

// PieceID identifies one of the eight fixed pieces, A through H.
type PieceID uint8

const (
	PieceA PieceID = iota // V pentomino
	PieceB                // Z pentomino
	PieceC                // Y pentomino
	PieceD                // L pentomino
	PieceE                // U pentomino
	PieceF                // P pentomino
	PieceG                // N pentomino
	PieceH                // 2x3 rectangle hexomino
)

// NumPieces is the size of the fixed piece set: seven pentominoes plus one
// hexomino, 41 cells in total.
const NumPieces = 8

func (p PieceID) Valid() bool { return p < NumPieces }

// Letter is the single-letter display name, 'A' through 'H'.
func (p PieceID) Letter() byte { return 'A' + byte(p) }

func (p PieceID) String() string { return string(rune(p.Letter())) }

func (p PieceID) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid piece id %d", uint8(p))
	}
	return []byte{p.Letter()}, nil
}

func (p *PieceID) UnmarshalText(text []byte) error {
	if len(text) != 1 || text[0] < 'A' || text[0] > 'H' {
		return fmt.Errorf("invalid piece id %q", string(text))
	}
	*p = PieceID(text[0] - 'A')
	return nil
}

// EngineKind selects a solving engine.
type EngineKind string

const (
	EngineBacktrack EngineKind = "backtrack"
	EngineDLX       EngineKind = "dlx"
	EngineSAT       EngineKind = "sat"
)

// ParseEngineKind maps user input to an engine kind. The empty string
// selects the backtracking default.
func ParseEngineKind(s string) (EngineKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "backtrack", "backtracking":
		return EngineBacktrack, nil
	case "dlx", "dancing-links":
		return EngineDLX, nil
	case "sat":
		return EngineSAT, nil
	}
	return "", fmt.Errorf("unknown engine %q", s)
}
