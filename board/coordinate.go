package board

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate is returned when a square name or file/rank pair is off the board.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a 1-based (file, rank) pair. File 1 is the a-file, rank 1 is White's back rank.
// Off-board values are representable and must be checked with Valid before use.
type Coordinate struct {
	File int
	Rank int
}

// NoCoordinate is the zero value and stands for "no square" (e.g. no en passant target).
var NoCoordinate = Coordinate{}

// Coord builds a coordinate without validating it.
func Coord(file, rank int) Coordinate { return Coordinate{File: file, Rank: rank} }

// Valid reports whether the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return c.File >= 1 && c.File <= 8 && c.Rank >= 1 && c.Rank <= 8
}

// Offset returns the coordinate shifted by the given file and rank deltas. The result may be invalid.
func (c Coordinate) Offset(df, dr int) Coordinate {
	return Coordinate{File: c.File + df, Rank: c.Rank + dr}
}

// index maps a valid coordinate onto 0..63 (a1 = 0, h8 = 63).
func (c Coordinate) index() int { return (c.Rank-1)*8 + (c.File - 1) }

func coordFromIndex(i int) Coordinate { return Coordinate{File: i%8 + 1, Rank: i/8 + 1} }

// String renders a valid coordinate in algebraic form ("e4").
func (c Coordinate) String() string {
	if !c.Valid() {
		if c == NoCoordinate {
			return "-"
		}
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return string([]byte{'a' + byte(c.File-1), '1' + byte(c.Rank-1)})
}

// ParseCoordinate converts an algebraic square name such as "e4" into a Coordinate.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return NoCoordinate, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoCoordinate, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return Coordinate{File: int(f-'a') + 1, Rank: int(r-'1') + 1}, nil
}

// MustCoordinate is ParseCoordinate for literals; it panics on malformed input.
func MustCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}
