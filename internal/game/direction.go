package game

import (
	"unicode"
	"unicode/utf8"
)

// Direction is the canonical single-letter key of an exit.
type Direction rune

const (
	North Direction = 'n'
	South Direction = 's'
	East  Direction = 'e'
	West  Direction = 'w'
	Up    Direction = 'u'
	Down  Direction = 'd'
)

// Directions lists every direction in display order.
var Directions = []Direction{North, South, East, West, Up, Down}

var directionNames = map[Direction]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
	Up:    "up",
	Down:  "down",
}

// ParseDirection normalizes a direction token to its canonical form using
// only the first character, case-insensitively. "N", "north" and "nowhere"
// all parse as North. ok is false for an empty token or an unrecognized
// first character, including leading whitespace.
func ParseDirection(token string) (Direction, bool) {
	if token == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(token)
	d := Direction(unicode.ToLower(r))
	if _, ok := directionNames[d]; !ok {
		return 0, false
	}
	return d, true
}

// String returns the full word for the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return string(d)
}

// Letter returns the single-letter form used in URLs and definitions.
func (d Direction) Letter() string {
	return string(rune(d))
}
