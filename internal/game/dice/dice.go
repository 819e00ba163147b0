// Package dice provides the randomness abstraction and the two roll
// distributions used by the Two Dice Roll game.
package dice

import "fmt"

// Distribution selects how a roll sum is generated. It is a closed
// enumeration: only Real and Uniform are valid values.
type Distribution int

const (
	// Real sums two independent uniform draws in [1,6], producing the
	// standard triangular 2d6 distribution with its mode at 7.
	Real Distribution = iota
	// Uniform draws a single uniform value in [2,12].
	Uniform
)

// MinSum and MaxSum bound every roll sum either distribution can produce.
const (
	MinSum = 2
	MaxSum = 12
)

// String returns the canonical name of the distribution.
//
// Precondition: d must be Real or Uniform. Panics otherwise.
func (d Distribution) String() string {
	switch d {
	case Real:
		return "Real"
	case Uniform:
		return "Uniform"
	default:
		panic(fmt.Sprintf("dice: invalid Distribution %d", int(d)))
	}
}

// Valid reports whether d is one of the two defined distributions.
func (d Distribution) Valid() bool {
	return d == Real || d == Uniform
}

// MarshalText encodes the distribution as its canonical name.
//
// Postcondition: Returns "Real" or "Uniform", or an error for an
// out-of-range value.
func (d Distribution) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("dice: cannot marshal invalid Distribution %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a distribution from its canonical name.
//
// Postcondition: *d is Real or Uniform on success; unchanged on error.
func (d *Distribution) UnmarshalText(text []byte) error {
	parsed, err := ParseDistribution(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDistribution parses a distribution name. Matching is exact and
// case-sensitive: "Real" or "Uniform".
//
// Postcondition: Returns a valid Distribution or a descriptive error.
func ParseDistribution(s string) (Distribution, error) {
	switch s {
	case "Real":
		return Real, nil
	case "Uniform":
		return Uniform, nil
	default:
		return 0, fmt.Errorf("dice: unknown distribution %q (want \"Real\" or \"Uniform\")", s)
	}
}

// Source is the randomness provider for rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RollSum samples a single roll sum from the given distribution.
// This is the only randomness consumer in the game core.
//
// Precondition: d must be valid; src must be non-nil.
// Postcondition: Return value is in [MinSum, MaxSum].
func RollSum(d Distribution, src Source) int {
	switch d {
	case Uniform:
		return MinSum + src.Intn(MaxSum-MinSum+1)
	case Real:
		return (1 + src.Intn(6)) + (1 + src.Intn(6))
	default:
		panic(fmt.Sprintf("dice: RollSum called with invalid Distribution %d", int(d)))
	}
}
