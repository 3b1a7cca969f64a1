// Package challenge implements streak and progress accounting for a
// fixed-length check-in challenge.
package challenge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Length is the duration of a challenge in days.
type Length int

// Supported challenge lengths.
const (
	Length21  Length = 21
	Length100 Length = 100
)

// ErrInvalidLength is returned for lengths outside the supported set.
var ErrInvalidLength = errors.New("challenge length must be 21 or 100")

// Valid reports whether l is a supported length.
func (l Length) Valid() bool {
	return l == Length21 || l == Length100
}

// Other returns the alternative supported length.
func (l Length) Other() Length {
	if l == Length100 {
		return Length21
	}
	return Length100
}

func (l Length) String() string {
	return strconv.Itoa(int(l))
}

// ParseLength parses the decimal form of a supported length.
func ParseLength(s string) (Length, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	l := Length(n)
	if !l.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return l, nil
}
