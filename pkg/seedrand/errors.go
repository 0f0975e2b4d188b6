package seedrand

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSeed     = errors.New("invalid seed")
	ErrNilSeed         = fmt.Errorf("%w: nil", ErrInvalidSeed)
	ErrUnsupportedSeed = fmt.Errorf("%w: unsupported type", ErrInvalidSeed)
)

func IsInvalidSeed(err error) bool {
	return errors.Is(err, ErrInvalidSeed)
}
