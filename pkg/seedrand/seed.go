package seedrand

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Seed is the set of types that always stringify successfully.
type Seed interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// SeedString renders seed as the string that gets hashed. Numbers follow
// the ECMAScript Number::toString rule so that 5, 5.0 and "5" all select the
// same sequence.
func SeedString(seed any) (string, error) {
	if seed == nil {
		return "", ErrNilSeed
	}
	v := reflect.ValueOf(seed)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return "", ErrNilSeed
		}
	}
	if s, ok := seed.(fmt.Stringer); ok {
		return s.String(), nil
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return FormatNumber(v.Float()), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedSeed, seed)
}

func seedString[S Seed](seed S) string {
	s, err := SeedString(seed)
	if err != nil {
		// unreachable for the Seed constraint
		panic(err)
	}
	return s
}

// FormatNumber formats f the way ECMAScript converts a Number to a String:
// shortest round-trip digits, fixed notation for 1e-6 <= |f| < 1e21 and
// exponential notation with an unpadded signed exponent otherwise.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
