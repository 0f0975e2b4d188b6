// Package fixture builds, stores and verifies regression tables of
// generator output. Tables are encoded as Arrow IPC files so they can be
// inspected with any Arrow tooling and diffed across ports.
package fixture

import (
	"errors"
	"fmt"

	"github.com/moontrade/numx/pkg/seedrand"
	"github.com/moontrade/numx/pkg/xmur3"
)

type Kind string

const (
	// KindStream rows hold successive outputs of an unsalted stream.
	KindStream Kind = "stream"
	// KindPseudo rows hold the single salted PseudoRandom output.
	KindPseudo Kind = "pseudo"
)

var (
	ErrMismatch = errors.New("fixture mismatch")
	ErrKind     = errors.New("unknown fixture kind")
)

// Row is one recorded output. Seed is the already stringified seed.
type Row struct {
	Kind  Kind
	Seed  string
	Step  int64
	Raw   uint32
	Value float64
}

// Streams records steps outputs for each seed.
func Streams(seeds []string, steps int) []Row {
	rows := make([]Row, 0, len(seeds)*steps)
	for _, seed := range seeds {
		h := xmur3.New(seed)
		for i := 0; i < steps; i++ {
			raw := h.Next()
			rows = append(rows, Row{
				Kind:  KindStream,
				Seed:  seed,
				Step:  int64(i),
				Raw:   raw,
				Value: float64(raw) / (1 << 32),
			})
		}
	}
	return rows
}

// Pseudo records PseudoRandom for each seed.
func Pseudo(seeds []any) ([]Row, error) {
	rows := make([]Row, 0, len(seeds))
	for _, seed := range seeds {
		s, err := seedrand.SeedString(seed)
		if err != nil {
			return nil, fmt.Errorf("seed %#v: %w", seed, err)
		}
		h := xmur3.New(seedrand.Salt + s)
		raw := h.Next()
		rows = append(rows, Row{
			Kind:  KindPseudo,
			Seed:  s,
			Raw:   raw,
			Value: float64(raw) / (1 << 32),
		})
	}
	return rows, nil
}

// Verify recomputes every row and reports each row that differs.
func Verify(rows []Row) error {
	var errs []error
	for i, row := range rows {
		if err := verifyRow(row); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func verifyRow(row Row) error {
	var (
		raw   uint32
		value float64
	)
	switch row.Kind {
	case KindStream:
		r := seedrand.NewString(row.Seed)
		for i := int64(0); i < row.Step; i++ {
			r.Uint32()
		}
		raw = r.Uint32()
		value = float64(raw) / (1 << 32)
	case KindPseudo:
		h := xmur3.New(seedrand.Salt + row.Seed)
		raw = h.Next()
		value = seedrand.PseudoRandom(row.Seed)
	default:
		return fmt.Errorf("%w: %q", ErrKind, row.Kind)
	}
	if raw != row.Raw || value != row.Value {
		return fmt.Errorf("%w: %s %q step %d: recorded (%d, %v), computed (%d, %v)",
			ErrMismatch, row.Kind, row.Seed, row.Step, row.Raw, row.Value, raw, value)
	}
	return nil
}
