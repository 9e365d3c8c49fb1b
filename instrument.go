package optfolio

import (
	"fmt"
	"strings"

	"github.com/optfolio/optfolio/date"
)

// OptionKind is the kind of option contract, a call or a put.
type OptionKind string

const (
	Call OptionKind = "call"
	Put  OptionKind = "put"
)

// ParseOptionKind parses a string into an OptionKind. It accepts any casing.
func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	default:
		return "", fmt.Errorf("unknown option kind: %q", s)
	}
}

// Instrument is the identity tuple of an option contract. Two transaction
// legs refer to the same contract when their instruments are equal. The side
// is deliberately not part of the identity: a closing transaction inverts the
// side of the lot it closes.
type Instrument struct {
	Underlying string     `json:"underlying"`
	Kind       OptionKind `json:"kind"`
	Strike     Price      `json:"strike"`
	Expiry     date.Date  `json:"expiry"`
}

// Key returns the canonical string used to match opening and closing legs.
func (i Instrument) Key() string {
	return fmt.Sprintf("%s %s %s %s", i.Underlying, i.Expiry, i.Kind, i.Strike)
}

// Equal reports whether two instruments identify the same contract.
func (i Instrument) Equal(o Instrument) bool {
	return i.Underlying == o.Underlying &&
		i.Kind == o.Kind &&
		i.Strike.Equal(o.Strike) &&
		i.Expiry == o.Expiry
}

// String formats the instrument the way brokerage statements describe it,
// e.g. "PLTR 2026-02-20 Put $150".
func (i Instrument) String() string {
	kind := string(i.Kind)
	if kind != "" {
		kind = strings.ToUpper(kind[:1]) + kind[1:]
	}
	return fmt.Sprintf("%s %s %s $%s", i.Underlying, i.Expiry, kind, i.Strike)
}
