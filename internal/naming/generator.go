package naming

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"hero-quest/internal/domain"
)

// Lowercase letters and digits without the look-alikes 0, o, 1, l, i.
const alphabet = "23456789abcdefghjkmnpqrstuvwxyz"
const suffixLength = 6

// ErrUnknownKind is returned for kinds that have no name prefix.
var ErrUnknownKind = errors.New("no name prefix for kind")

var prefixes = map[domain.Kind]string{
	domain.KindClock: "clock",
	domain.KindTimer: "timer",
}

// Generator names clocks and timers created without a name, as
// "<kind>-<suffix>", e.g. "timer-k3x9qa".
type Generator struct {
	alphabet string
	length   int
}

// NewGenerator creates a Generator with the default alphabet and length.
func NewGenerator() *Generator {
	return &Generator{
		alphabet: alphabet,
		length:   suffixLength,
	}
}

// Generate returns a fresh name for a record of the given kind.
func (g *Generator) Generate(kind domain.Kind) (string, error) {
	prefix, ok := prefixes[kind]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	b := make([]byte, g.length)
	alphabetLen := big.NewInt(int64(len(g.alphabet)))

	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("generating name: %w", err)
		}
		b[i] = g.alphabet[n.Int64()]
	}

	return prefix + "-" + string(b), nil
}
