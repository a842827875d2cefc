package naming_test

import (
	"strings"
	"testing"

	"hero-quest/internal/domain"
	"hero-quest/internal/naming"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_PrefixesByKind(t *testing.T) {
	gen := naming.NewGenerator()

	tests := []struct {
		kind   domain.Kind
		prefix string
	}{
		{kind: domain.KindClock, prefix: "clock-"},
		{kind: domain.KindTimer, prefix: "timer-"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			name, err := gen.Generate(tt.kind)
			require.NoError(t, err)

			require.True(t, strings.HasPrefix(name, tt.prefix), "got %q", name)
			assert.Len(t, name, len(tt.prefix)+6)
		})
	}
}

func TestGenerator_RejectsUnknownKind(t *testing.T) {
	gen := naming.NewGenerator()

	name, err := gen.Generate(domain.Kind("sundial"))

	assert.ErrorIs(t, err, naming.ErrUnknownKind)
	assert.Empty(t, name)
}

func TestGenerator_ExcludesLookAlikes(t *testing.T) {
	gen := naming.NewGenerator()
	excluded := "0o1li"

	for i := 0; i < 5000; i++ {
		name, err := gen.Generate(domain.KindClock)
		require.NoError(t, err)
		suffix := strings.TrimPrefix(name, "clock-")
		for _, c := range excluded {
			assert.False(t, strings.ContainsRune(suffix, c),
				"suffix %q should not contain %q", suffix, string(c))
		}
	}
}

func TestGenerator_ProducesUniqueNamesStatistically(t *testing.T) {
	gen := naming.NewGenerator()
	seen := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		name, err := gen.Generate(domain.KindTimer)
		require.NoError(t, err)
		seen[name] = true
	}

	// 31^6 combinations make a collision in 1000 draws very unlikely.
	assert.Len(t, seen, count)
}
