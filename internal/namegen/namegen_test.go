package namegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := Random()
		parts := strings.Split(name, " ")
		require.Len(t, parts, 2, "name %q should be two words", name)
		assert.Contains(t, adjectives, parts[0])
		assert.Contains(t, animals, parts[1])
	}
}
