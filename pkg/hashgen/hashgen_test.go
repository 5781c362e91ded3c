package hashgen_test

import (
	"strings"
	"testing"
	"time"

	"github.com/scheffer1/CVFast-sub000/pkg/hashgen"

	"github.com/stretchr/testify/assert"
)

const urlSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

func TestGenerate(t *testing.T) {
	g := hashgen.New()

	t.Run("Should produce fixed-length URL-safe hashes", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			hash := g.Generate("11111111-2222-3333-4444-555555555555")
			assert.Len(t, hash, hashgen.HashLength)
			for _, r := range hash {
				assert.Contains(t, urlSafeAlphabet, string(r))
			}
			// Base64 padding would break URLs.
			assert.False(t, strings.ContainsRune(hash, '='))
		}
	})

	t.Run("Should not repeat across calls with the same input", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			hash := g.Generate("same-curriculum")
			assert.False(t, seen[hash], "hash %q repeated", hash)
			seen[hash] = true
		}
	})

	t.Run("Should differ even with a frozen clock", func(t *testing.T) {
		frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		g := hashgen.NewWithNow(func() time.Time { return frozen })

		// The random component alone must be enough to avoid collisions.
		first := g.Generate("c1")
		second := g.Generate("c1")
		assert.NotEqual(t, first, second)
	})
}
