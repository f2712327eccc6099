package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHash(t *testing.T) {
	assert.Equal(t, "abc", shortHash("abc"))
	assert.Equal(t, "12345678", shortHash("12345678"))
	assert.Equal(t, "0123abcd", shortHash("0123abcdef0123abcdef0123abcdef0123abcdef"))
}

func TestResolveToken(t *testing.T) {
	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "from-env")
		token = "from-flag"
		t.Cleanup(func() { token = "" })

		assert.Equal(t, "from-flag", resolveToken())
	})

	t.Run("falls back to environment", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "from-env")
		token = ""

		assert.Equal(t, "from-env", resolveToken())
	})

	t.Run("empty without either", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		token = ""

		assert.Equal(t, "", resolveToken())
	})
}
