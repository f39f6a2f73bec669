package envfile_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/chainconfig/core/envfile"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses key value pairs", func(t *testing.T) {
		content := strings.Join([]string{
			"# local secrets",
			"",
			"ALCHEMY_SEPOLIA_URL=https://rpc.example/abc",
			"  SEPOLIA_PRIVATE_KEY = 0xdeadbeef",
			"export ETHERSCAN_KEY=xyz",
			`QUOTED="with spaces"`,
			"SINGLE='single # not a comment'",
			"INLINE=value # trailing comment",
			"EMPTY=",
			"dotted.name=ok",
		}, "\n")

		vals, err := envfile.Parse(strings.NewReader(content), ".env")
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"ALCHEMY_SEPOLIA_URL": "https://rpc.example/abc",
			"SEPOLIA_PRIVATE_KEY": "0xdeadbeef",
			"ETHERSCAN_KEY":       "xyz",
			"QUOTED":              "with spaces",
			"SINGLE":              "single # not a comment",
			"INLINE":              "value",
			"EMPTY":               "",
			"dotted.name":         "ok",
		}, vals)
	})

	t.Run("keeps dollar signs literal", func(t *testing.T) {
		content := strings.Join([]string{
			"ETHERSCAN_KEY=abc$DEFkey",
			"A=1",
			"B=${A}",
			`DOUBLE="x$Y"`,
			"SINGLE='p$Q'",
			`ESCAPED=a\$b`,
		}, "\n")

		vals, err := envfile.Parse(strings.NewReader(content), ".env")
		require.NoError(t, err)

		assert.Equal(t, "abc$DEFkey", vals["ETHERSCAN_KEY"])
		assert.Equal(t, "${A}", vals["B"])
		assert.Equal(t, "x$Y", vals["DOUBLE"])
		assert.Equal(t, "p$Q", vals["SINGLE"])
		assert.Equal(t, `a\$b`, vals["ESCAPED"])
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		vals, err := envfile.Parse(strings.NewReader("\ufeffETHERSCAN_KEY=xyz\n"), ".env")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"ETHERSCAN_KEY": "xyz"}, vals)
	})

	t.Run("accepts dashes and leading digits in names", func(t *testing.T) {
		vals, err := envfile.Parse(strings.NewReader("MY-KEY=v\n1KEY=w\n"), ".env")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"MY-KEY": "v", "1KEY": "w"}, vals)
	})

	t.Run("later duplicates win", func(t *testing.T) {
		vals, err := envfile.Parse(strings.NewReader("A=1\nA=2\n"), ".env")
		require.NoError(t, err)
		assert.Equal(t, "2", vals["A"])
	})

	t.Run("empty input", func(t *testing.T) {
		vals, err := envfile.Parse(strings.NewReader(""), ".env")
		require.NoError(t, err)
		assert.Empty(t, vals)
	})
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		line    int
		reason  string
	}{
		{"missing separator", "A=1\nSEPOLIA_PRIVATE_KEY 0xdeadbeef\n", 2, "expected KEY=value"},
		{"empty key", "=value", 1, "invalid variable name"},
		{"key with space", "# c\n\nMY KEY=v", 3, "invalid variable name"},
		{"byte order mark after first line", "A=1\n\ufeffB=2", 2, "invalid variable name"},
		{"unterminated quote", `KEY="0xdeadbeef`, 1, "invalid value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals, err := envfile.Parse(strings.NewReader(tt.content), "secrets.env")
			require.Error(t, err)
			assert.Nil(t, vals)

			assert.ErrorIs(t, err, envfile.ErrMalformedSecretsFile)

			var merr *envfile.MalformedError
			require.True(t, errors.As(err, &merr))
			assert.Equal(t, "secrets.env", merr.Path)
			assert.Equal(t, tt.line, merr.Line)
			assert.Equal(t, tt.reason, merr.Reason)

			assert.NotContains(t, err.Error(), "deadbeef")
			assert.Contains(t, err.Error(), "secrets.env")
		})
	}
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("ETHERSCAN_KEY=xyz\n"), 0o600))

		vals, err := envfile.Read(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"ETHERSCAN_KEY": "xyz"}, vals)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := envfile.Read(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed file names path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("OK=1\nbroken\n"), 0o600))

		_, err := envfile.Read(path)
		require.ErrorIs(t, err, envfile.ErrMalformedSecretsFile)
		assert.Contains(t, err.Error(), path)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestMerge(t *testing.T) {
	t.Parallel()

	dst := map[string]string{"A": "from-env", "EMPTY": ""}
	src := map[string]string{"A": "from-file", "B": "b", "EMPTY": "filled"}

	added := envfile.Merge(dst, src)

	assert.Equal(t, 1, added)
	assert.Equal(t, map[string]string{"A": "from-env", "B": "b", "EMPTY": ""}, dst)
}
