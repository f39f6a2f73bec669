package secrets_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/chainconfig/pkg/secrets"
)

const raw = "0xdeadbeef"

func TestSecretReveal(t *testing.T) {
	t.Parallel()

	s := secrets.New(raw)
	assert.Equal(t, raw, s.Reveal())
	assert.False(t, s.IsZero())
	assert.True(t, secrets.Secret{}.IsZero())
	assert.True(t, s.Equal(secrets.New(raw)))
	assert.False(t, s.Equal(secrets.New("other")))
}

func TestSecretFormatting(t *testing.T) {
	t.Parallel()

	s := secrets.New(raw)

	for _, verb := range []string{"%v", "%+v", "%s", "%q", "%x", "%d"} {
		t.Run(verb, func(t *testing.T) {
			out := fmt.Sprintf(verb, s)
			assert.NotContains(t, out, "deadbeef")
			assert.Contains(t, out, secrets.Redacted)
		})
	}

	t.Run("go syntax", func(t *testing.T) {
		out := fmt.Sprintf("%#v", s)
		assert.Equal(t, "secrets.Secret{[REDACTED]}", out)
	})

	t.Run("nested in struct", func(t *testing.T) {
		type holder struct {
			Name     string
			Key      secrets.Secret
			Ptr      *secrets.Secret
			Accounts []secrets.Secret
		}
		h := holder{Name: "sepolia", Key: s, Ptr: &s, Accounts: []secrets.Secret{s}}

		for _, verb := range []string{"%v", "%+v", "%#v"} {
			out := fmt.Sprintf(verb, h)
			assert.NotContains(t, out, "deadbeef", verb)
			assert.Contains(t, out, "sepolia", verb)
		}
	})
}

func TestSecretLogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	log.Info("loaded", slog.Any("key", secrets.New(raw)))

	assert.NotContains(t, buf.String(), "deadbeef")
	assert.Contains(t, buf.String(), `"key":"[REDACTED]"`)
}

func TestSecretMarshal(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		out, err := json.Marshal(map[string]any{"apiKey": secrets.New(raw)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"apiKey":"[REDACTED]"}`, string(out))
	})

	t.Run("text", func(t *testing.T) {
		out, err := secrets.New(raw).MarshalText()
		require.NoError(t, err)
		assert.Equal(t, secrets.Redacted, string(out))
	})

	t.Run("json unmarshal keeps raw value", func(t *testing.T) {
		var s secrets.Secret
		require.NoError(t, json.Unmarshal([]byte(`"xyz"`), &s))
		assert.Equal(t, "xyz", s.Reveal())
	})
}

func TestSecretFromEnvironment(t *testing.T) {
	t.Parallel()

	type cfg struct {
		APIKey secrets.Secret  `env:"ETHERSCAN_KEY"`
		Opt    *secrets.Secret `env:"OPTIONAL_KEY"`
	}

	var c cfg
	err := env.ParseWithOptions(&c, env.Options{
		Environment: map[string]string{"ETHERSCAN_KEY": "xyz"},
	})
	require.NoError(t, err)
	assert.Equal(t, "xyz", c.APIKey.Reveal())
	assert.Nil(t, c.Opt)
}
