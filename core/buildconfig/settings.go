package buildconfig

import (
	"os"
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/chainconfig/core/config"
)

// Settings controls how the process-wide configuration is loaded and logged.
type Settings struct {
	SecretsFile string `env:"CHAINCONFIG_SECRETS_FILE" envDefault:".env"`
	LogLevel    string `env:"CHAINCONFIG_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"CHAINCONFIG_LOG_FORMAT" envDefault:"text"`
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	return env.ToMap(os.Environ())
}

// Default loads the process environment once, using Settings read from the
// same environment, and returns that result on every call.
var Default = sync.OnceValues(func() (*BuildConfig, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return nil, err
	}

	l, err := New(WithSecretsFile(s.SecretsFile))
	if err != nil {
		return nil, err
	}
	return l.Load(Environ())
})
