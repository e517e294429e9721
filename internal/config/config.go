// Package config loads issuetrack settings from flags, environment, and an
// optional config file, plus yaml seed files for the server's initial data.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Defaults, overridable via issuetrack.yaml, ISSUETRACK_* env vars, or flags.
const (
	DefaultListen = "localhost:4000"
	DefaultServer = "http://localhost:4000"
)

// Settings captures the resolved configuration.
type Settings struct {
	Listen string // server listen address
	Server string // client base URL
	Seed   string // path to a yaml seed file, empty for built-in samples
	NoSeed bool   // start the server with an empty store
}

// Load resolves settings from an optional issuetrack.yaml in the working
// directory and ISSUETRACK_* environment variables. Flag values are bound
// by the commands before calling Load.
func Load(v *viper.Viper) (Settings, error) {
	v.SetDefault("listen", DefaultListen)
	v.SetDefault("server", DefaultServer)
	v.SetDefault("seed", "")
	v.SetDefault("no-seed", false)

	v.SetEnvPrefix("ISSUETRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("issuetrack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Settings{
		Listen: v.GetString("listen"),
		Server: v.GetString("server"),
		Seed:   v.GetString("seed"),
		NoSeed: v.GetBool("no-seed"),
	}, nil
}
