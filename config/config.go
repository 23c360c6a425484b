package config

import (
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the akhbar client configuration
type Config struct {
	API     API     `toml:"api"`
	Log     Log     `toml:"log"`
	Timeout Timeout `toml:"timeout"`
	Storage Storage `toml:"storage"`
	UI      UI      `toml:"ui"`
}

// Read loads the config data from the given path
func Read(path string) (Config, error) {
	c, err := defaultConfig()

	if err != nil {
		return Config{}, errors.WithMessage(err, "initializing default config")
	}

	if path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "reading config from %s", path)
		}

		if err = toml.Unmarshal(b, &c); err != nil {
			return Config{}, errors.Wrapf(err, "unmarshaling toml config from %s", path)
		}
	}

	for _, c := range []converter{&c.Log, &c.Timeout, &c.UI} {
		c.convert()
	}

	return c, nil

}
