package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

func defaultConfig() (Config, error) {
	var def Config

	err := toml.Unmarshal([]byte(DefaultCfg), &def)

	if err != nil {
		return Config{}, errors.Wrap(err, "parsing default config")
	}

	return def, nil
}

// DefaultCfg shows the default configuration of the akhbar client
var DefaultCfg = `
[api]
	url = "http://localhost:8000"
[api.limits]
	articles-per-query = 50
	breaking-news = 10
[log]
	level = "info"     # error, info, debug
	file = "-"         # stderr, or a filename
	formatter = "text" # text, json
[timeout]
	connect = "1s"
	read-write = "5s"
[storage]
	path = "./storage/session.db"
[ui]
	search-debounce = "500ms"
	min-search-runes = 2
`
