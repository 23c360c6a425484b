package config

import (
	"io"
	"os"
	"time"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type API struct {
	URL string `toml:"url"`

	Limits struct {
		ArticlesPerQuery int `toml:"articles-per-query"`
		BreakingNews     int `toml:"breaking-news"`
	} `toml:"limits"`
}

type Log struct {
	Level     string `toml:"level"`
	File      string `toml:"file"`
	Formatter string `toml:"formatter"`

	Converted struct {
		Writer io.Writer
		Prefix string
	} `toml:"-"`
}

type Timeout struct {
	Connect   string `toml:"connect"`
	ReadWrite string `toml:"read-write"`

	Converted struct {
		Connect   time.Duration
		ReadWrite time.Duration
	} `toml:"-"`
}

type Storage struct {
	Path string `toml:"path"`
}

type UI struct {
	SearchDebounce string `toml:"search-debounce"`
	MinSearchRunes int    `toml:"min-search-runes"`

	Converted struct {
		SearchDebounce time.Duration
	} `toml:"-"`
}

type converter interface {
	convert()
}

func (c *Log) convert() {
	if c.File == "-" {
		c.Converted.Writer = os.Stderr
	} else {
		c.Converted.Writer = &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    20,
			MaxBackups: 5,
			MaxAge:     28,
		}
	}
}

func (c *Timeout) convert() {
	if d, err := time.ParseDuration(c.Connect); err == nil {
		c.Converted.Connect = d
	} else {
		c.Converted.Connect = time.Second
	}

	if d, err := time.ParseDuration(c.ReadWrite); err == nil {
		c.Converted.ReadWrite = d
	} else {
		c.Converted.ReadWrite = 5 * time.Second
	}
}

func (c *UI) convert() {
	if d, err := time.ParseDuration(c.SearchDebounce); err == nil {
		c.Converted.SearchDebounce = d
	} else {
		c.Converted.SearchDebounce = 500 * time.Millisecond
	}

	if c.MinSearchRunes <= 0 {
		c.MinSearchRunes = 2
	}
}
