package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/akhbar-news/akhbar/config"
)

// Command describes a subcommand
type Command struct {
	Name  string
	Desc  string
	Flags *flag.FlagSet
	Run   func(config.Config, []string) error
}

var (
	configPath = flag.String("config", "akhbar.toml", "akhbar config path")
	commands   = []Command{}
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		for _, cmd := range commands {
			if cmd.Name == args[0] {
				cmd.Flags.Parse(args[1:])

				cfg, err := config.Read(*configPath)
				if err != nil {
					log.Fatalf("Error reading config %s: %+v", *configPath, err)
				}

				if err := cmd.Run(cfg, cmd.Flags.Args()); err != nil {
					log.Fatalf("Error running %s: %+v", cmd.Name, err)
				}

				os.Exit(0)
			}
		}
	}

	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] COMMAND [ARGS]\n\nOptions:\n", os.Args[0])
	flag.PrintDefaults()

	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", cmd.Name, cmd.Desc)
	}
}
