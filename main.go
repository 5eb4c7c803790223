// SPDX-License-Identifier: GPL-2.0-or-later

// Command geoaux runs auxiliary angle calculator scripts.
//
//	geoaux -e 'deg a 30; deg b 60; add a b; print'
//	geoaux -f script.txt
//	geoaux < script.txt
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"geoaux/calc"
	"geoaux/conlog"
)

var (
	configPath = flag.String("config", "", "YAML config file (empty = defaults)")
	scriptPath = flag.String("f", "", "script file to run")
	expr       = flag.String("e", "", "commands to run")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("geoaux: ")
	conlog.SetOutput(os.Stderr)

	cfg, err := calc.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var script string
	switch {
	case *expr != "":
		script = *expr
	case *scriptPath != "":
		b, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("failed to read script: %v", err)
		}
		script = string(b)
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read stdin: %v", err)
		}
		script = string(b)
	}

	s := calc.New(cfg, os.Stdout)
	if err := s.Run(script); err != nil {
		log.Fatal(err)
	}
}
