// Command sdb is a standalone REPL front end for the expression engine:
// it reads commands from stdin and dispatches them against a machine
// state, without any attached CPU emulator.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/rv32dbg/sdb/config"
	"github.com/rv32dbg/sdb/debugger"
	"github.com/rv32dbg/sdb/vm"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		configPath  = flag.String("config", "", "Path to a config.toml (default: platform config dir)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("sdb %s (%s)\n", Version, Commit)
		os.Exit(0)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "sdb: %v\n", err)
		os.Exit(1)
	}

	machine := vm.NewMachine()
	dbg := debugger.NewDebugger(machine)
	dbg.ColorOutput = cfg.Display.ColorOutput
	dbg.WordsPerLine = cfg.Display.WordsPerLine
	dbg.NumberFormat = cfg.Display.NumberFormat

	runRepl(dbg, cfg, os.Stdin, os.Stdout)
}

func runRepl(dbg *debugger.Debugger, cfg *config.Config, in *os.File, out *os.File) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		dbg.Execute(line)
		if text := dbg.GetOutput(); text != "" && cfg.Debugger.EchoResult {
			fmt.Fprint(out, text)
		}
	}
}
