package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/fsfault/errcode"
	"github.com/wippyai/fsfault/fault"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to directive file (one directive per line)")
		dump        = flag.Bool("dump", false, "Dump the error catalog and operation registry")
		check       = flag.Bool("check", false, "Validate the directive file and exit")
		verbose     = flag.Bool("v", false, "Debug logging to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fault.SetLogger(log)
	}

	if *interactive {
		if err := runInteractive(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *configFile == "" && !*dump {
		fmt.Fprintln(os.Stderr, "Usage: faultctl -config <file> [-check] [-v]")
		fmt.Fprintln(os.Stderr, "       faultctl -dump")
		fmt.Fprintln(os.Stderr, "       faultctl [-config <file>] -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*configFile, *dump, *check); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, dump, check bool) error {
	plain := !term.IsTerminal(int(os.Stdout.Fd()))
	render := func(style lipgloss.Style, s string) string {
		if plain {
			return s
		}
		return style.Render(s)
	}

	if dump {
		fmt.Println(render(headingStyle, "Error catalog:"))
		for _, code := range errcode.Codes() {
			name, _ := errcode.Name(code)
			fmt.Printf("  %s (%d) [%s]\n",
				render(nameStyle, name), int(code), errcode.Describe(code))
		}
		fmt.Println()
		fmt.Println(render(headingStyle, "Interceptable operations:"))
		for _, op := range fault.Ops() {
			fmt.Printf("  %s\n", render(nameStyle, string(op)))
		}
		if configFile == "" {
			return nil
		}
		fmt.Println()
	}

	eng := fault.NewEngine()
	eng.Init()
	if err := loadDirectives(eng, configFile); err != nil {
		return err
	}

	cfg := eng.Config()
	if check {
		fmt.Printf("%s: ok (%d fault entries, engine %s)\n",
			configFile, cfg.Table().Len(), onOff(cfg.Enabled()))
		return nil
	}

	fmt.Printf("%s %s\n", render(headingStyle, "Engine:"), onOff(cfg.Enabled()))
	fmt.Println(render(headingStyle, "Fault table:"))
	entries := cfg.Table().Snapshot()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Op < entries[j].Op })
	if len(entries) == 0 {
		fmt.Println("  (empty)")
	}
	for _, e := range entries {
		name, _ := errcode.Name(e.Code)
		fmt.Printf("  %s: %s (%d) [%s]\n",
			render(nameStyle, string(e.Op)),
			render(errnoStyle, name), int(e.Code), errcode.Describe(e.Code))
	}
	return nil
}

// loadDirectives applies a directive file to the engine. Lines are
// whitespace-tokenized; the first token names the directive. Blank lines and
// lines starting with # are skipped.
func loadDirectives(eng *fault.Engine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if err := eng.Apply(fields[0], fields[1:]); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
	}
	return sc.Err()
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
