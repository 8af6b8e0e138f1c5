package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"tileworld/pkg/engine/input"
	"tileworld/pkg/engine/logging"
	"tileworld/pkg/engine/terminal"
	"tileworld/pkg/game/assets"
	"tileworld/pkg/game/config"
	"tileworld/pkg/game/devtools"
	"tileworld/pkg/game/generator"
	"tileworld/pkg/game/i18n"
	"tileworld/pkg/game/renderer/ebiten"
	"tileworld/pkg/game/scenes"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type flags struct {
	config    string
	skipMenu  bool
	seed      int64
	dump      bool
	logFile   string
	lang      string
	debug     bool
	generator string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.config, "config", config.DefaultFile, "preferences file")
	flag.BoolVar(&f.skipMenu, "skip-menu", false, "start in the world instead of the main menu")
	flag.Int64Var(&f.seed, "seed", 0, "map seed (0 picks one from the clock)")
	flag.BoolVar(&f.dump, "dump", false, "print a generated map to stdout and exit")
	flag.StringVar(&f.logFile, "log", "", "also write the log to this file")
	flag.StringVar(&f.lang, "lang", "", "UI language, e.g. en or de")
	flag.BoolVar(&f.debug, "debug", false, "debug logging and overlay")
	flag.StringVar(&f.generator, "generator", "", "map layout: crossroads or trails")
	flag.Parse()
	return f
}

// applyFlags lays explicitly set flags over the loaded options.
func applyFlags(opts config.Options, f flags) config.Options {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "skip-menu":
			opts.SkipMenu = f.skipMenu
		case "seed":
			opts.Seed = f.seed
		case "log":
			opts.LogFile = f.logFile
		case "lang":
			opts.Locale = f.lang
		case "debug":
			opts.Debug = f.debug
		case "generator":
			opts.Generator = f.generator
		}
	})
	return opts
}

func main() {
	f := parseFlags()

	opts, cfgErr := config.Load(f.config)
	opts = applyFlags(opts, f)

	log, sync := logging.New(logging.Options{
		File:    opts.LogFile,
		Debug:   opts.Debug,
		Console: !f.dump,
	})
	defer sync()

	if cfgErr != nil {
		log.Warnw("Using default options", "error", cfgErr)
	}
	if err := opts.Validate(); err != nil {
		log.Errorw("Invalid options", "error", err)
		sync()
		os.Exit(2)
	}

	if err := i18n.SetLocale(opts.Locale); err != nil {
		log.Warnw("Locale not available", "locale", opts.Locale, "error", err)
	}

	gen, ok := generator.ByName(opts.Generator)
	if !ok {
		log.Errorw("Unknown generator", "generator", opts.Generator)
		sync()
		os.Exit(2)
	}

	if f.dump {
		if err := dumpMap(gen, opts.Seed, log); err != nil {
			fmt.Fprintln(os.Stderr, err)
			sync()
			os.Exit(1)
		}
		return
	}

	bindings := input.NewBindings()
	if err := bindings.Apply(opts.Bindings); err != nil {
		log.Warnw("Ignoring invalid key bindings", "error", err)
	}

	if err := run(f.config, opts, bindings, gen, log); err != nil {
		log.Errorw("Game exited with error", "error", err)
		sync()
		os.Exit(1)
	}
}

func run(path string, opts config.Options, bindings *input.Bindings, gen generator.TilemapGenerator, log *zap.SugaredLogger) error {
	store := &assets.Store{}
	r := ebiten.New(ebiten.Options{
		Title:   i18n.T("GAME_TITLE"),
		Version: version,
		Config:  opts,
	}, bindings, log)

	g, err := scenes.New(scenes.Deps{
		Options:   opts,
		Bindings:  bindings,
		Generator: gen,
		Assets:    store,
		Loaders:   append(store.Loaders(), r.Loaders()...),
		SaveZoom: func(z float64) {
			if err := config.SaveZoom(path, z); err != nil {
				log.Warnw("Could not save zoom", "path", path, "error", err)
			}
		},
		SaveBinding: func(a input.Action, code string) {
			name := strings.ToLower(input.ActionName(a))
			if err := config.SaveBinding(path, name, code); err != nil {
				log.Warnw("Could not save binding", "path", path, "action", name, "error", err)
			}
		},
	}, log)
	if err != nil {
		return err
	}

	log.Infow("Starting", "version", version, "generator", gen.Name(), "seed", opts.Seed)
	return r.Run(g)
}

// dumpMap generates one map and prints it, coloured when stdout is a terminal.
func dumpMap(gen generator.TilemapGenerator, seed int64, log *zap.SugaredLogger) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := gen.Generate(rand.New(rand.NewSource(seed)), log)
	if m == nil {
		return err
	}
	m.Seed = seed
	if err != nil {
		log.Warnw("Map is incomplete", "error", err)
	}
	return devtools.Dump(os.Stdout, m, devtools.DumpOptions{
		Color: terminal.IsTerminal(),
		Width: terminal.GetWidth(),
	})
}
