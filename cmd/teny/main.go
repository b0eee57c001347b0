// Copyright 2025 The teny Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the teny Malagasy language tools as an IPC server, an HTTP
server or an interactive CLI.

teny checks spelling, finds word roots, predicts the next word, scores
sentiment and grades whole documents. Everything runs over one immutable
lexicon: the bundle embedded in the binary, optionally extended with the
.yaml bundles and .txt word lists of a directory.

# Usage

Start the msgpack IPC server on stdin/stdout:

	teny

Extend the lexicon and enable debug logs:

	teny -data /path/to/lexicon -d

Serve the JSON API on the configured address, or another one:

	teny -http
	teny -http -addr 127.0.0.1:9000

Try the analyzers interactively:

	teny -c -limit 8

# Configuration

Settings live in a TOML file created with defaults on first run:

	[server]
	max_limit = 64
	max_input = 10000

	[lexicon]
	dir = ""

	[spell]
	max_distance = 2
	default_limit = 5

	[http]
	addr = ":8080"

Sections that fail to decode fall back to their defaults without discarding
the rest of the file.

# Command Line Flags

	-version         Show version
	-data string     Directory of extra lexicon files (overrides [lexicon] dir)
	-d               Debug logging
	-c               Run the interactive CLI
	-http            Serve the JSON API instead of IPC
	-addr string     Listen address for -http (overrides [http] addr)
	-config string   Path to a config file
	-limit int       Results per CLI query
	-no-filter       Do not reject non-word CLI input
	-rebuild-config  Rewrite the default config file and exit
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/teny/internal/cli"
	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/httpapi"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "teny"
	gh      = "https://github.com/bastiangx/teny"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow between config, lexicon and the chosen front end.
func main() {
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	lexiconDir := flag.String("data", "", "Directory of extra lexicon files (.yaml bundles, .txt word lists)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	httpMode := flag.Bool("http", false, "Serve the JSON API instead of IPC")
	httpAddr := flag.String("addr", "", "Listen address for -http (default from config)")
	configFile := flag.String("config", "", "Path to a custom config file")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results per CLI query")
	noFilter := flag.Bool("no-filter", false, "Disable CLI input filtering (DBG only)")
	rebuildConfig := flag.Bool("rebuild-config", false, "Rewrite the default config file with defaults and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *rebuildConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		path, _ := config.GetDefaultConfigPath()
		log.Printf("Config rebuilt at %s", path)
		return
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Print("Either env is not set or system is not supported")
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	for k, v := range pathResolver.GetRuntimeInfo() {
		log.Debugf("runtime %s: %s", k, v)
	}

	appConfig, configPath := loadConfig(pathResolver, *configFile)
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	requestedDir := appConfig.Lexicon.Dir
	if *lexiconDir != "" {
		requestedDir = *lexiconDir
	}
	resolvedDir, err := pathResolver.GetLexiconDir(requestedDir)
	if err != nil {
		log.Fatalf("Failed to resolve lexicon dir: (%v)", err)
	}

	lex, err := lexicon.Load(resolvedDir, lexicon.WithMinRootLength(appConfig.Morph.MinRootLength))
	if err != nil {
		log.Fatalf("Failed to load lexicon: %v", err)
	}
	log.Debug("Lexicon loaded", "words", lex.Words().Len(), "dir", resolvedDir)

	svc := engine.NewLocal(lex, engineOptions(appConfig))

	// CLI is mainly used for testing and dbg purposes.
	if *cliMode {
		sigHandler()
		log.SetReportTimestamp(false)
		log.Debug("Input info:", "limit", *limit, "noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(svc, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *httpMode {
		addr := appConfig.HTTP.Addr
		if *httpAddr != "" {
			addr = *httpAddr
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		showStartupInfo(resolvedDir, "http "+addr)
		if err := httpapi.ListenAndServe(ctx, addr, httpapi.New(svc, appConfig)); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
		return
	}

	sigHandler()
	log.Debug("spawning IPC")
	srv := server.NewServer(svc, appConfig)
	showStartupInfo(resolvedDir, "ipc stdin/stdout")
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig reads the -config file when given, otherwise the file the path
// resolver settles on.
func loadConfig(pr *utils.PathResolver, custom string) (*config.Config, string) {
	if custom != "" {
		cfg, path, err := config.LoadConfigWithPriority(custom)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		return cfg, path
	}
	path, err := pr.GetConfigPath("config.toml")
	if err != nil {
		log.Fatalf("Failed to determine config path: (%v)", err)
	}
	cfg, err := config.InitConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg, path
}

func engineOptions(cfg *config.Config) engine.Options {
	return engine.Options{
		MaxDistance:      cfg.Spell.MaxDistance,
		SuggestLimit:     cfg.Spell.DefaultLimit,
		MinInput:         cfg.Complete.MinInput,
		MinPrefix:        cfg.Complete.MinPrefix,
		MinWordLength:    cfg.Quality.MinWordLength,
		AlternativeLimit: cfg.Quality.AlternativeLimit,
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ " + AppName + " ] Malagasy spelling, roots, predictions and more")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(lexiconDir, mode string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	if lexiconDir == "" {
		lexiconDir = "embedded"
	}
	println("===========")
	println(" teny ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("lexicon: ( %s )", lexiconDir)
	log.Infof("mode: %s", mode)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
