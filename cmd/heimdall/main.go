package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/3-lines-studio/heimdall"
	"github.com/3-lines-studio/heimdall/internal/adapters/cli"
	"github.com/3-lines-studio/heimdall/internal/config"
)

func main() {
	output := cli.NewOutput()

	if len(os.Args) < 2 {
		printUsage(output)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		runBuild(output, os.Args[2:])
	case "serve":
		runServe(output, os.Args[2:])
	default:
		output.PrintError("Unknown command: %s", os.Args[1])
		fmt.Println()
		printUsage(output)
		os.Exit(1)
	}
}

func printUsage(output *cli.Output) {
	output.PrintHeader("Heimdall")
	output.PrintStep("Usage: heimdall <command> [flags] [patterns...]")
	fmt.Println()
	output.PrintStep("Commands:")
	output.PrintFile("build   bundle entry points once and exit")
	output.PrintFile("serve   run the dev proxy server")
}

func runBuild(output *cli.Output, args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file (default heimdall.yml if present)")
	outDir := fs.String("out", "", "output directory")
	preact := fs.Bool("preact", false, "alias react imports to preact")
	_ = fs.Parse(args)

	cfg, err := loadConfig(output, *configPath)
	if err != nil {
		os.Exit(1)
	}
	cfg = config.Merge(cfg, config.Config{
		Entries: fs.Args(),
		OutDir:  *outDir,
		Preact:  *preact,
	})

	output.PrintHeader("Heimdall Build")
	report := cli.NewBundleReport(output, cfg.OutDir)

	result, err := heimdall.Build(heimdall.BuildRequest{
		EntryPatterns:   cfg.Entries,
		OutputDirectory: cfg.OutDir,
		UIAliasMode:     cfg.Preact,
	})
	if err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}

	report.SetEntryCount(len(result.Entries))
	for _, out := range result.Outputs {
		report.AddOutput(out.Path, out.Bytes)
	}
	report.Render()
}

func runServe(output *cli.Output, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file (default heimdall.yml if present)")
	port := fs.Int("port", 0, "preferred public port")
	dir := fs.String("dir", "", "legacy entry directory mode")
	preact := fs.Bool("preact", false, "alias react imports to preact")
	verbose := fs.Bool("v", false, "debug logging")
	_ = fs.Parse(args)

	cfg, err := loadConfig(output, *configPath)
	if err != nil {
		os.Exit(1)
	}
	cfg = config.Merge(cfg, config.Config{
		Entries: fs.Args(),
		Dir:     *dir,
		Preact:  *preact,
		Port:    *port,
	})

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	srv, err := heimdall.Serve(heimdall.ServeConfig{
		PreferredPort: cfg.Port,
		EntryPatterns: cfg.Entries,
		EntryDir:      cfg.Dir,
		Extensions:    cfg.Extensions,
		UIAliasMode:   cfg.Preact,
		Logger:        logger,
	})
	if err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}

	session := srv.Session()
	output.PrintHeader("Heimdall Dev Server")
	output.PrintSuccess("Listening on http://localhost:%d", session.PublicPort)
	output.PrintStep("Append ?dev to any plugin URL for the hot-reload bootstrap")

	// Serving is terminal; lifecycle ends with the process.
	select {}
}

func loadConfig(output *cli.Output, path string) (config.Config, error) {
	fileCfg, err := config.Load(path)
	if err != nil {
		output.PrintError("%v", err)
		return config.Config{}, err
	}
	return config.Merge(config.Default(), fileCfg), nil
}
