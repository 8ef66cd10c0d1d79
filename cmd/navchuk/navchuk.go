package main

import (
	"os"
	"strings"

	"github.com/Alia5/NAVCHUK/internal/config"
	"github.com/Alia5/NAVCHUK/internal/configpaths"
	"github.com/Alia5/NAVCHUK/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("navchuk"),
		kong.Description("Nunchuk-to-HID viewport navigation for CAD software"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var frameLogger log.FrameLogger
	if cli.Log.FrameFile != "" {
		f, err := os.OpenFile(cli.Log.FrameFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open frame log file", "file", cli.Log.FrameFile, "error", err)
			frameLogger = log.NewFrame(nil)
		} else {
			frameLogger = log.NewFrame(f)
			closeFiles = append(closeFiles, f)
		}
	} else if cli.Log.Level == "trace" {
		frameLogger = log.NewFrame(os.Stdout)
	} else {
		frameLogger = log.NewFrame(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(frameLogger, (*log.FrameLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("NAVCHUK_CONFIG"); v != "" {
		return v
	}
	return ""
}
