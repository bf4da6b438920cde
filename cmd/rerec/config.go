package main

import (
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/rerelang/rerec/internal/config"
	"github.com/rerelang/rerec/internal/logger"
)

var dumpConfigCommand = cli.Command{
	Action:      dumpConfig,
	Name:        "dumpconfig",
	Usage:       "Show configuration values",
	ArgsUsage:   "[file]",
	Flags:       buildFlags,
	Description: `The dumpconfig command shows the effective configuration as TOML.`,
}

// makeConfig loads the defaults, the config file and then the flags that were
// set explicitly on the command line.
func makeConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(stringFlag(ctx, configFileFlag.Name))
	if err != nil {
		return cfg, err
	}

	if isSet(ctx, "output") {
		cfg.Build.Output = stringFlag(ctx, "output")
	}
	if isSet(ctx, ccFlag.Name) {
		cfg.Build.CC = stringFlag(ctx, ccFlag.Name)
	}
	if isSet(ctx, runtimeFlag.Name) {
		cfg.Build.Runtime = stringFlag(ctx, runtimeFlag.Name)
	}
	if boolFlag(ctx, releaseFlag.Name) {
		cfg.Build.Type = config.RELEASE
	}
	if boolFlag(ctx, "emit-c") {
		cfg.Build.EmitCOnly = true
	}
	if boolFlag(ctx, strictStringsFlag.Name) {
		cfg.Lexer.StrictStrings = true
	}
	if boolFlag(ctx, strictImportsFlag.Name) {
		cfg.Codegen.StrictImports = true
	}
	if isSet(ctx, logLevelFlag.Name) {
		cfg.Log.Level = stringFlag(ctx, logLevelFlag.Name)
	}
	if isSet(ctx, logFormatFlag.Name) {
		cfg.Log.Format = stringFlag(ctx, logFormatFlag.Name)
	}
	if isSet(ctx, logFileFlag.Name) {
		cfg.Log.File = stringFlag(ctx, logFileFlag.Name)
	}
	return cfg, nil
}

// makeLogConfig turns the [Log] section into logger settings. Verbose mode
// always logs at debug level.
func makeLogConfig(log config.LogConfig, verbose bool) (logger.Config, error) {
	logCfg := logger.DefaultConfig()
	level, err := logger.ParseLevel(log.Level)
	if err != nil {
		return logCfg, err
	}
	logCfg.Level = level
	if verbose {
		logCfg.Level = logger.LevelDebug
	}
	logCfg.Format = log.Format
	logCfg.LogFile = log.File
	return logCfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	out, err := config.Marshal(&cfg)
	if err != nil {
		return err
	}

	if ctx.NArg() > 0 {
		return os.WriteFile(ctx.Args().Get(0), out, 0644)
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}

// Flags may be given before or after the dumpconfig command, so both the
// command and the global context are consulted.

func isSet(ctx *cli.Context, name string) bool {
	return ctx.IsSet(name) || ctx.GlobalIsSet(name)
}

func stringFlag(ctx *cli.Context, name string) string {
	if ctx.IsSet(name) {
		return ctx.String(name)
	}
	return ctx.GlobalString(name)
}

func boolFlag(ctx *cli.Context, name string) bool {
	return ctx.Bool(name) || ctx.GlobalBool(name)
}
