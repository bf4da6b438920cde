// rerec compiles a Rere source file to C and builds it with the native C
// compiler.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"

	"github.com/rerelang/rerec/internal/config"
	"github.com/rerelang/rerec/internal/driver"
	"github.com/rerelang/rerec/internal/logger"
	"github.com/rerelang/rerec/internal/toolchain"
)

var (
	outputFlag = cli.StringFlag{
		Name:  "output, o",
		Usage: "Path of the produced executable",
		Value: config.DefaultOutput,
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose, v",
		Usage: "Print the tokens, the AST and the build command",
	}
	emitCFlag = cli.BoolFlag{
		Name:  "emit-c, S",
		Usage: "Stop after writing the C file",
	}
	releaseFlag = cli.BoolFlag{
		Name:  "release",
		Usage: "Build with optimizations and without debug info",
	}
	ccFlag = cli.StringFlag{
		Name:  "cc",
		Usage: "C compiler used for the native build",
		Value: config.DefaultCC,
	}
	runtimeFlag = cli.StringFlag{
		Name:  "runtime",
		Usage: "Prebuilt runtime object linked into the executable",
		Value: config.DefaultRuntime,
	}
	strictStringsFlag = cli.BoolFlag{
		Name:  "strict-strings",
		Usage: "Reject unterminated string literals",
	}
	strictImportsFlag = cli.BoolFlag{
		Name:  "strict-imports",
		Usage: "Reject imports of modules the runtime does not provide",
	}
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error",
		Value: config.DefaultLogLevel,
	}
	logFormatFlag = cli.StringFlag{
		Name:  "log-format",
		Usage: "Log format: text or json",
		Value: config.DefaultLogFormat,
	}
	logFileFlag = cli.StringFlag{
		Name:  "log-file",
		Usage: "Write the log to this file instead of stderr",
	}

	buildFlags = []cli.Flag{
		configFileFlag,
		outputFlag,
		verboseFlag,
		emitCFlag,
		releaseFlag,
		ccFlag,
		runtimeFlag,
		strictStringsFlag,
		strictImportsFlag,
		logLevelFlag,
		logFormatFlag,
		logFileFlag,
	}
)

func init() {
	// -v belongs to --verbose
	cli.VersionFlag = cli.BoolFlag{Name: "version", Usage: "print the version"}
}

// newBuilder is replaced in tests.
var newBuilder = func(build config.BuildConfig) toolchain.NativeBuilder {
	return toolchain.NewCC(build)
}

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "rerec"
	app.Usage = "the Rere to C compiler"
	app.ArgsUsage = "<input.rere>"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.Flags = buildFlags
	app.Action = build
	app.Commands = []cli.Command{dumpConfigCommand}
	return app
}

func build(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one input file, got %d", ctx.NArg())
	}

	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	verbose := ctx.GlobalBool("verbose")
	logCfg, err := makeLogConfig(cfg.Log, verbose)
	if err != nil {
		return err
	}
	if err := logger.Init(logCfg); err != nil {
		return err
	}
	defer logger.Close()

	compiler := driver.New(cfg, newBuilder(cfg.Build))
	compiler.Stdout = ctx.App.Writer
	compiler.Verbose = verbose

	_, err = compiler.Build(ctx.Args().First())
	return err
}

// flagsFirst moves positional arguments behind the flags, so that
// "rerec in.rere -o out" parses like "rerec -o out in.rere". Sub-command
// invocations are returned unchanged.
func flagsFirst(app *cli.App, args []string) []string {
	if len(args) < 2 {
		return args
	}
	if first := args[1]; first == "help" || first == "h" || app.Command(first) != nil {
		return args
	}

	takesValue := make(map[string]bool)
	for _, f := range app.Flags {
		if sf, ok := f.(cli.StringFlag); ok {
			for _, name := range strings.Split(sf.Name, ",") {
				takesValue[strings.TrimSpace(name)] = true
			}
		}
	}

	reordered := []string{args[0]}
	var positional []string
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i:]...)
			i = len(args)
		case len(arg) > 1 && arg[0] == '-':
			reordered = append(reordered, arg)
			name := strings.TrimLeft(arg, "-")
			if takesValue[name] && i+1 < len(args) {
				i++
				reordered = append(reordered, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}
	return append(reordered, positional...)
}

func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout)
	if err := app.Run(flagsFirst(app, args)); err != nil {
		errorPrefix := color.New(color.FgRed, color.Bold)
		fmt.Fprintf(stderr, "%s %v\n", errorPrefix.Sprint("error:"), err)
		return 1
	}
	return 0
}

func main() {
	color.NoColor = !isatty.IsTerminal(os.Stderr.Fd())
	os.Exit(run(os.Args, os.Stdout, colorable.NewColorableStderr()))
}
