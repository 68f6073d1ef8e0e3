package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cfoust/geom/pkg/config"
	"github.com/cfoust/geom/pkg/version"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Version bool `help:"Print version information and exit." short:"v"`
	Debug   bool `help:"Whether to enable debug logging."`

	Demo struct {
		Repr    bool     `help:"Print vectors as Vector(x, y) instead of (x, y)."`
		Configs []string `arg:"" optional:"" name:"configs" help:"Scenario files to run." type:"existingfile"`
	} `cmd:"" default:"withargs" help:"Run a demo scenario. The built-in scenario is used when none is given."`

	Config struct {
		Resolved bool     `help:"Write the scenario produced by merging the given files instead of the default."`
		Configs  []string `arg:"" optional:"" name:"configs" help:"Scenario files to merge." type:"existingfile"`
	} `cmd:"" help:"Write the default scenario to standard output."`

	Eval struct {
		Repr bool   `help:"Print vectors as Vector(x, y) instead of (x, y)."`
		Op   string `arg:"" name:"op" help:"Operator to apply." enum:"add,sub,mul,rmul,div,dot,cross,neg,abs"`
		LHS  string `arg:"" name:"lhs" help:"Left operand: a vector like 1,2 or 1,2,3, or a number."`
		RHS  string `arg:"" optional:"" name:"rhs" help:"Right operand. Use -- before negative values."`
	} `cmd:"" help:"Evaluate a single operation."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if len(os.Args) == 1 {
		err := demoCommand(os.Stdout, []string{}, false)
		if err != nil {
			writeError(err)
		}
		return
	}

	ctx := kong.Parse(&CLI,
		kong.Name("vector"),
		kong.Description("arithmetic on 2D and 3D vectors"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Version {
		fmt.Printf(
			"vector %s (commit %s)\n",
			version.Version,
			version.GitCommit,
		)
		fmt.Printf(
			"built %s\n",
			version.BuildTime,
		)
		os.Exit(0)
	}

	var err error
	switch strings.Fields(ctx.Command())[0] {
	case "demo":
		err = demoCommand(os.Stdout, CLI.Demo.Configs, CLI.Demo.Repr)
	case "config":
		if !CLI.Config.Resolved {
			_, err = os.Stdout.Write(config.DEFAULT)
			break
		}
		err = configCommand(os.Stdout, CLI.Config.Configs)
	case "eval":
		err = evalCommand(os.Stdout, CLI.Eval.Op, CLI.Eval.LHS, CLI.Eval.RHS, CLI.Eval.Repr)
	}

	if err != nil {
		writeError(err)
	}
}
