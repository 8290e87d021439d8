package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/dmitrijs2005/sn/internal/client/config"
	"github.com/dmitrijs2005/sn/internal/flagx"
)

const cliName = "sn"

// Streams are the process I/O handles the CLI works with.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	return Run(args, Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}, os.LookupEnv)
}

// Run is Main with explicit streams and environment.
func Run(args []string, streams Streams, lookupEnv config.LookupEnv) int {
	if len(args) == 0 {
		args = []string{cliName}
	}

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{args[0], "version"}
	}

	args = hoistFlags(args)

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(streams.Stdin),
		Writer:      streams.Stdout,
		ErrorWriter: streams.Stderr,
	}

	base := &Command{
		UI:        ui,
		Stdin:     streams.Stdin,
		LogOutput: streams.Stderr,
		LookupEnv: lookupEnv,
		FS:        afero.NewOsFs(),
	}

	c := &cli.CLI{
		Name:           cliName,
		Args:           args[1:],
		Commands:       commands(base),
		HiddenCommands: []string{"c"},
		HelpWriter:     streams.Stderr,
		ErrorWriter:    streams.Stderr,
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(streams.Stderr, "error: %v\n", err)
		return 1
	}

	// Unknown or missing subcommands are usage errors like any other.
	if exitCode == 127 {
		exitCode = 1
	}
	return exitCode
}

func commands(base *Command) map[string]cli.CommandFactory {
	create := func() (cli.Command, error) {
		return &CreateCommand{Command: base}, nil
	}

	return map[string]cli.CommandFactory{
		"create": create,
		"c":      create,
		"version": func() (cli.Command, error) {
			return &VersionCommand{Command: base}, nil
		},
	}
}

// hoistFlags moves options given before the subcommand to just after it, so
// "sn -u me create NAME" means "sn create -u me NAME".
func hoistFlags(args []string) []string {
	rest := args[1:]
	lead := flagx.LeadingFlags(rest, config.NewFlagSet(cliName, &config.Config{}))
	if len(lead) == 0 || len(lead) == len(rest) || rest[len(lead)] == "--" {
		return args
	}

	out := make([]string, 0, len(args))
	out = append(out, args[0], rest[len(lead)])
	out = append(out, lead...)
	return append(out, rest[len(lead)+1:]...)
}
