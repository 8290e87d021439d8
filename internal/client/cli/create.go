package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"

	"github.com/dmitrijs2005/sn/internal/client/client"
	"github.com/dmitrijs2005/sn/internal/client/config"
	"github.com/dmitrijs2005/sn/internal/client/content"
	"github.com/dmitrijs2005/sn/internal/client/markdown"
	"github.com/dmitrijs2005/sn/internal/client/services"
	"github.com/dmitrijs2005/sn/internal/logging"
)

var green = color.New(color.FgGreen).SprintFunc()

type CreateCommand struct {
	*Command
}

func (c *CreateCommand) Synopsis() string {
	return "Create a card from a Markdown file or stdin"
}

func (c *CreateCommand) Help() string {
	var b strings.Builder
	b.WriteString(`Usage: sn [options] create [options] NAME [FILE]

  Logs in, renders FILE (or stdin when FILE is omitted) from Markdown to
  HTML and creates a new card called NAME. Options may be given before or
  after the subcommand, but not after NAME.

  If no password is configured, FILE is given and stdin is a terminal, the
  password is prompted for.

Options:

`)
	config.FlagHelp(&b)
	return b.String()
}

func (c *CreateCommand) Run(args []string) int {
	cfg, rest, err := config.LoadConfig(args, c.LookupEnv)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return cli.RunResultHelp
	}

	name, file, argErr := positional(rest)

	fd, stdinTerminal := terminalFd(c.Stdin)
	if argErr == nil && cfg.Password.IsEmpty() && file != "" && stdinTerminal {
		pw, err := GetPassword(fd, c.LogOutput)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		cfg.Password = pw
	}

	var result *multierror.Error
	if argErr != nil {
		result = multierror.Append(result, argErr)
	}
	if err := cfg.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		c.UI.Error(err.Error())
		return cli.RunResultHelp
	}

	log, err := logging.New(logging.Options{
		Name:    cliName,
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  c.LogOutput,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	api, err := client.NewHTTPClient(client.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  log,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	reader := &content.Reader{FS: c.FS, Stdin: c.Stdin}
	creds := services.Credentials{Username: cfg.Username, Password: cfg.Password}
	svc := services.NewCardService(api, reader, creds, markdown.Render, log)

	if file == "" && stdinTerminal {
		c.UI.Warn("Reading card content from stdin, finish with Ctrl-D")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resp, err := svc.Create(ctx, services.CreateCardRequest{Name: name, File: file})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	log.Debug(ctx, "create finished", "status", resp.StatusCode)
	c.UI.Output(fmt.Sprintf("%s %q", green("Created card"), name))
	return 0
}

// positional splits NAME [FILE].
func positional(args []string) (name, file string, err error) {
	switch len(args) {
	case 0:
		return "", "", errors.New("missing card NAME")
	case 1:
		name = args[0]
	case 2:
		name, file = args[0], args[1]
	default:
		return "", "", fmt.Errorf("expected NAME [FILE], got %d arguments", len(args))
	}

	if strings.TrimSpace(name) == "" {
		return "", "", errors.New("card NAME must not be empty")
	}
	return name, file, nil
}
