package cli

import (
	"io"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/dmitrijs2005/sn/internal/client/config"
)

// Command is embedded by every sn command.
type Command struct {
	UI cli.Ui

	// Stdin supplies card content when no FILE is given.
	Stdin io.Reader

	// LogOutput receives diagnostic logs, normally stderr.
	LogOutput io.Writer

	LookupEnv config.LookupEnv

	// FS backs FILE reads.
	FS afero.Fs
}
