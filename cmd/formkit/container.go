// Composition root. Builds the logger and validators from configuration and
// hands them to every command.
package main

import (
	"io"

	"github.com/Abraxas-365/formkit/pkg/config"
	"github.com/Abraxas-365/formkit/pkg/fsx"
	"github.com/Abraxas-365/formkit/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/formkit/pkg/logx"
	"github.com/Abraxas-365/formkit/pkg/metricsx"
	"github.com/Abraxas-365/formkit/pkg/validatex"
	"github.com/mitchellh/cli"
)

// Container holds what commands share.
type Container struct {
	Config  *config.Config
	Log     *logx.Logger
	UI      cli.Ui
	Checker validatex.Checker
	// Check runs one validation for the batch command. Defaults to
	// Checker.Check.
	Check   func(validatex.Kind, string) error
	FS      fsx.FileSystem
	Metrics *metricsx.Metrics

	// Stdin feeds the batch command when no file is given.
	Stdin io.Reader
}

// NewContainer wires configuration into the shared logger and checker.
// Logs go to logOut so they never mix with command output.
func NewContainer(cfg *config.Config, ui cli.Ui, stdin io.Reader, logOut io.Writer) (*Container, error) {
	logger := newLogger(cfg.Log, logOut)
	logx.SetDefaultLogger(logger)

	// Unrooted; command arguments are plain paths.
	fs, err := fsxlocal.New("")
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Log:    logger,
		UI:     ui,
		Checker: validatex.Checker{
			PasswordMinLength: cfg.Validation.PasswordMinLength,
			URLSchemes:        cfg.Validation.URLSchemes,
		},
		FS:      fs,
		Metrics: metricsx.New(),
		Stdin:   stdin,
	}
	c.Check = c.Checker.Check

	logger.WithFields(logx.Fields{
		"workers": cfg.Async.Workers,
		"timeout": cfg.Async.Timeout.String(),
	}).Debug("container initialized")
	return c, nil
}

// newLogger starts from the LOG_* environment so LOG_COLOR and LOG_CALLER
// still apply, then takes level and format from the loaded config.
func newLogger(cfg config.LogConfig, out io.Writer) *logx.Logger {
	lc := logx.LoadFromEnv()
	lc.Level = logx.ParseLevel(cfg.Level)
	lc.Format = logx.ParseFormat(cfg.Format)
	lc.Output = out
	return logx.NewLogger(lc)
}

// Commands returns the command table for cli.CLI.
func (c *Container) Commands() map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"validate": func() (cli.Command, error) {
			return &ValidateCommand{Container: c}, nil
		},
		"format": func() (cli.Command, error) {
			return &FormatCommand{Container: c}, nil
		},
		"batch": func() (cli.Command, error) {
			return &BatchCommand{Container: c}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Container: c}, nil
		},
	}
}
