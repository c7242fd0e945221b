// Command formkit validates and formats Brazilian form values from the
// command line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/formkit/pkg/config"
	"github.com/Abraxas-365/formkit/pkg/errx"
	"github.com/mitchellh/cli"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	os.Exit(Main(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	name := filepath.Base(args[0])

	if len(args) == 2 && (args[1] == "-version" || args[1] == "-v") {
		args = []string{args[0], "version"}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return errx.ExitCode(err)
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(stdin),
		Writer:      stdout,
		ErrorWriter: stderr,
	}

	container, err := NewContainer(cfg, ui, stdin, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return errx.ExitCode(err)
	}

	c := &cli.CLI{
		Name:        name,
		Args:        args[1:],
		Version:     Version,
		Commands:    container.Commands(),
		HelpWriter:  stdout,
		ErrorWriter: stderr,
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return errx.ExitInternal
	}
	return exitCode
}
