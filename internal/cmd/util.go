package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// ExitCode is an error that maps the error interface to a specific error
// message and a unix exit code
type ExitCode struct {
	Code    int
	Message string
}

func (err ExitCode) Error() string {
	return err.Message
}

func badArgs(format string, args ...interface{}) ExitCode {
	return ExitCode{Code: BadArgs, Message: fmt.Sprintf(format, args...)}
}

func setLogPath(path string) (io.Closer, error) {
	switch path {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "stderr", "":
		log.SetOutput(os.Stderr)
	default:
		fd, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}

		log.SetOutput(fd)
		return fd, nil
	}

	return nil, nil
}

// palette renders check results, colored only when asked or on a terminal.
type palette struct {
	ok, failed *color.Color
}

func newPalette(mode string, out io.Writer) (*palette, error) {
	p := &palette{
		ok:     color.New(color.FgGreen),
		failed: color.New(color.FgRed, color.Bold),
	}

	enable := false
	switch mode {
	case "always":
		enable = true
	case "never":
	case "auto", "":
		if f, ok := out.(*os.File); ok {
			enable = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	default:
		return nil, badArgs("--color must be auto, always or never, not %q", mode)
	}

	for _, c := range []*color.Color{p.ok, p.failed} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p, nil
}
