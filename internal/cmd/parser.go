package cmd

import (
	"io"
	"os"

	xxhash "github.com/Giulio2002/faster_xxhash"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Version is reported by --version.
const Version = "0.8.3"

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	r := &runner{stdin: stdin}

	app := cli.NewApp()
	app.Name = "xxhsum"
	app.Usage = "Print or check xxHash checksums"
	app.Version = Version
	app.Writer = stdout

	tagFlag := cli.BoolFlag{
		Name:  "tag",
		Usage: "Print BSD style lines: ALGO (file) = digest",
	}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "algo,H",
			Usage:  "Hash variant: 0/xxh32, 1/xxh64, 2/xxh128, 3/xxh3",
			Value:  xxhash.XXH64.String(),
			EnvVar: "XXHSUM_ALGO",
		},
		cli.StringFlag{
			Name:   "seed",
			Usage:  "Integer seed (decimal or 0x hex)",
			EnvVar: "XXHSUM_SEED",
		},
		cli.StringFlag{
			Name:  "key-hex",
			Usage: "Key bytes in hex: 4 or 8 bytes are a seed, 136 or more a secret",
		},
		cli.StringFlag{
			Name:  "key-file",
			Usage: "Read raw key bytes from this file",
		},
		cli.StringFlag{
			Name:   "log-path,l",
			Usage:  "Where to output the log. May be 'stderr' (default), 'stdout' or a file",
			Value:  "stderr",
			EnvVar: "XXHSUM_LOG",
		},
		cli.BoolFlag{
			Name:   "verbose",
			Usage:  "Log every hashed file",
			EnvVar: "XXHSUM_VERBOSE",
		},
		cli.StringFlag{
			Name:  "color",
			Usage: "Color check results: auto, always or never",
			Value: "auto",
		},
		tagFlag,
	}

	app.Commands = []cli.Command{
		{
			Name:        "sum",
			Usage:       "Print checksums of files",
			ArgsUsage:   "[file...]",
			Description: "Hashes every file (or stdin for none or '-') and prints one line per file.",
			Action:      r.handleSum,
			Flags:       []cli.Flag{tagFlag},
		},
		{
			Name:        "check",
			Aliases:     []string{"c"},
			Usage:       "Verify checksums listed in files",
			ArgsUsage:   "[sumfile...]",
			Description: "Reads GNU or BSD style checksum lines and re-hashes the named files.",
			Action:      r.handleCheck,
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "quiet,q",
					Usage: "Don't print OK for each verified file",
				},
				cli.BoolFlag{
					Name:  "strict",
					Usage: "Fail on improperly formatted lines",
				},
			},
		},
	}

	app.Action = r.handleSum
	app.OnUsageError = func(ctx *cli.Context, err error, isSubcommand bool) error {
		return badArgs("%v", err)
	}

	app.Before = func(ctx *cli.Context) error {
		logger, err := setLogPath(ctx.GlobalString("log-path"))
		if err != nil {
			return badArgs("--log-path: %v", err)
		}

		r.logger = logger
		if ctx.GlobalBool("verbose") {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}

		return nil
	}

	app.After = func(ctx *cli.Context) error {
		if r.logger != nil {
			log.SetOutput(os.Stderr)
			return r.logger.Close()
		}

		return nil
	}

	return app
}

func exitCodeOf(err error) int {
	if err == nil {
		return Success
	}

	var code ExitCode
	if errors.As(err, &code) {
		log.Error(code.Message)
		return code.Code
	}

	log.Errorf("%v", err)
	return UnknownError
}

// RunCmdline runs xxhsum with the given arguments and returns the exit code.
func RunCmdline(args []string) int {
	return exitCodeOf(newApp(os.Stdin, os.Stdout).Run(args))
}
