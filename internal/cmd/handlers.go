package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	xxhash "github.com/Giulio2002/faster_xxhash"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// runner carries the streams the handlers read from. Output goes to
// ctx.App.Writer.
type runner struct {
	stdin  io.Reader
	logger io.Closer
}

func (r *runner) open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(r.stdin), nil
	}

	return os.Open(name)
}

// digestFile resets h and streams the contents of name through it.
func (r *runner) digestFile(h xxhash.Hasher, name string) ([]byte, error) {
	if err := h.Reset(); err != nil {
		return nil, err
	}

	fd, err := r.open(name)
	if err != nil {
		return nil, err
	}

	defer fd.Close()

	if _, err := io.Copy(h, fd); err != nil {
		return nil, errors.Wrapf(err, "failed to hash %s", name)
	}

	digest, err := h.Canonical()
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"file": name,
		"size": humanize.Bytes(h.Len()),
		"algo": h.Variant(),
	}).Debug("hashed")

	return digest, nil
}

func fileArgs(ctx *cli.Context) []string {
	if ctx.NArg() == 0 {
		return []string{"-"}
	}

	return []string(ctx.Args())
}

func (r *runner) handleSum(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	h, err := xxhash.Open(cfg.variant, cfg.key)
	if err != nil {
		return badArgs("%v", err)
	}

	defer h.Close()

	tag := ctx.Bool("tag") || ctx.GlobalBool("tag")
	unreadable := 0

	for _, name := range fileArgs(ctx) {
		digest, err := r.digestFile(h, name)
		if err != nil {
			log.Errorf("%s: %v", name, err)
			unreadable++
			continue
		}

		fmt.Fprintln(ctx.App.Writer, formatLine(cfg.variant, digest, name, tag))
	}

	if unreadable > 0 {
		return ExitCode{Mismatch, fmt.Sprintf("%d file(s) could not be read", unreadable)}
	}

	return nil
}

type checkStats struct {
	ok, failed, unreadable, malformed int
}

func (s checkStats) result(strict bool) error {
	if s.malformed > 0 {
		log.Warnf("%s line(s) are improperly formatted", humanize.Comma(int64(s.malformed)))
	}

	if s.unreadable > 0 {
		log.Warnf("%s listed file(s) could not be read", humanize.Comma(int64(s.unreadable)))
	}

	if s.failed > 0 {
		log.Warnf("%s computed checksum(s) did NOT match", humanize.Comma(int64(s.failed)))
	}

	switch {
	case s.failed > 0 || s.unreadable > 0:
		return ExitCode{Mismatch, "checksum verification failed"}
	case strict && s.malformed > 0:
		return ExitCode{Mismatch, "improperly formatted lines in strict mode"}
	case s.ok == 0:
		return ExitCode{Mismatch, "no properly formatted checksum lines found"}
	}

	return nil
}

// hasherFor keeps one engine per variant alive for the whole check run.
func hasherFor(cache map[xxhash.Variant]xxhash.Hasher, v xxhash.Variant, key any) (xxhash.Hasher, error) {
	if h, ok := cache[v]; ok {
		return h, nil
	}

	h, err := xxhash.Open(v, key)
	if err != nil {
		return nil, err
	}

	cache[v] = h
	return h, nil
}

func (r *runner) handleCheck(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	pal, err := newPalette(cfg.color, ctx.App.Writer)
	if err != nil {
		return err
	}

	hashers := make(map[xxhash.Variant]xxhash.Hasher)
	defer func() {
		for _, h := range hashers {
			h.Close()
		}
	}()

	out := ctx.App.Writer
	quiet := ctx.Bool("quiet")
	stats := checkStats{}

	for _, name := range fileArgs(ctx) {
		fd, err := r.open(name)
		if err != nil {
			log.Errorf("%s: %v", name, err)
			stats.unreadable++
			continue
		}

		lines, err := readCheckFile(fd, cfg.variant, func(lineno int, err error) {
			log.Warnf("%s:%d: %v", name, lineno, err)
			stats.malformed++
		})

		fd.Close()

		if err != nil {
			log.Errorf("%s: %v", name, err)
			stats.unreadable++
			continue
		}

		for _, line := range lines {
			h, err := hasherFor(hashers, line.variant, cfg.key)
			if err != nil {
				fmt.Fprintf(out, "%s: %s (%v)\n", line.name, pal.failed.Sprint("FAILED"), err)
				stats.failed++
				continue
			}

			digest, err := r.digestFile(h, line.name)
			switch {
			case err != nil:
				log.Debugf("%s: %v", line.name, err)
				fmt.Fprintf(out, "%s: %s open or read\n", line.name, pal.failed.Sprint("FAILED"))
				stats.unreadable++
			case !bytes.Equal(digest, line.digest):
				fmt.Fprintf(out, "%s: %s\n", line.name, pal.failed.Sprint("FAILED"))
				stats.failed++
			default:
				if !quiet {
					fmt.Fprintf(out, "%s: %s\n", line.name, pal.ok.Sprint("OK"))
				}
				stats.ok++
			}
		}
	}

	return stats.result(ctx.Bool("strict"))
}
