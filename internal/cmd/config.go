package cmd

import (
	"encoding/hex"
	"os"
	"strconv"
	"strings"

	xxhash "github.com/Giulio2002/faster_xxhash"
	"github.com/urfave/cli"
)

// config is the resolved set of global flags shared by all commands.
type config struct {
	variant xxhash.Variant
	key     any
	color   string
}

func loadConfig(ctx *cli.Context) (*config, error) {
	variant, err := xxhash.ParseVariant(ctx.GlobalString("algo"))
	if err != nil {
		return nil, badArgs("--algo: %v", err)
	}

	key, err := keyFromFlags(ctx)
	if err != nil {
		return nil, err
	}

	return &config{
		variant: variant,
		key:     key,
		color:   ctx.GlobalString("color"),
	}, nil
}

// keyFromFlags returns the raw key argument. Validation is left to
// xxhash.ResolveKey since the check command may switch variants per line.
func keyFromFlags(ctx *cli.Context) (any, error) {
	seed := ctx.GlobalString("seed")
	keyHex := ctx.GlobalString("key-hex")
	keyFile := ctx.GlobalString("key-file")

	given := 0
	for _, s := range []string{seed, keyHex, keyFile} {
		if s != "" {
			given++
		}
	}

	if given > 1 {
		return nil, badArgs("only one of --seed, --key-hex and --key-file may be given")
	}

	switch {
	case seed != "":
		n, err := strconv.ParseUint(seed, 0, 64)
		if err != nil {
			return nil, badArgs("--seed: %v", err)
		}
		return n, nil
	case keyHex != "":
		raw, err := hex.DecodeString(strings.TrimPrefix(keyHex, "0x"))
		if err != nil {
			return nil, badArgs("--key-hex: %v", err)
		}
		return raw, nil
	case keyFile != "":
		raw, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, badArgs("--key-file: %v", err)
		}
		return raw, nil
	}

	return nil, nil
}
