package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	xxhash "github.com/Giulio2002/faster_xxhash"
	"github.com/pkg/errors"
)

var errMalformedLine = errors.New("improperly formatted checksum line")

// checkLine is one parsed line of a checksum file.
type checkLine struct {
	lineno  int
	variant xxhash.Variant
	digest  []byte
	name    string
}

// formatLine renders a digest the way parseLine reads it back.
func formatLine(v xxhash.Variant, digest []byte, name string, tag bool) string {
	if tag {
		return fmt.Sprintf("%s (%s) = %x", v, name, digest)
	}
	return fmt.Sprintf("%x  %s", digest, name)
}

// parseLine accepts both the GNU layout "<hex>  <name>" (optionally with a
// binary marker, "<hex> *<name>") and the BSD layout "<ALGO> (<name>) = <hex>".
// GNU lines carry no algorithm, so a 16 digit digest is taken as `preferred`
// when that has the right width, XXH64 otherwise.
func parseLine(line string, preferred xxhash.Variant) (checkLine, error) {
	// A GNU name may itself contain " (" and ") = ", so the BSD layout only
	// applies when the prefix names a variant.
	if open := strings.Index(line, " ("); open > 0 {
		if sep := strings.LastIndex(line, ") = "); sep > open {
			if v, err := xxhash.ParseVariant(line[:open]); err == nil {
				digest, err := decodeDigest(line[sep+4:], v.Size())
				if err != nil {
					return checkLine{}, err
				}

				return checkLine{variant: v, digest: digest, name: line[open+2 : sep]}, nil
			}
		}
	}

	idx := strings.Index(line, " ")
	if idx <= 0 || idx+2 > len(line) {
		return checkLine{}, errMalformedLine
	}

	if marker := line[idx+1]; marker != ' ' && marker != '*' {
		return checkLine{}, errMalformedLine
	}

	hexDigest, name := line[:idx], line[idx+2:]
	if name == "" {
		return checkLine{}, errMalformedLine
	}

	v, ok := variantForWidth(len(hexDigest)/2, preferred)
	if !ok || len(hexDigest)%2 != 0 {
		return checkLine{}, errors.Wrapf(errMalformedLine, "no variant has a %d digit digest", len(hexDigest))
	}

	digest, err := decodeDigest(hexDigest, v.Size())
	if err != nil {
		return checkLine{}, err
	}

	return checkLine{variant: v, digest: digest, name: name}, nil
}

func variantForWidth(size int, preferred xxhash.Variant) (xxhash.Variant, bool) {
	if preferred.Size() == size {
		return preferred, true
	}

	switch size {
	case 4:
		return xxhash.XXH32, true
	case 8:
		return xxhash.XXH64, true
	case 16:
		return xxhash.XXH128, true
	}

	return 0, false
}

func decodeDigest(s string, size int) ([]byte, error) {
	digest, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrapf(errMalformedLine, "bad digest: %v", err)
	}

	if len(digest) != size {
		return nil, errors.Wrapf(errMalformedLine, "digest has %d bytes, want %d", len(digest), size)
	}

	return digest, nil
}

// readCheckFile parses every non-empty line of r. Malformed lines are
// reported through onBad and skipped.
func readCheckFile(r io.Reader, preferred xxhash.Variant, onBad func(lineno int, err error)) ([]checkLine, error) {
	var lines []checkLine

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		line, err := parseLine(text, preferred)
		if err != nil {
			onBad(lineno, err)
			continue
		}

		line.lineno = lineno
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read checksum file")
	}

	return lines, nil
}
