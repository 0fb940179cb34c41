package cmd

import (
	"strings"
	"testing"

	xxhash "github.com/Giulio2002/faster_xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line      string
		preferred xxhash.Variant
		variant   xxhash.Variant
		name      string
	}{
		{"02cc5d05  empty", xxhash.XXH64, xxhash.XXH32, "empty"},
		{"ef46db3751d8e999  some file", xxhash.XXH64, xxhash.XXH64, "some file"},
		{"ef46db3751d8e999 *bin", xxhash.XXH64, xxhash.XXH64, "bin"},
		{"2d06800538d394c2  x", xxhash.XXH3, xxhash.XXH3, "x"},
		{"2d06800538d394c2  x", xxhash.XXH32, xxhash.XXH64, "x"},
		{"99aa06d3014798d86001c324468d497f  y", xxhash.XXH64, xxhash.XXH128, "y"},
		{"XXH3 (a (b).txt) = 2d06800538d394c2", xxhash.XXH64, xxhash.XXH3, "a (b).txt"},
		{"XXH128 (z) = 99aa06d3014798d86001c324468d497f", xxhash.XXH64, xxhash.XXH128, "z"},
	}

	for _, tt := range tests {
		got, err := parseLine(tt.line, tt.preferred)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.variant, got.variant, tt.line)
		assert.Equal(t, tt.name, got.name, tt.line)
		assert.Len(t, got.digest, tt.variant.Size(), tt.line)
	}
}

func TestParseLineMalformed(t *testing.T) {
	for _, line := range []string{
		"nohash",
		"02cc5d05 x",
		"02cc5d05  ",
		"0bad  file",
		"zzzzzzzz  file",
		"MD5 (file) = d41d8cd98f00b204e9800998ecf8427e",
		"XXH32 (file) = ef46db3751d8e999",
	} {
		_, err := parseLine(line, xxhash.XXH64)
		require.ErrorIs(t, err, errMalformedLine, line)
	}
}

func TestFormatLineRoundTrip(t *testing.T) {
	digest := []byte{0x2d, 0x06, 0x80, 0x05, 0x38, 0xd3, 0x94, 0xc2}
	for _, name := range []string{"file", "a (b) = c", "XXH3 (x) = y", "two  spaces"} {
		for _, tag := range []bool{false, true} {
			line := formatLine(xxhash.XXH3, digest, name, tag)
			got, err := parseLine(line, xxhash.XXH3)
			require.NoError(t, err, line)
			assert.Equal(t, xxhash.XXH3, got.variant, line)
			assert.Equal(t, digest, got.digest, line)
			assert.Equal(t, name, got.name, line)
		}
	}
}

func TestReadCheckFile(t *testing.T) {
	input := "02cc5d05  a\r\n\nbroken\nXXH64 (b) = ef46db3751d8e999\n"

	var bad []int
	lines, err := readCheckFile(strings.NewReader(input), xxhash.XXH64, func(lineno int, err error) {
		bad = append(bad, lineno)
	})

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, []int{3}, bad)
	assert.Equal(t, "a", lines[0].name)
	assert.Equal(t, 1, lines[0].lineno)
	assert.Equal(t, 4, lines[1].lineno)
}
