package cmd

const (
	// Success is the same as EXIT_SUCCESS in C
	Success = iota

	// Mismatch means at least one checksum did not match or a file could
	// not be read.
	Mismatch

	// BadArgs passed to cli; not our fault.
	BadArgs

	// UnknownError is an uncategorized error, probably our fault.
	UnknownError
)
