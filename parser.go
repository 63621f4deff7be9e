package diffdoc

// Parser turns one file's raw unified-diff text into classified line records.
type Parser interface {
	// Parse classifies the diff text for the file at path. A malformed
	// hunk is recoverable: the returned FileChange has Malformed set and
	// the error describes the failure for logging.
	Parse(raw string, path string) (*FileChange, error)
}
