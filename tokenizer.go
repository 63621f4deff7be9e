package diffdoc

// Tokenizer splits row text into styled tokens for syntax highlighting.
type Tokenizer interface {
	// Tokenize highlights one line of source from the file at path.
	// Returns nil when no lexer matches (the line renders unstyled).
	Tokenize(path, source string) []Token
}
