package diffdoc

// Config is the validated report configuration. It is created once at
// startup by the config package and never mutated afterwards.
type Config struct {
	Language              string
	Verbose               bool
	DiffFont              string
	DiffFontSize          int
	OpenAfterCreation     bool
	HeadingLevel          int
	AddColor              string // 6-hex-digit fill colors
	RemoveColor           string
	NeutralColor          string
	AddSymbol             string
	RemoveSymbol          string
	NeutralSymbol         string
	FileEncoding          string
	IncludeFirstCommit    bool
	IgnoreFile            string
	IncludeUnchangedLines bool
	IncludeImages         bool
	InsertPageBreaks      bool
}

// ColorFor returns the configured hex color for a role.
func (c Config) ColorFor(role ColorRole) string {
	switch role {
	case RoleAdded:
		return c.AddColor
	case RoleRemoved:
		return c.RemoveColor
	default:
		return c.NeutralColor
	}
}

// SymbolFor returns the configured marker symbol for a role.
func (c Config) SymbolFor(role ColorRole) string {
	switch role {
	case RoleAdded:
		return c.AddSymbol
	case RoleRemoved:
		return c.RemoveSymbol
	default:
		return c.NeutralSymbol
	}
}
