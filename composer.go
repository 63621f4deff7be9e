package diffdoc

// Composer is the state machine that turns classified diff lines plus
// configuration into the ordered document command sequence.
type Composer struct {
	cfg Config
	loc Localizer
}

// NewComposer creates a composer for one report-generation pass.
func NewComposer(cfg Config, loc Localizer) *Composer {
	return &Composer{cfg: cfg, loc: loc}
}

// Legend returns the legend heading and the three-entry legend table
// mapping each marker symbol to its configured fill color.
func (c *Composer) Legend() []Command {
	return []Command{
		Heading{Text: c.loc.Format("legend", nil), Level: c.cfg.HeadingLevel},
		Legend{Entries: []LegendEntry{
			{Label: c.loc.Format("legend_add", nil), Color: c.cfg.AddColor, Symbol: c.cfg.AddSymbol},
			{Label: c.loc.Format("legend_remove", nil), Color: c.cfg.RemoveColor, Symbol: c.cfg.RemoveSymbol},
			{Label: c.loc.Format("legend_neutral", nil), Color: c.cfg.NeutralColor, Symbol: c.cfg.NeutralSymbol},
		}},
	}
}

// Compose emits one section per file in discovery order. With zero files it
// emits a single no-changes marker instead of a file loop; the caller is
// responsible for signalling ErrNoChanges as the run outcome.
func (c *Composer) Compose(files []*FileChange) []Command {
	if len(files) == 0 {
		return []Command{Notice{Text: c.loc.Format("no_significant_changes", nil)}}
	}
	var cmds []Command
	for i, f := range files {
		cmds = append(cmds, c.composeFile(f)...)
		if c.cfg.InsertPageBreaks && i < len(files)-1 {
			cmds = append(cmds, PageBreak{})
		}
	}
	return cmds
}

// composeFile walks Start -> Heading -> rows (or image) -> End for one file.
// A pure rename with no diff lines yields a heading-only section.
func (c *Composer) composeFile(f *FileChange) []Command {
	cmds := []Command{Heading{
		Text: c.loc.Format("file_heading", map[string]string{
			"file":   f.Path,
			"status": c.loc.Format(f.Status.Key(), nil),
		}),
		Level: c.cfg.HeadingLevel,
	}}

	if f.Malformed {
		sym := c.cfg.NeutralSymbol
		text := c.loc.Format("diff_parse_failed", map[string]string{"file": f.Path})
		return append(cmds, TableRow{Text: sym + text, Role: RoleNeutral, Symbol: sym, File: f.Path})
	}

	if c.cfg.IncludeImages && IsImagePath(f.Path) {
		return append(cmds, Image{Path: f.Path})
	}

	for _, ln := range f.Lines {
		role := roleFor(ln.Kind)
		sym := c.cfg.SymbolFor(role)
		cmds = append(cmds, TableRow{
			Text:    sym + ln.Content,
			Role:    role,
			Symbol:  sym,
			File:    f.Path,
			OldLine: ln.OldLine,
			NewLine: ln.NewLine,
		})
	}
	return cmds
}

func roleFor(kind LineKind) ColorRole {
	switch kind {
	case LineAdded:
		return RoleAdded
	case LineRemoved:
		return RoleRemoved
	default:
		return RoleNeutral
	}
}
