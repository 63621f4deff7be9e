package diffdoc

// ColorRole is the semantic of a row (added/removed/neutral) mapped to a
// configured display color, independent of the literal hex value.
type ColorRole int

// Color roles.
const (
	RoleNeutral ColorRole = iota
	RoleAdded
	RoleRemoved
)

// Command is one atomic instruction to the document-writing layer.
// The set of implementations is closed; sinks switch exhaustively over it.
type Command interface {
	isCommand()
}

// Heading emits a section heading at the given level (1 is largest).
type Heading struct {
	Text  string
	Level int
}

// LegendEntry is one row of the legend table.
type LegendEntry struct {
	Label  string
	Color  string // 6-hex-digit fill color
	Symbol string
}

// Legend emits the color legend table.
type Legend struct {
	Entries []LegendEntry
}

// TableRow emits one color-coded diff row. Text already carries the
// configured marker symbol prefix. File names the file the row belongs
// to, for sinks that syntax-highlight row text.
type TableRow struct {
	Text    string
	Role    ColorRole
	Symbol  string
	File    string
	OldLine int // 0 when the line has no old-file number
	NewLine int // 0 when the line has no new-file number
}

// PageBreak starts a new page in paginated sinks.
type PageBreak struct{}

// Image embeds an image asset instead of diff rows.
type Image struct {
	Path string
}

// Notice emits a plain paragraph, used for the generated-on line and the
// no-changes marker.
type Notice struct {
	Text string
}

func (Heading) isCommand()   {}
func (Legend) isCommand()    {}
func (TableRow) isCommand()  {}
func (PageBreak) isCommand() {}
func (Image) isCommand()     {}
func (Notice) isCommand()    {}

// Report is the complete composed document: a title plus the ordered
// command sequence consumed by a Sink.
type Report struct {
	Title    string
	Commands []Command
}
