package domain

// Block is a renderable unit of the report layout. The assembler emits an
// ordered sequence of blocks; renderers decide how they look on a page.
type Block interface {
	block()
}

// Title is the document title shown at the top of the first page.
type Title struct {
	Text string
}

// TextStyle selects the paragraph rendering style.
type TextStyle int

const (
	StyleBody TextStyle = iota
	StyleHeading
)

// Paragraph is a run of plain text, either a section heading or body copy.
type Paragraph struct {
	Text  string
	Style TextStyle
}

// KeyValueTable is a two-column label/value table with no header row.
type KeyValueTable struct {
	Rows   [][2]string
	Widths []float64 // column widths in points
}

// DataTable is a regular table with a fixed header row.
type DataTable struct {
	Header []string
	Rows   [][]string
	Widths []float64 // column widths in points, one per header column
}

// Spacer is a vertical gap between sections.
type Spacer struct {
	Height float64 // points
}

func (Title) block()         {}
func (Paragraph) block()     {}
func (KeyValueTable) block() {}
func (DataTable) block()     {}
func (Spacer) block()        {}
