// Package parsing turns a hand-edited achievement document into raw achievement entries.
//
// The grammar is line oriented:
//   - "## Name" (optionally decorated with emoji) starts a category
//   - "### Title" starts an achievement inside the current category
//   - the first **bold** span inside the achievement is its content
//
// Other heading levels are ordinary lines. Anything else is ignored.
// Parsing never fails on malformed input, and lines have no length limit.
package parsing

import (
	"io"
	"regexp"
	"strings"
	"unicode"
)

// DefaultStopSections are category prefixes that end the achievement portion of a document
var DefaultStopSections = []string{"NOTES ON", "ACHIEVEMENT THEMES"}

// boldPattern matches the first non-greedy **bold** span on a line
var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// RawEntry is one achievement as it appears in the document, before inference
type RawEntry struct {
	Category    string
	Subcategory *string
	Title       string
	Content     string
	Line        int // 1-based line of the ### heading
}

// SkippedEntry records an achievement heading that did not produce an entry
type SkippedEntry struct {
	Category string `json:"category,omitempty"`
	Title    string `json:"title"`
	Line     int    `json:"line"`
	Reason   string `json:"reason"`
}

// Skip reasons
const (
	ReasonNoContent  = "no bold content line"
	ReasonNoCategory = "achievement outside any category"
	ReasonNoTitle    = "empty achievement title"
)

// Report describes what the parser saw besides the entries it produced
type Report struct {
	Headings  int            `json:"headings"` // ### headings encountered
	Skipped   []SkippedEntry `json:"skipped"`
	StoppedAt string         `json:"stopped_at,omitempty"`
}

// Document is the result of parsing one achievement document
type Document struct {
	Meta    DocumentMeta
	Entries []RawEntry
	Report  Report
}

// Options configures the parser
type Options struct {
	// StopSections lists category prefixes (case-insensitive) after which parsing stops.
	StopSections []string
}

// DefaultOptions returns the options used by the stock import
func DefaultOptions() Options {
	stops := make([]string, len(DefaultStopSections))
	copy(stops, DefaultStopSections)
	return Options{StopSections: stops}
}

// Parser extracts raw achievement entries from markdown
type Parser struct {
	stops []string
}

// NewParser creates a parser with the given options
func NewParser(opts Options) *Parser {
	stops := make([]string, 0, len(opts.StopSections))
	for _, s := range opts.StopSections {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			stops = append(stops, s)
		}
	}
	return &Parser{stops: stops}
}

// ParseReader reads the whole document from r and parses it
func (p *Parser) ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Message: "failed to read document", Cause: err}
	}
	return p.Parse(string(data)), nil
}

// Parse parses document text. It always returns a non-nil document.
func (p *Parser) Parse(text string) *Document {
	text = strings.TrimPrefix(text, "\ufeff")
	meta, body, offset := splitFrontMatter(text)

	doc := &Document{
		Meta:    meta,
		Entries: make([]RawEntry, 0),
		Report:  Report{Skipped: make([]SkippedEntry, 0)},
	}

	s := &scanState{doc: doc}
	for i, line := range strings.Split(body, "\n") {
		if !p.consume(s, line, offset+i+1) {
			break
		}
	}
	s.closeEntry()

	return doc
}

// scanState tracks the current category and the achievement awaiting content
type scanState struct {
	doc      *Document
	category string
	pending  *RawEntry
}

func (s *scanState) closeEntry() {
	if s.pending == nil {
		return
	}
	s.doc.Report.Skipped = append(s.doc.Report.Skipped, SkippedEntry{
		Category: s.pending.Category,
		Title:    s.pending.Title,
		Line:     s.pending.Line,
		Reason:   ReasonNoContent,
	})
	s.pending = nil
}

// consume processes one line; it returns false when parsing should stop
func (p *Parser) consume(s *scanState, raw string, lineNo int) bool {
	line := strings.TrimSpace(raw)
	if line == "" || line == "---" || strings.HasPrefix(line, "*Note:") {
		return true
	}

	if level, text, ok := parseHeading(line); ok && (level == 2 || level == 3) {
		s.closeEntry()
		if level == 3 {
			s.startEntry(strings.TrimSpace(text), lineNo)
			return true
		}
		name := cleanCategory(text)
		if p.isStopSection(name) {
			s.doc.Report.StoppedAt = name
			return false
		}
		s.category = name
		return true
	}

	if s.pending != nil {
		if content, ok := boldContent(line); ok {
			s.pending.Content = content
			s.doc.Entries = append(s.doc.Entries, *s.pending)
			s.pending = nil
		}
	}
	return true
}

func (s *scanState) startEntry(title string, lineNo int) {
	s.doc.Report.Headings++
	switch {
	case s.category == "":
		s.doc.Report.Skipped = append(s.doc.Report.Skipped, SkippedEntry{Title: title, Line: lineNo, Reason: ReasonNoCategory})
	case title == "":
		s.doc.Report.Skipped = append(s.doc.Report.Skipped, SkippedEntry{Category: s.category, Line: lineNo, Reason: ReasonNoTitle})
	default:
		s.pending = &RawEntry{Category: s.category, Title: title, Line: lineNo}
	}
}

func (p *Parser) isStopSection(category string) bool {
	upper := strings.ToUpper(category)
	for _, stop := range p.stops {
		if strings.HasPrefix(upper, stop) {
			return true
		}
	}
	return false
}

// parseHeading recognizes an ATX heading, allowing decoration before the hashes.
// It returns the heading level and the text after "#... ".
func parseHeading(line string) (int, string, bool) {
	line = strings.TrimLeftFunc(line, isDecoration)
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := line[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	return level, rest, true
}

// cleanCategory strips emoji, other decoration and a wrapping **bold** around a category name
func cleanCategory(text string) string {
	text = strings.TrimFunc(text, isDecoration)
	if inner, ok := strings.CutPrefix(text, "**"); ok {
		if inner, ok = strings.CutSuffix(inner, "**"); ok {
			text = strings.TrimFunc(inner, isDecoration)
		}
	}
	return strings.TrimSpace(text)
}

// boldContent returns the first non-empty bold span on the line
func boldContent(line string) (string, bool) {
	for _, m := range boldPattern.FindAllStringSubmatch(line, -1) {
		if content := strings.TrimSpace(m[1]); content != "" {
			return content, true
		}
	}
	return "", false
}

// isDecoration reports runes that carry no textual meaning in a heading:
// whitespace, non-ASCII symbols (emoji), combining marks and format characters such as ZWJ.
// ASCII symbols stay so names like "C++" survive.
func isDecoration(r rune) bool {
	return unicode.IsSpace(r) ||
		(r > unicode.MaxASCII && unicode.IsSymbol(r)) ||
		unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf)
}
