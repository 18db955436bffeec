package catalog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonathan/achievement-blocks/internal/inference"
	"github.com/jonathan/achievement-blocks/internal/parsing"
	"github.com/jonathan/achievement-blocks/internal/types"
)

// Catalog is an ordered, read-only collection of blocks from one import.
// It is never mutated after construction and is safe for concurrent readers.
type Catalog struct {
	blocks     []types.Block
	meta       parsing.DocumentMeta
	report     parsing.Report
	source     string
	importedAt time.Time
}

// New builds a catalog from already inferred blocks, e.g. rows read back from storage
func New(blocks []types.Block, meta parsing.DocumentMeta) *Catalog {
	owned := make([]types.Block, 0, len(blocks))
	for _, b := range blocks {
		owned = append(owned, b.Clone())
	}
	return &Catalog{
		blocks:     owned,
		meta:       meta,
		report:     parsing.Report{Skipped: make([]parsing.SkippedEntry, 0)},
		importedAt: time.Now().UTC(),
	}
}

// Empty returns a catalog with no blocks
func Empty() *Catalog {
	return New(nil, parsing.DocumentMeta{})
}

// Blocks returns a copy of the blocks in import order
func (c *Catalog) Blocks() []types.Block {
	return cloneAll(c.blocks)
}

// Len returns the number of blocks
func (c *Catalog) Len() int {
	return len(c.blocks)
}

// Meta returns the document front matter, if any
func (c *Catalog) Meta() parsing.DocumentMeta {
	return c.meta
}

// Report returns what the parser skipped while building this catalog
func (c *Catalog) Report() parsing.Report {
	return c.report
}

// Source returns the path the catalog was imported from, or "" for in-memory imports
func (c *Catalog) Source() string {
	return c.source
}

// ImportedAt returns when the catalog was built
func (c *Catalog) ImportedAt() time.Time {
	return c.importedAt
}

// Options configures how documents are turned into catalogs
type Options struct {
	Parser     parsing.Options
	Vocabulary *inference.Vocabulary // nil selects the embedded vocabulary
}

// DefaultOptions returns the stock import options
func DefaultOptions() Options {
	return Options{Parser: parsing.DefaultOptions()}
}

// Loader runs the parser and inferencer over documents
type Loader struct {
	parser     *parsing.Parser
	inferencer *inference.Inferencer
}

// NewLoader creates a loader
func NewLoader(opts Options) *Loader {
	return &Loader{
		parser:     parsing.NewParser(opts.Parser),
		inferencer: inference.New(opts.Vocabulary),
	}
}

// Load builds a catalog from document text. Malformed entries are skipped, never fatal.
func (l *Loader) Load(text string) *Catalog {
	return l.fromDocument(l.parser.Parse(text), "")
}

// LoadReader builds a catalog from everything r yields
func (l *Loader) LoadReader(r io.Reader) (*Catalog, error) {
	doc, err := l.parser.ParseReader(r)
	if err != nil {
		return nil, &LoadError{Message: "failed to read achievement document", Cause: err}
	}
	return l.fromDocument(doc, ""), nil
}

// LoadFile builds a catalog from a markdown file on disk
func (l *Loader) LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to open %s", path), Cause: err}
	}
	defer func() {
		_ = f.Close()
	}()

	doc, err := l.parser.ParseReader(f)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	return l.fromDocument(doc, path), nil
}

func (l *Loader) fromDocument(doc *parsing.Document, source string) *Catalog {
	return &Catalog{
		blocks:     l.inferencer.InferAll(doc.Entries),
		meta:       doc.Meta,
		report:     doc.Report,
		source:     source,
		importedAt: time.Now().UTC(),
	}
}

func cloneAll(blocks []types.Block) []types.Block {
	out := make([]types.Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Clone())
	}
	return out
}
