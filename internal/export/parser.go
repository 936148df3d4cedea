// Package export turns the raw CSV sources of a LinkedIn data export into
// typed record collections. One generic header-driven parser is parameterized
// by a Schema per record kind; the connections source additionally carries a
// repair step that locates the real header row inside free-text preamble.
package export

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"lindash/internal/dates"
	"lindash/internal/models"
)

// Schema describes one record kind's source file and parsing rules.
type Schema struct {
	Kind       string
	File       string // path relative to the export root
	DateField  string // field used for monthly bucketing and date-range filters
	DateLayout string // empty means the generic fallback chain
	Repair     bool   // relocate the header row and drop note rows (connections)
}

// Schemas lists the five record kinds in serving order.
var Schemas = []Schema{
	{
		Kind:       models.KindInvitations,
		File:       "Invitations.csv",
		DateField:  models.FieldSentAt,
		DateLayout: dates.LayoutSentAt,
	},
	{
		Kind:      models.KindJobs,
		File:      filepath.Join("Jobs", "Online Job Postings.csv"),
		DateField: models.FieldCreateDate,
	},
	{
		Kind:      models.KindMessages,
		File:      "messages.csv",
		DateField: models.FieldMessageDate,
	},
	{
		Kind:      models.KindRichMedia,
		File:      "Rich_Media.csv",
		DateField: models.FieldMediaDateTime,
	},
	{
		Kind:       models.KindConnections,
		File:       "Connections.csv",
		DateField:  models.FieldConnectedOn,
		DateLayout: dates.LayoutConnectedOn,
		Repair:     true,
	},
}

// SchemaFor returns the schema of a kind identifier.
func SchemaFor(kind string) (Schema, bool) {
	for _, s := range Schemas {
		if s.Kind == kind {
			return s, true
		}
	}
	return Schema{}, false
}

// Diagnostics reports what happened while loading one source. Nothing in here
// is fatal; a missing source simply yields an empty collection.
type Diagnostics struct {
	Kind           string
	SourceMissing  bool // the source file does not exist
	HeaderNotFound bool // repair scan found no header row, content discarded
	RowsParsed     int
	RowsDropped    int // non-qualifying rows discarded by the repair filter
}

// Parse reads a delimited source into records. The header row determines field
// names; when a header name repeats, the last value wins. Short rows produce
// partial records with the trailing fields unset rather than being dropped.
func Parse(r io.Reader, s Schema) ([]models.Record, Diagnostics) {
	diag := Diagnostics{Kind: s.Kind}

	src := r
	if s.Repair {
		content, ok := relocateHeader(r)
		if !ok {
			diag.HeaderNotFound = true
			return []models.Record{}, diag
		}
		src = strings.NewReader(content)
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		// Empty or unreadable content is an empty collection, not an error.
		return []models.Record{}, diag
	}

	records := []models.Record{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			diag.RowsDropped++
			continue
		}

		rec := make(models.Record, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			rec[name] = row[i]
		}

		if s.Repair && !validConnection(rec) {
			diag.RowsDropped++
			continue
		}

		records = append(records, rec)
		diag.RowsParsed++
	}

	return records, diag
}

// Load parses one kind's source from the export root. A missing file yields an
// empty collection so the other kinds are unaffected.
func Load(dir string, s Schema) ([]models.Record, Diagnostics) {
	f, err := os.Open(filepath.Join(dir, s.File))
	if err != nil {
		diag := Diagnostics{Kind: s.Kind}
		if errors.Is(err, fs.ErrNotExist) {
			diag.SourceMissing = true
		}
		return []models.Record{}, diag
	}
	defer func() { _ = f.Close() }()

	return Parse(f, s)
}
