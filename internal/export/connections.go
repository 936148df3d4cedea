package export

import (
	"bufio"
	"io"
	"strings"

	"lindash/internal/models"
)

// The connections source embeds a free-text preamble ("Notes: When exporting
// your connection data, you may notice...") before the real header row, and
// sometimes trailer notes after the data. The repair step keeps only the
// content from the true header onward and filters out rows that are notes
// rather than data.

// connectionsHeaderPrefix marks the true header row of Connections.csv.
const connectionsHeaderPrefix = "First Name,Last Name"

// relocateHeader scans line by line for the first line that begins with the
// header prefix and returns the content from that line onward. When no header
// exists the content is unusable and ok is false; callers must not guess.
func relocateHeader(r io.Reader) (string, bool) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var b strings.Builder
	found := false
	for scanner.Scan() {
		line := scanner.Text()
		if !found {
			if !strings.HasPrefix(strings.TrimSpace(line), connectionsHeaderPrefix) {
				continue
			}
			found = true
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if !found {
		return "", false
	}
	return b.String(), true
}

// validConnection reports whether a parsed row is a data row. First name, last
// name and the connected-on date must all be present, and the first name must
// not be the header literal or explanatory preamble text echoed into the data.
func validConnection(rec models.Record) bool {
	firstName := rec.Field(models.FieldFirstName)
	lastName := rec.Field(models.FieldLastName)
	connectedOn := rec.Field(models.FieldConnectedOn)

	if firstName == "" || lastName == "" || connectedOn == "" {
		return false
	}

	lower := strings.ToLower(firstName)
	return firstName != "Notes:" &&
		!strings.Contains(lower, "when exporting") &&
		!strings.Contains(lower, "first name")
}
