package models

import "strings"

// Record kind identifiers, used for routing and stats keys.
const (
	KindInvitations = "invitations"
	KindJobs        = "jobs"
	KindMessages    = "messages"
	KindRichMedia   = "richMedia"
	KindConnections = "connections"
)

// Field names as they appear in the export CSV headers. The raw header names are
// the external contract: records are served back to the dashboard keyed by them.
const (
	// Invitations.csv
	FieldFrom      = "From"
	FieldTo        = "To"
	FieldSentAt    = "Sent At"
	FieldMessage   = "Message"
	FieldDirection = "Direction"

	// Jobs/Online Job Postings.csv
	FieldCompanyName      = "Company Name"
	FieldTitle            = "Title"
	FieldEmploymentStatus = "Employment Status"
	FieldJobState         = "Job State"
	FieldCreateDate       = "Create Date"

	// messages.csv
	FieldConversationID = "CONVERSATION ID"
	FieldMessageFrom    = "FROM"
	FieldMessageTo      = "TO"
	FieldMessageDate    = "DATE"
	FieldContent        = "CONTENT"
	FieldFolder         = "FOLDER"
	FieldIsDraft        = "IS MESSAGE DRAFT"

	// Rich_Media.csv
	FieldMediaDateTime    = "Date/Time"
	FieldMediaDescription = "Media Description"
	FieldMediaLink        = "Media Link"

	// Connections.csv
	FieldFirstName    = "First Name"
	FieldLastName     = "Last Name"
	FieldProfileURL   = "URL"
	FieldEmailAddress = "Email Address"
	FieldCompany      = "Company"
	FieldPosition     = "Position"
	FieldConnectedOn  = "Connected On"
)

// Record is one row of an export source file, keyed by the header names of that
// file. Fields may be absent or empty; no field is guaranteed non-empty. Records
// are immutable once parsed.
type Record map[string]string

// Field returns the trimmed value of a field, or "" when the field is absent.
func (r Record) Field(name string) string {
	return strings.TrimSpace(r[name])
}

// HasField reports whether a field is present and non-empty after trimming.
func (r Record) HasField(name string) bool {
	return r.Field(name) != ""
}

// Dataset holds the typed record collections of one ingested export.
type Dataset struct {
	ExportID    string   `json:"exportId"`
	Invitations []Record `json:"invitations"`
	Jobs        []Record `json:"jobs"`
	Messages    []Record `json:"messages"`
	RichMedia   []Record `json:"richMedia"`
	Connections []Record `json:"connections"`
}

// Kind returns the record collection for a kind identifier, or nil for an
// unknown kind.
func (d *Dataset) Kind(kind string) []Record {
	if d == nil {
		return nil
	}
	switch kind {
	case KindInvitations:
		return d.Invitations
	case KindJobs:
		return d.Jobs
	case KindMessages:
		return d.Messages
	case KindRichMedia:
		return d.RichMedia
	case KindConnections:
		return d.Connections
	}
	return nil
}
