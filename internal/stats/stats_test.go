package stats

import (
	"testing"

	"lindash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invitation(direction, sentAt, message string) models.Record {
	return models.Record{
		models.FieldDirection: direction,
		models.FieldSentAt:    sentAt,
		models.FieldMessage:   message,
	}
}

func connection(company, connectedOn, email string) models.Record {
	return models.Record{
		models.FieldCompany:      company,
		models.FieldConnectedOn:  connectedOn,
		models.FieldEmailAddress: email,
	}
}

func TestCountBy_UnknownBucket(t *testing.T) {
	records := []models.Record{
		{models.FieldDirection: "OUTGOING"},
		{models.FieldDirection: "OUTGOING"},
		{models.FieldDirection: "  "},
		{},
	}

	counts := CountBy(records, FieldValue(models.FieldDirection))
	assert.Equal(t, 2, counts["OUTGOING"])
	assert.Equal(t, 2, counts[Unknown])
}

func TestMonthly_SkipsUnparseableDates(t *testing.T) {
	records := []models.Record{
		invitation("OUTGOING", "1/2/24, 3:00 PM", ""),
		invitation("OUTGOING", "1/20/24, 8:00 AM", ""),
		invitation("OUTGOING", "not a date", ""),
		invitation("OUTGOING", "", ""),
	}

	monthly := Monthly(records, models.FieldSentAt, "1/2/06, 3:04 PM")
	assert.Equal(t, map[string]int{"2024-01": 2}, monthly)
}

func TestDistinct_IgnoresEmptyValues(t *testing.T) {
	records := []models.Record{
		{models.FieldCompany: "Acme"},
		{models.FieldCompany: "Acme"},
		{models.FieldCompany: "Globex"},
		{models.FieldCompany: ""},
		{},
	}

	assert.Equal(t, 2, Distinct(records, models.FieldCompany))
}

func TestTopN_TieBreakByInsertionOrder(t *testing.T) {
	var records []models.Record
	add := func(company string, n int) {
		for i := 0; i < n; i++ {
			records = append(records, connection(company, "", ""))
		}
	}
	// A and B tie at 5; A was seen first and must stay first.
	add("A", 5)
	add("B", 5)
	add("C", 3)

	ranking := TopN(records, models.FieldCompany, 10)
	require.Len(t, ranking, 3)
	assert.Equal(t, models.NameValue{Name: "A", Value: 5}, ranking[0])
	assert.Equal(t, models.NameValue{Name: "B", Value: 5}, ranking[1])
	assert.Equal(t, models.NameValue{Name: "C", Value: 3}, ranking[2])
}

func TestTopN_TruncatesToN(t *testing.T) {
	var records []models.Record
	companies := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i, name := range companies {
		for j := 0; j <= i; j++ {
			records = append(records, connection(name, "", ""))
		}
	}

	ranking := TopN(records, models.FieldCompany, 10)
	require.Len(t, ranking, 10)
	assert.Equal(t, "l", ranking[0].Name)
	assert.Equal(t, 12, ranking[0].Value)
}

func TestMediaCategory(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{name: "profile photo", desc: "Profile Photo uploaded 2024", want: CategoryProfilePhoto},
		{name: "case insensitive", desc: "FEED PHOTO from post", want: CategoryFeedPhoto},
		{name: "background", desc: "my background photo", want: CategoryBackgroundPhoto},
		{name: "first match wins", desc: "profile photo used as background photo", want: CategoryProfilePhoto},
		{name: "uncategorized", desc: "a video attachment", want: ""},
		{name: "empty", desc: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.Record{models.FieldMediaDescription: tt.desc}
			assert.Equal(t, tt.want, MediaCategory(r))
		})
	}
}

func TestInvitations(t *testing.T) {
	records := []models.Record{
		invitation("OUTGOING", "1/2/24, 3:00 PM", "hello"),
		invitation("OUTGOING", "2/10/24, 1:00 PM", ""),
		invitation("INCOMING", "1/15/24, 9:00 AM", "  "),
		invitation("", "bad date", "hi"),
	}

	s := Invitations(records)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Outgoing)
	assert.Equal(t, 1, s.Incoming)
	assert.Equal(t, 2, s.WithMessage)
	// The record with the bad date stays in the totals but not in the buckets.
	assert.Equal(t, map[string]int{"2024-01": 2, "2024-02": 1}, s.Monthly)
}

func TestJobs_CollapsesStates(t *testing.T) {
	job := func(state, company string) models.Record {
		return models.Record{models.FieldJobState: state, models.FieldCompanyName: company}
	}
	records := []models.Record{
		job("OPEN", "Acme"),
		job("LISTED", "Acme"),
		job("CLOSED", "Globex"),
		job("DRAFT", "Initech"),
		job("SUSPENDED", "Initech"),
	}

	s := Jobs(records)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, 1, s.Closed)
	assert.Equal(t, 1, s.Draft)
	assert.Equal(t, 3, s.UniqueCompanies)
}

func TestMessages(t *testing.T) {
	msg := func(conv, folder, draft string) models.Record {
		return models.Record{
			models.FieldConversationID: conv,
			models.FieldFolder:         folder,
			models.FieldIsDraft:        draft,
		}
	}
	records := []models.Record{
		msg("c1", "INBOX", "No"),
		msg("c1", "SENT", "No"),
		msg("c2", "INBOX", "Yes"),
		msg("", "ARCHIVED", "No"),
	}

	s := Messages(records)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Inbox)
	assert.Equal(t, 1, s.Sent)
	assert.Equal(t, 1, s.Drafts)
	assert.Equal(t, 2, s.UniqueConversations)
}

func TestConnections(t *testing.T) {
	records := []models.Record{
		connection("Acme", "02 Jan 2024", "a@example.com"),
		connection("Acme", "15 Jan 2024", ""),
		connection("Globex", "20 Feb 2024", "b@example.com"),
		connection("", "nonsense", ""),
	}

	s := Connections(records)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.WithEmail)
	assert.Equal(t, 2, s.UniqueCompanies)
	assert.Equal(t, map[string]int{"2024-01": 2, "2024-02": 1}, s.Monthly)
	require.Len(t, s.TopCompanies, 2)
	assert.Equal(t, models.NameValue{Name: "Acme", Value: 2}, s.TopCompanies[0])
}

func TestAggregate_NilDataset(t *testing.T) {
	s := Aggregate(nil)
	assert.Equal(t, 0, s.Invitations.Total)
	assert.Equal(t, 0, s.Jobs.Total)
	assert.Equal(t, 0, s.Messages.Total)
	assert.Equal(t, 0, s.RichMedia.Total)
	assert.Equal(t, 0, s.Connections.Total)
	assert.NotNil(t, s.Connections.TopCompanies)
}

func TestForKind(t *testing.T) {
	records := []models.Record{invitation("OUTGOING", "1/2/24, 3:00 PM", "")}

	got := ForKind(models.KindInvitations, records)
	s, ok := got.(models.InvitationStats)
	require.True(t, ok)
	assert.Equal(t, 1, s.Total)

	assert.Nil(t, ForKind("unknown", records))
}
