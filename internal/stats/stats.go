// Package stats derives aggregate statistics from record collections. Every
// function here is a pure function of its input, and the same builders serve
// both the full dataset and filtered subsets, so the two views can never
// diverge in semantics.
package stats

import (
	"sort"
	"strings"

	"lindash/internal/dates"
	"lindash/internal/models"
)

// Unknown is the categorical bucket for records whose discriminant field is
// absent or empty. Set-based distinctness counts drop empties instead.
const Unknown = "Unknown"

// Job states that count as active.
const (
	JobStateOpen   = "OPEN"
	JobStateListed = "LISTED"
	JobStateClosed = "CLOSED"
	JobStateDraft  = "DRAFT"
)

const (
	DirectionOutgoing = "OUTGOING"
	DirectionIncoming = "INCOMING"

	FolderInbox = "INBOX"
	FolderSent  = "SENT"
)

// Rich media categories, matched as case-insensitive substrings of the media
// description. A description matching several lands in the first.
const (
	CategoryProfilePhoto    = "profile photo"
	CategoryFeedPhoto       = "feed photo"
	CategoryBackgroundPhoto = "background photo"
)

var mediaCategories = []string{CategoryProfilePhoto, CategoryFeedPhoto, CategoryBackgroundPhoto}

// FieldValue returns a projection that reads one trimmed field of a record.
func FieldValue(name string) func(models.Record) string {
	return func(r models.Record) string {
		return r.Field(name)
	}
}

// CountBy groups records by a projection. Records projecting to "" are
// bucketed under Unknown so rendered breakdowns always account for every
// record.
func CountBy(records []models.Record, key func(models.Record) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		k := key(r)
		if k == "" {
			k = Unknown
		}
		counts[k]++
	}
	return counts
}

// Monthly buckets records into a sparse "YYYY-MM" -> count map using the
// given date field. Records whose date does not parse are left out of the map
// but still count toward totals and categorical breakdowns.
func Monthly(records []models.Record, field, layout string) map[string]int {
	buckets := make(map[string]int)
	for _, r := range records {
		t, ok := dates.Parse(r[field], layout)
		if !ok {
			continue
		}
		buckets[dates.MonthKey(t)]++
	}
	return buckets
}

// Distinct counts unique non-empty trimmed values of a field.
func Distinct(records []models.Record, field string) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		v := r.Field(field)
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// TopN groups records by a trimmed field (ignoring empties), counts, and
// returns the n largest groups. Ties keep first-encountered order, which makes
// the ranking reproducible across runs.
func TopN(records []models.Record, field string, n int) []models.NameValue {
	counts := make(map[string]int)
	order := []string{}
	for _, r := range records {
		v := r.Field(field)
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	ranking := make([]models.NameValue, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, models.NameValue{Name: name, Value: counts[name]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Value > ranking[j].Value
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// MediaCategory derives the category of a rich media record from its
// description. First match wins; "" means uncategorized.
func MediaCategory(r models.Record) string {
	desc := strings.ToLower(r.Field(models.FieldMediaDescription))
	if desc == "" {
		return ""
	}
	for _, cat := range mediaCategories {
		if strings.Contains(desc, cat) {
			return cat
		}
	}
	return ""
}

// Invitations aggregates the invitations collection.
func Invitations(records []models.Record) models.InvitationStats {
	byDirection := CountBy(records, FieldValue(models.FieldDirection))

	withMessage := 0
	for _, r := range records {
		if r.HasField(models.FieldMessage) {
			withMessage++
		}
	}

	return models.InvitationStats{
		Total:       len(records),
		Outgoing:    byDirection[DirectionOutgoing],
		Incoming:    byDirection[DirectionIncoming],
		WithMessage: withMessage,
		Monthly:     Monthly(records, models.FieldSentAt, dates.LayoutSentAt),
	}
}

// Jobs aggregates the job postings collection. OPEN and LISTED collapse into
// the active count.
func Jobs(records []models.Record) models.JobStats {
	byState := CountBy(records, FieldValue(models.FieldJobState))

	return models.JobStats{
		Total:           len(records),
		Active:          byState[JobStateOpen] + byState[JobStateListed],
		Closed:          byState[JobStateClosed],
		Draft:           byState[JobStateDraft],
		UniqueCompanies: Distinct(records, models.FieldCompanyName),
	}
}

// Messages aggregates the messages collection. Conversations group messages
// for the uniqueness count.
func Messages(records []models.Record) models.MessageStats {
	byFolder := CountBy(records, FieldValue(models.FieldFolder))

	drafts := 0
	for _, r := range records {
		if r.Field(models.FieldIsDraft) == "Yes" {
			drafts++
		}
	}

	return models.MessageStats{
		Total:               len(records),
		Inbox:               byFolder[FolderInbox],
		Sent:                byFolder[FolderSent],
		Drafts:              drafts,
		UniqueConversations: Distinct(records, models.FieldConversationID),
	}
}

// RichMedia aggregates the rich media collection by derived category.
func RichMedia(records []models.Record) models.RichMediaStats {
	byCategory := CountBy(records, MediaCategory)

	return models.RichMediaStats{
		Total:            len(records),
		ProfilePhotos:    byCategory[CategoryProfilePhoto],
		FeedPhotos:       byCategory[CategoryFeedPhoto],
		BackgroundPhotos: byCategory[CategoryBackgroundPhoto],
	}
}

// Connections aggregates the connections collection, including the top-10
// company ranking.
func Connections(records []models.Record) models.ConnectionStats {
	withEmail := 0
	for _, r := range records {
		if r.HasField(models.FieldEmailAddress) {
			withEmail++
		}
	}

	return models.ConnectionStats{
		Total:           len(records),
		WithEmail:       withEmail,
		UniqueCompanies: Distinct(records, models.FieldCompany),
		Monthly:         Monthly(records, models.FieldConnectedOn, dates.LayoutConnectedOn),
		TopCompanies:    TopN(records, models.FieldCompany, 10),
	}
}

// Aggregate computes the combined stats object over a dataset. A nil dataset
// yields all-zero stats so the dashboard always has something to render.
func Aggregate(d *models.Dataset) models.Stats {
	return models.Stats{
		Invitations: Invitations(d.Kind(models.KindInvitations)),
		Jobs:        Jobs(d.Kind(models.KindJobs)),
		Messages:    Messages(d.Kind(models.KindMessages)),
		RichMedia:   RichMedia(d.Kind(models.KindRichMedia)),
		Connections: Connections(d.Kind(models.KindConnections)),
	}
}

// ForKind computes the per-kind stats for an arbitrary record subset, e.g. the
// output of a filter pass. Unknown kinds yield nil.
func ForKind(kind string, records []models.Record) any {
	switch kind {
	case models.KindInvitations:
		return Invitations(records)
	case models.KindJobs:
		return Jobs(records)
	case models.KindMessages:
		return Messages(records)
	case models.KindRichMedia:
		return RichMedia(records)
	case models.KindConnections:
		return Connections(records)
	}
	return nil
}
