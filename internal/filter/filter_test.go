package filter

import (
	"testing"
	"time"

	"lindash/internal/dates"
	"lindash/internal/models"
	"lindash/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func connections() []models.Record {
	return []models.Record{
		{models.FieldFirstName: "Ada", models.FieldCompany: "Acme", models.FieldConnectedOn: "02 Jan 2024", models.FieldEmailAddress: "ada@example.com"},
		{models.FieldFirstName: "Grace", models.FieldCompany: "Acme", models.FieldConnectedOn: "15 Feb 2024", models.FieldEmailAddress: ""},
		{models.FieldFirstName: "Alan", models.FieldCompany: "Globex", models.FieldConnectedOn: "20 Mar 2024", models.FieldEmailAddress: "alan@example.com"},
		{models.FieldFirstName: "Edsger", models.FieldCompany: "Globex", models.FieldConnectedOn: "garbled", models.FieldEmailAddress: ""},
	}
}

func connectionsPredicate() Predicate {
	return Predicate{
		DateField:  models.FieldConnectedOn,
		DateLayout: dates.LayoutConnectedOn,
		Equals:     map[string]string{},
		NonEmpty:   map[string]bool{},
		Contains:   map[string]string{},
	}
}

func TestApply_NoClausesKeepsEverything(t *testing.T) {
	records := connections()
	got := Apply(records, connectionsPredicate())
	assert.Equal(t, records, got)
}

func TestApply_DateRangeInclusiveBounds(t *testing.T) {
	p := connectionsPredicate()
	p.Start = ts("2024-01-02")
	p.End = ts("2024-02-15")

	got := Apply(connections(), p)
	require.Len(t, got, 2)
	assert.Equal(t, "Ada", got[0].Field(models.FieldFirstName))
	assert.Equal(t, "Grace", got[1].Field(models.FieldFirstName))
}

func TestApply_UnparseableDateFailsActiveRangeOnly(t *testing.T) {
	// Without a range the garbled record passes.
	got := Apply(connections(), connectionsPredicate())
	assert.Len(t, got, 4)

	// Any active bound excludes it.
	p := connectionsPredicate()
	p.Start = ts("2000-01-01")
	got = Apply(connections(), p)
	assert.Len(t, got, 3)
	for _, r := range got {
		assert.NotEqual(t, "Edsger", r.Field(models.FieldFirstName))
	}
}

func TestApply_EqualsClauseTrimmedCaseSensitive(t *testing.T) {
	p := connectionsPredicate()
	p.Equals[models.FieldCompany] = "Acme"

	got := Apply(connections(), p)
	assert.Len(t, got, 2)

	p.Equals[models.FieldCompany] = "acme"
	assert.Empty(t, Apply(connections(), p))
}

func TestApply_NonEmptyClause(t *testing.T) {
	p := connectionsPredicate()
	p.NonEmpty[models.FieldEmailAddress] = true
	got := Apply(connections(), p)
	require.Len(t, got, 2)

	p = connectionsPredicate()
	p.NonEmpty[models.FieldEmailAddress] = false
	got = Apply(connections(), p)
	require.Len(t, got, 2)
	assert.Equal(t, "Grace", got[0].Field(models.FieldFirstName))
}

func TestApply_ContainsClauseCaseInsensitive(t *testing.T) {
	records := []models.Record{
		{models.FieldMediaDescription: "Profile Photo uploaded"},
		{models.FieldMediaDescription: "Feed photo"},
	}

	p := Predicate{Contains: map[string]string{models.FieldMediaDescription: "profile photo"}}
	got := Apply(records, p)
	require.Len(t, got, 1)
	assert.Equal(t, "Profile Photo uploaded", got[0].Field(models.FieldMediaDescription))
}

func TestApply_ClausesAreANDed(t *testing.T) {
	p := connectionsPredicate()
	p.Start = ts("2024-01-01")
	p.End = ts("2024-12-31")
	p.Equals[models.FieldCompany] = "Globex"
	p.NonEmpty[models.FieldEmailAddress] = true

	got := Apply(connections(), p)
	require.Len(t, got, 1)
	assert.Equal(t, "Alan", got[0].Field(models.FieldFirstName))
}

func TestApply_Idempotent(t *testing.T) {
	p := connectionsPredicate()
	p.Start = ts("2024-01-01")
	p.Equals[models.FieldCompany] = "Acme"

	once := Apply(connections(), p)
	twice := Apply(once, p)
	assert.Equal(t, once, twice)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	records := connections()
	p := connectionsPredicate()
	p.Equals[models.FieldCompany] = "Acme"

	_ = Apply(records, p)
	assert.Len(t, records, 4)
}

// Aggregating a filtered subset uses the same rules as the full dataset, so
// the derived total always matches the filtered length.
func TestApply_ConsistentWithAggregation(t *testing.T) {
	p := connectionsPredicate()
	p.Equals[models.FieldCompany] = "Globex"

	filtered := Apply(connections(), p)
	s := stats.Connections(filtered)
	assert.Equal(t, len(filtered), s.Total)
}
