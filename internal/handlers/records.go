package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"lindash/internal/dates"
	"lindash/internal/export"
	"lindash/internal/filter"
	"lindash/internal/ingest"
	"lindash/internal/models"
	"lindash/internal/stats"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500

	// rangeLayout is the format of the start/end query parameters.
	rangeLayout = "2006-01-02"
)

// clauseKind selects how a query parameter maps onto a predicate clause.
type clauseKind int

const (
	clauseEquals clauseKind = iota
	clauseHasField
	clauseContains
)

type paramBinding struct {
	param  string
	field  string
	clause clauseKind
}

// filterParams maps each kind's query parameters to predicate clauses. The
// yes/no parameters (hasMessage, hasEmail) become non-emptiness clauses.
var filterParams = map[string][]paramBinding{
	models.KindInvitations: {
		{param: "direction", field: models.FieldDirection, clause: clauseEquals},
		{param: "hasMessage", field: models.FieldMessage, clause: clauseHasField},
	},
	models.KindJobs: {
		{param: "jobState", field: models.FieldJobState, clause: clauseEquals},
		{param: "company", field: models.FieldCompanyName, clause: clauseEquals},
		{param: "employmentStatus", field: models.FieldEmploymentStatus, clause: clauseEquals},
	},
	models.KindMessages: {
		{param: "folder", field: models.FieldFolder, clause: clauseEquals},
		{param: "isDraft", field: models.FieldIsDraft, clause: clauseEquals},
	},
	models.KindRichMedia: {
		{param: "mediaType", field: models.FieldMediaDescription, clause: clauseContains},
	},
	models.KindConnections: {
		{param: "company", field: models.FieldCompany, clause: clauseEquals},
		{param: "position", field: models.FieldPosition, clause: clauseEquals},
		{param: "hasEmail", field: models.FieldEmailAddress, clause: clauseHasField},
	},
}

// RecordsHandler serves one record kind's filtered, paginated listing
// @Summary List records of one kind
// @Description List records with optional date-range narrowing (start/end, YYYY-MM-DD), field filters, free-text search, sorting, and pagination. The response carries the per-kind statistics of the whole filtered view, recomputed with the same rules as /api/stats.
// @Tags records
// @Accept json
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD, inclusive)"
// @Param end query string false "Range end (YYYY-MM-DD, inclusive)"
// @Param search query string false "Case-insensitive substring over all fields"
// @Param sort query string false "Field to sort by"
// @Param order query string false "asc or desc" default(asc)
// @Param page query int false "1-based page" default(1)
// @Param pageSize query int false "Page size, capped at 500" default(50)
// @Success 200 {object} models.RecordsResponse
// @Router /api/{kind} [get]
func RecordsHandler(svc *ingest.Service, kind string) echo.HandlerFunc {
	schema, _ := export.SchemaFor(kind)

	return func(c echo.Context) error {
		records := svc.Current().Kind(kind)

		pred := buildPredicate(c, kind, schema)
		filtered := filter.Apply(records, pred)

		if q := strings.TrimSpace(c.QueryParam("search")); q != "" {
			filtered = searchRecords(filtered, q)
		}

		if field := c.QueryParam("sort"); field != "" {
			sortRecords(filtered, field, schema, c.QueryParam("order") == "desc")
		}

		// Derived stats cover the whole filtered view, not just the page.
		derived := stats.ForKind(kind, filtered)

		page, pageSize := pageParams(c)
		paged := paginate(filtered, page, pageSize)

		return c.JSON(http.StatusOK, models.RecordsResponse{
			Data:     paged,
			Total:    len(filtered),
			Page:     page,
			PageSize: pageSize,
			Stats:    derived,
		})
	}
}

func buildPredicate(c echo.Context, kind string, schema export.Schema) filter.Predicate {
	pred := filter.Predicate{
		DateField:  schema.DateField,
		DateLayout: schema.DateLayout,
		Equals:     map[string]string{},
		NonEmpty:   map[string]bool{},
		Contains:   map[string]string{},
	}

	if t, err := time.Parse(rangeLayout, c.QueryParam("start")); err == nil {
		pred.Start = &t
	}
	if t, err := time.Parse(rangeLayout, c.QueryParam("end")); err == nil {
		// The end bound is inclusive for the whole day.
		t = t.Add(24*time.Hour - time.Nanosecond)
		pred.End = &t
	}

	for _, b := range filterParams[kind] {
		value := strings.TrimSpace(c.QueryParam(b.param))
		if value == "" {
			continue
		}
		switch b.clause {
		case clauseEquals:
			pred.Equals[b.field] = value
		case clauseHasField:
			pred.NonEmpty[b.field] = value == "yes"
		case clauseContains:
			pred.Contains[b.field] = value
		}
	}

	return pred
}

// searchRecords keeps records where any field contains the query,
// case-insensitively.
func searchRecords(records []models.Record, query string) []models.Record {
	query = strings.ToLower(query)
	matched := []models.Record{}
	for _, r := range records {
		for _, v := range r {
			if strings.Contains(strings.ToLower(v), query) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// sortRecords orders records by a field. The kind's date field sorts
// chronologically with unparseable dates last; everything else sorts as text.
func sortRecords(records []models.Record, field string, schema export.Schema, desc bool) {
	byDate := field == schema.DateField

	less := func(i, j int) bool {
		if byDate {
			ti, iok := parseRecordDate(records[i], schema)
			tj, jok := parseRecordDate(records[j], schema)
			if iok != jok {
				return iok
			}
			if iok && jok && !ti.Equal(tj) {
				if desc {
					return tj.Before(ti)
				}
				return ti.Before(tj)
			}
			return false
		}
		vi, vj := records[i].Field(field), records[j].Field(field)
		if desc {
			return vj < vi
		}
		return vi < vj
	}

	sort.SliceStable(records, less)
}

func parseRecordDate(r models.Record, schema export.Schema) (time.Time, bool) {
	return dates.Parse(r[schema.DateField], schema.DateLayout)
}

func pageParams(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func paginate(records []models.Record, page, pageSize int) []models.Record {
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []models.Record{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
