package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/givehub/eventsapi/internal/domain/event"
)

func strPtr(s string) *string { return &s }

func TestSearchQueryNoFilters(t *testing.T) {
	query, args := searchQuery(event.SearchFilter{})

	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if !strings.Contains(query, "WHERE e.is_active = TRUE") {
		t.Fatalf("base predicate missing: %s", query)
	}
	if strings.Contains(query, " AND ") {
		t.Fatalf("no filter should add no AND clause: %s", query)
	}
	if !strings.HasSuffix(strings.TrimSpace(query), "ORDER BY e.event_date ASC") {
		t.Fatalf("missing date ordering: %s", query)
	}
}

func TestHomeQueryHidesPastEvents(t *testing.T) {
	// the home listing cuts off at today; an unfiltered search does not
	if !strings.Contains(homeQuery, "e.event_date >= CURRENT_DATE") {
		t.Fatalf("home query missing the date cutoff: %s", homeQuery)
	}

	search, _ := searchQuery(event.SearchFilter{})

	if strings.Contains(search, "CURRENT_DATE") {
		t.Fatalf("search must return past events too: %s", search)
	}
}

func TestSearchQueryAllFilters(t *testing.T) {
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	f := event.SearchFilter{
		Date:     &date,
		Location: strPtr("River"),
		Category: strPtr("Fun Run"),
	}

	query, args := searchQuery(f)

	// placeholders follow evaluation order: date, location, category
	for _, want := range []string{
		"e.event_date = $1",
		"e.location ILIKE $2",
		"c.name = $3",
	} {
		if !strings.Contains(query, want) {
			t.Fatalf("query missing %q: %s", want, query)
		}
	}

	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[0] != date {
		t.Fatalf("arg 0 should be the date, got %v", args[0])
	}
	if args[1] != "%River%" {
		t.Fatalf("location should be wrapped for substring match, got %v", args[1])
	}
	if args[2] != "Fun Run" {
		t.Fatalf("category should match the exact name, got %v", args[2])
	}
}

func TestSearchQuerySingleFilterPositions(t *testing.T) {
	f := event.SearchFilter{Category: strPtr("Gala Dinner")}

	query, args := searchQuery(f)

	if !strings.Contains(query, "c.name = $1") {
		t.Fatalf("lone filter should bind $1: %s", query)
	}
	if len(args) != 1 || args[0] != "Gala Dinner" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSearchQueryNeverInlinesValues(t *testing.T) {
	// a hostile value must only ever appear in the args, not the SQL
	hostile := "x'; DROP TABLE events; --"
	f := event.SearchFilter{Location: &hostile}

	query, args := searchQuery(f)

	if strings.Contains(query, hostile) {
		t.Fatalf("filter value leaked into query text: %s", query)
	}
	if len(args) != 1 || args[0] != "%"+hostile+"%" {
		t.Fatalf("hostile value should be a bound arg: %v", args)
	}
}
