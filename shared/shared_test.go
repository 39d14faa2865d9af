package shared_test

import (
	"testing"

	"wakens/shared"
	"wakens/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns one page",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns one page",
			total:    25,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    20,
			limit:    10,
			expected: 2,
		},
		{
			name:     "rounds up",
			total:    21,
			limit:    10,
			expected: 3,
		},
		{
			name:     "single page",
			total:    3,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking", "gets"); got != "booking:gets" {
		t.Errorf("expected booking:gets, got %s", got)
	}

	if got := shared.BuildCacheKey("sensors", "room-101", "latest"); got != "sensors:room-101:latest" {
		t.Errorf("expected sensors:room-101:latest, got %s", got)
	}
}

func TestBuildCacheKeyWithQuery_DistinctFilters(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	confirmed := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed"},
		},
	}
	cancelled := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "cancelled"},
		},
	}

	a := shared.BuildCacheKeyWithQuery("booking:gets", params, confirmed)
	b := shared.BuildCacheKeyWithQuery("booking:gets", params, cancelled)

	if a == b {
		t.Error("expected distinct filters to produce distinct cache keys")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("h-1", "id", "hotels")

	where, args := group.GetWhereClause()
	if where != "(hotels.id = :id)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["id"] != "h-1" {
		t.Errorf("expected id arg h-1, got %v", args["id"])
	}
}
