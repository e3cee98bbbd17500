package domain

import (
	"fmt"
	"strings"
)

// SearchColumn enumerates the columns matched by free-text search.
type SearchColumn int

// Searchable columns.
const (
	SearchName SearchColumn = iota + 1
	SearchValidFrom
	SearchValidTo
)

// SearchableColumns returns the fixed search whitelist in match order.
func SearchableColumns() []SearchColumn {
	return []SearchColumn{SearchName, SearchValidFrom, SearchValidTo}
}

// SortColumn enumerates the columns a listing may be ordered by.
type SortColumn int

// Sortable columns: the search whitelist plus url and created_at.
const (
	SortByName SortColumn = iota + 1
	SortByValidFrom
	SortByValidTo
	SortByURL
	SortByCreatedAt
)

var sortColumnNames = map[SortColumn]string{
	SortByName:      "name",
	SortByValidFrom: "valid_from",
	SortByValidTo:   "valid_to",
	SortByURL:       "url",
	SortByCreatedAt: "created_at",
}

// String returns the snake_case API name of the column.
func (c SortColumn) String() string {
	if name, ok := sortColumnNames[c]; ok {
		return name
	}
	return fmt.Sprintf("SortColumn(%d)", int(c))
}

// IsValid reports whether c is one of the declared sort columns.
func (c SortColumn) IsValid() bool {
	_, ok := sortColumnNames[c]
	return ok
}

// sortColumnSpellings maps the lowercased snake_case and camelCase spelling of
// every column to the column. "valid_from" is stored as "valid_from" and as
// "validfrom", the lowercased form of "validFrom".
var sortColumnSpellings = func() map[string]SortColumn {
	spellings := make(map[string]SortColumn, 2*len(sortColumnNames))
	for column, name := range sortColumnNames {
		spellings[name] = column
		spellings[strings.ReplaceAll(name, "_", "")] = column
	}
	return spellings
}()

// ParseSortColumn resolves a caller-supplied column name. Only the snake_case
// name or its camelCase form is accepted, case-insensitively.
func ParseSortColumn(s string) (SortColumn, error) {
	if column, ok := sortColumnSpellings[strings.ToLower(strings.TrimSpace(s))]; ok {
		return column, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSortColumn, s)
}

// SortDirection is the ordering applied to the sort column.
type SortDirection int

// Sort directions.
const (
	Ascending SortDirection = iota + 1
	Descending
)

// String returns the SQL keyword for the direction.
func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return fmt.Sprintf("SortDirection(%d)", int(d))
	}
}

// IsValid reports whether d is Ascending or Descending.
func (d SortDirection) IsValid() bool {
	return d == Ascending || d == Descending
}

// ParseSortDirection accepts "ASC" or "DESC" in any case.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASC":
		return Ascending, nil
	case "DESC":
		return Descending, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSortDirection, s)
	}
}

// ListParams describes one page of a filtered, sorted listing.
type ListParams struct {
	Search        string
	SortColumn    SortColumn
	SortDirection SortDirection
	Limit         int // 0 means no limit
	Offset        int
}

// Validate checks the enum fields and pagination bounds.
func (p ListParams) Validate() error {
	if !p.SortColumn.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidSortColumn, p.SortColumn)
	}
	if !p.SortDirection.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidSortDirection, p.SortDirection)
	}
	if p.Limit < 0 {
		return fmt.Errorf("%w: limit must be a non-negative integer", ErrInvalidPagination)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: offset must be a non-negative integer", ErrInvalidPagination)
	}
	return nil
}

// NewListParams builds ListParams from caller-facing values
// (searchString, sortColumn, sortDirection, displayLength, displayStart).
func NewListParams(search, sortColumn, sortDirection string, limit, offset int) (ListParams, error) {
	column, err := ParseSortColumn(sortColumn)
	if err != nil {
		return ListParams{}, err
	}

	direction, err := ParseSortDirection(sortDirection)
	if err != nil {
		return ListParams{}, err
	}

	params := ListParams{
		Search:        search,
		SortColumn:    column,
		SortDirection: direction,
		Limit:         limit,
		Offset:        offset,
	}
	if err := params.Validate(); err != nil {
		return ListParams{}, err
	}
	return params, nil
}
