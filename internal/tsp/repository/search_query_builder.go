// Package repository implements approved TSP persistence.
//
// PostgreSQL and MySQL implementations share a dialect-aware SearchQueryBuilder
// for listing and counting. PostgreSQL uses native UUID types, MySQL uses
// BINARY(16).
package repository

import (
	"fmt"
	"strings"

	"github.com/allisson/tsp-registry/internal/database"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

const (
	approvedTspsTable   = "approved_tsps"
	approvedTspsColumns = "id, certificate, cert_hash, url, name, valid_from, valid_to, created_at, updated_at"

	// mysqlMaxLimit stands in for "no limit" because MySQL rejects OFFSET without LIMIT.
	mysqlMaxLimit = "18446744073709551615"
)

// FilterPredicate is a boolean SQL fragment and its bind arguments. An empty
// SQL string matches every row.
type FilterPredicate struct {
	SQL  string
	Args []any
}

// Query is a complete parameterized statement.
type Query struct {
	SQL  string
	Args []any
}

// SearchQueryBuilder translates list parameters into parameterized SQL.
// Caller input never reaches the SQL text: the search term is always bound and
// sort columns are resolved from a fixed whitelist.
type SearchQueryBuilder struct {
	dialect database.Dialect
}

// NewSearchQueryBuilder creates a builder for the given dialect.
func NewSearchQueryBuilder(dialect database.Dialect) *SearchQueryBuilder {
	return &SearchQueryBuilder{dialect: dialect}
}

func searchColumnSQL(c tspDomain.SearchColumn) string {
	switch c {
	case tspDomain.SearchName:
		return "name"
	case tspDomain.SearchValidFrom:
		return "valid_from"
	case tspDomain.SearchValidTo:
		return "valid_to"
	default:
		panic(fmt.Sprintf("unmapped search column %d", int(c)))
	}
}

func sortColumnSQL(c tspDomain.SortColumn) (string, error) {
	switch c {
	case tspDomain.SortByName:
		return "name", nil
	case tspDomain.SortByValidFrom:
		return "valid_from", nil
	case tspDomain.SortByValidTo:
		return "valid_to", nil
	case tspDomain.SortByURL:
		return "url", nil
	case tspDomain.SortByCreatedAt:
		return "created_at", nil
	default:
		return "", fmt.Errorf("%w: %s", tspDomain.ErrInvalidSortColumn, c)
	}
}

// EscapeLike escapes the LIKE wildcards in s so that it matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Filter builds a case-insensitive substring match of search against every
// searchable column, OR-combined. Blank search yields an empty predicate.
func (b *SearchQueryBuilder) Filter(search string) FilterPredicate {
	if strings.TrimSpace(search) == "" {
		return FilterPredicate{}
	}

	pattern := "%" + EscapeLike(search) + "%"
	columns := tspDomain.SearchableColumns()
	conditions := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))

	for i, column := range columns {
		conditions = append(conditions, fmt.Sprintf(
			"LOWER(CAST(%s AS %s)) LIKE LOWER(%s) %s",
			searchColumnSQL(column),
			b.dialect.TextType(),
			b.dialect.Placeholder(i+1),
			b.dialect.LikeEscapeClause(),
		))
		args = append(args, pattern)
	}

	return FilterPredicate{
		SQL:  "(" + strings.Join(conditions, " OR ") + ")",
		Args: args,
	}
}

// Build returns the SELECT for one page of records. Rows are ordered by the
// requested column and then by created_at and id so that paging is stable.
func (b *SearchQueryBuilder) Build(params tspDomain.ListParams) (Query, error) {
	if err := params.Validate(); err != nil {
		return Query{}, err
	}

	column, err := sortColumnSQL(params.SortColumn)
	if err != nil {
		return Query{}, err
	}

	filter := b.Filter(params.Search)
	args := filter.Args

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", approvedTspsColumns, approvedTspsTable)
	if filter.SQL != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(filter.SQL)
	}

	fmt.Fprintf(&sb, " ORDER BY %s %s", column, params.SortDirection)
	if column != "created_at" {
		sb.WriteString(", created_at ASC")
	}
	sb.WriteString(", id ASC")

	switch {
	case params.Limit > 0:
		fmt.Fprintf(&sb, " LIMIT %s OFFSET %s", b.dialect.Placeholder(len(args)+1), b.dialect.Placeholder(len(args)+2))
		args = append(args, params.Limit, params.Offset)
	case params.Offset > 0 && b.dialect == database.MySQL:
		fmt.Fprintf(&sb, " LIMIT %s OFFSET %s", mysqlMaxLimit, b.dialect.Placeholder(len(args)+1))
		args = append(args, params.Offset)
	case params.Offset > 0:
		fmt.Fprintf(&sb, " OFFSET %s", b.dialect.Placeholder(len(args)+1))
		args = append(args, params.Offset)
	}

	return Query{SQL: sb.String(), Args: args}, nil
}

// Count returns the SELECT COUNT(*) matching the same filter as Build.
func (b *SearchQueryBuilder) Count(search string) Query {
	filter := b.Filter(search)

	sql := "SELECT COUNT(*) FROM " + approvedTspsTable
	if filter.SQL != "" {
		sql += " WHERE " + filter.SQL
	}
	return Query{SQL: sql, Args: filter.Args}
}
