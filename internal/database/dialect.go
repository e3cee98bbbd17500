package database

import (
	"fmt"
	"strconv"
)

// Dialect identifies the SQL flavor spoken by a connection.
type Dialect int

// Supported dialects.
const (
	PostgreSQL Dialect = iota + 1
	MySQL
)

// ParseDialect maps a database/sql driver name to its Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch driver {
	case "postgres":
		return PostgreSQL, nil
	case "mysql":
		return MySQL, nil
	default:
		return 0, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// String returns the database/sql driver name of the dialect.
func (d Dialect) String() string {
	switch d {
	case PostgreSQL:
		return "postgres"
	case MySQL:
		return "mysql"
	default:
		return "unknown"
	}
}

// Placeholder returns the bind parameter marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d == PostgreSQL {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// TextType is the type name used to cast non-text columns for pattern matching.
func (d Dialect) TextType() string {
	if d == PostgreSQL {
		return "TEXT"
	}
	return "CHAR"
}

// LikeEscapeClause returns the ESCAPE clause that makes backslash the LIKE escape
// character. MySQL string literals treat backslash as an escape, so it is doubled.
func (d Dialect) LikeEscapeClause() string {
	if d == MySQL {
		return `ESCAPE '\\'`
	}
	return `ESCAPE '\'`
}
