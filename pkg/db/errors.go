package db

import "strings"

// IsUniqueViolation reports whether the provided error is a unique constraint
// violation on Postgres or SQLite. When constraintName is provided, the helper
// looks for the constraint text in the error message.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}

// IsUniqueViolationOnTable matches SQLite unique failures, which list the
// offending table.column pairs instead of the index name.
func IsUniqueViolationOnTable(err error, table string) bool {
	if err == nil || table == "" {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: "+table+".")
}
