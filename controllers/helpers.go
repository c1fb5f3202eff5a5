package controllers

import "strings"

// isUniqueViolation reports whether a database error was caused by a unique
// constraint. Checked by message text so it works with both PostgreSQL and
// the SQLite test databases.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}
