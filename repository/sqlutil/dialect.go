// Package sqlutil holds the few statements that differ between the MySQL
// production database and the embedded sqlite one.
package sqlutil

import "github.com/jmoiron/sqlx"

// ForUpdate returns the row-lock suffix for a SELECT. sqlite serializes
// writers at the database level and rejects the clause.
func ForUpdate(ext sqlx.Ext) string {
	if isSQLite(ext) {
		return ""
	}
	return " FOR UPDATE"
}

// InsertIgnore returns the INSERT prefix that silently skips unique-key conflicts.
func InsertIgnore(ext sqlx.Ext) string {
	if isSQLite(ext) {
		return "INSERT OR IGNORE"
	}
	return "INSERT IGNORE"
}

func isSQLite(ext sqlx.Ext) bool {
	switch ext.DriverName() {
	case "sqlite", "sqlite3":
		return true
	}
	return false
}
