package postgres

import "github.com/google/uuid"

// validIDs reports whether every id can be bound to a uuid column. Postgres
// rejects malformed input with 22P02 instead of matching nothing, so lookups
// short-circuit to "not found" before issuing SQL.
func validIDs(ids ...string) bool {
	for _, id := range ids {
		if uuid.Validate(id) != nil {
			return false
		}
	}
	return true
}
