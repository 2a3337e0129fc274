package internal

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
)

// buildUpdate assembles an UPDATE statement covering only the supplied
// columns. Values are bound through placeholders exclusively; column names
// come from the handler's fixed set, never from request input. Callers must
// reject the request before this point when no columns were supplied.
func buildUpdate(table, idCol string, id int, set map[string]any) (string, []any, error) {
	if len(set) == 0 {
		return "", nil, errors.New("no columns to update")
	}
	return psql.Update(table).SetMap(set).Where(sq.Eq{idCol: id}).ToSql()
}
