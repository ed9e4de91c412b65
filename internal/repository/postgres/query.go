package postgres

import (
	"database/sql"
	"strings"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, with LIKE
// wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// checkAffected logs the outcome of a write and reports a missing row as
// domain.ErrNotFound.
func checkAffected(operation, entity string, res sql.Result, err error) error {
	if err != nil {
		logger.DatabaseResult(operation, 0, err)
		return translateError(err, entity)
	}
	rows, err := res.RowsAffected()
	logger.DatabaseResult(operation, rows, err)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("%s not found", entity)
	}
	return nil
}
