package repository

import (
	"mindcare-booking/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
)

// psql renders $n placeholders for pgx.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func lockSuffix(b sq.SelectBuilder, lock shared.LockMode) sq.SelectBuilder {
	switch lock {
	case shared.LockShare:
		return b.Suffix("FOR SHARE")
	case shared.LockUpdate:
		return b.Suffix("FOR UPDATE")
	default:
		return b
	}
}
