package commands

import (
	"mindcare-booking/internal/infra"
	"mindcare-booking/internal/pkg/errs"
)

// repoErr translates a repository failure into the error taxonomy. A missing
// row becomes notFound; anything else is a database failure.
func repoErr(err, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
