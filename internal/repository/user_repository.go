package repository

import (
	"context"

	"app/internal/domain/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (model.User, error)

	//IdPのsubjectで引き、無ければ作る
	GetOrCreateBySubject(ctx context.Context, subjectID string, email string) (model.User, error)
}
