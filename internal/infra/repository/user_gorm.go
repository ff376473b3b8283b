package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてmiddleware/usecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}

	return u, nil
}

// IdPのsubjectで引き、無ければ作る
func (r *userGormRepository) GetOrCreateBySubject(ctx context.Context, subjectID string, email string) (model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		First(&u).Error

	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, err
	}

	now := time.Now()
	u = model.User{
		SubjectID: subjectID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		//同時に作られた場合はもう一回引く
		var again model.User
		if err2 := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).First(&again).Error; err2 == nil {
			return again, nil
		}
		return model.User{}, err
	}

	return u, nil
}
