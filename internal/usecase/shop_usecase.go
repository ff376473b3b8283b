package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ShopUsecase struct {
	shopRepo repo.ShopRepository
}

// DI
func NewShopUsecase(shopRepo repo.ShopRepository) *ShopUsecase {
	return &ShopUsecase{shopRepo: shopRepo}
}

func (u *ShopUsecase) ListShops(ctx context.Context) ([]model.Shop, error) {
	shops, err := u.shopRepo.List(ctx)
	if err != nil {
		return []model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shops, nil
}

func (u *ShopUsecase) GetShopDetail(ctx context.Context, shopID int64) (model.Shop, error) {
	if shopID <= 0 {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "invalid shop id")
	}

	s, err := u.shopRepo.FindByID(ctx, shopID)
	if err == repo.ErrNotFound {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}
