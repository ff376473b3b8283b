package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /shops のHTTP。受け取り場所の一覧にも使う。
type ShopHandler struct {
	uc *usecase.ShopUsecase
}

// DI
func NewShopHandler(uc *usecase.ShopUsecase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

func (h *ShopHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/shops", h.list)
	e.GET("/shops/:id", h.detail)
}

func (h *ShopHandler) list(c echo.Context) error {
	out, err := h.uc.ListShops(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShopHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetShopDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
