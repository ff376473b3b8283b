package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Start はechoを組み立てて起動する。
func Start(
	addr string,
	cfg config.Config,
	userRepo repository.UserRepository,
	productH *handler.ProductHandler,
	shopH *handler.ShopHandler,
	orderH *handler.OrderHandler,
	stripeH *handler.StripeHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Idempotency-Key"},
	}))

	productH.RegisterRoutes(e)
	shopH.RegisterRoutes(e)
	orderH.RegisterRoutes(e, cfg, userRepo)
	stripeH.RegisterRoutes(e, cfg, userRepo)

	return e.Start(addr)
}
