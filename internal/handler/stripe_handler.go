package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// /api/stripe のHTTP。セッション作成とwebhook受信。
type StripeHandler struct {
	checkoutUC *usecase.CheckoutUsecase
	webhookUC  *usecase.WebhookUsecase
	cfg        config.Config
}

// DI
func NewStripeHandler(checkoutUC *usecase.CheckoutUsecase, webhookUC *usecase.WebhookUsecase, cfg config.Config) *StripeHandler {
	return &StripeHandler{checkoutUC: checkoutUC, webhookUC: webhookUC, cfg: cfg}
}

type CreateCheckoutSessionRequest struct {
	OrderID int64 `json:"order_id"`
}

func (h *StripeHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/api/stripe")

	g.POST("/create-checkout-session", h.createCheckoutSession, middleware.AuthToken(cfg, userRepo))

	//webhookは署名で守るのでBearer認証は掛けない
	g.POST("/webhook", h.handleWebhook)
}

func (h *StripeHandler) createCheckoutSession(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CreateCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.checkoutUC.CreateCheckoutSession(c.Request().Context(), userID, usecase.CreateCheckoutSessionInput{
		OrderID: req.OrderID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *StripeHandler) handleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, 1<<16))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
	}

	//署名を検証してからイベントを処理する
	event, err := webhook.ConstructEvent(payload, c.Request().Header.Get("Stripe-Signature"), h.cfg.StripeWebhookSecret)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid signature"})
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid event"})
		}

		paymentIntentID := ""
		if sess.PaymentIntent != nil {
			paymentIntentID = sess.PaymentIntent.ID
		}

		if err := h.webhookUC.HandlePaymentCompleted(c.Request().Context(), sess.ID, paymentIntentID); err != nil {
			return writeError(c, err)
		}
	default:
		//興味のないイベントはそのまま受ける
	}

	return c.NoContent(http.StatusOK)
}
