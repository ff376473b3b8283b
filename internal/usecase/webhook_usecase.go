package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type WebhookUsecase struct {
	tx repo.TransactionManager
}

func NewWebhookUsecase(tx repo.TransactionManager) *WebhookUsecase {
	return &WebhookUsecase{tx: tx}
}

// HandlePaymentCompleted は決済完了イベントの処理。
// 配信はat-least-onceなので、同じイベントを何度受けても結果は変わらない。
func (u *WebhookUsecase) HandlePaymentCompleted(ctx context.Context, sessionID string, paymentIntentID string) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "missing session id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByStripeSessionID(ctx, sessionID)
		if err == repo.ErrNotFound {
			//知らないセッション。リトライされても無意味なので200で受ける。
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//再配信: すでに確定済みなら何もしない
		if o.Status != model.OrderStatusPending {
			return nil
		}

		if paymentIntentID != "" {
			if err := r.Orders().SetStripePaymentIntentID(ctx, o.ID, paymentIntentID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if !o.Status.CanTransitionTo(model.OrderStatusConfirmed) {
			return NewHTTPError(http.StatusConflict, "illegal status transition")
		}
		if err := r.Orders().UpdateStatus(ctx, o.ID, model.OrderStatusConfirmed); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}
