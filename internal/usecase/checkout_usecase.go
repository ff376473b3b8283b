package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 決済セッションの1行分
type CheckoutSessionLine struct {
	Name            string
	UnitAmountCents int64
	Quantity        int64
}

type CheckoutSessionInput struct {
	OrderNumber   string
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Lines         []CheckoutSessionLine
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// 決済プロバイダとの境界。カード情報はここを通らない。
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (CheckoutSession, error)
}

type CheckoutUsecase struct {
	tx      repo.TransactionManager
	gateway PaymentGateway
	feURL   string
}

func NewCheckoutUsecase(tx repo.TransactionManager, gateway PaymentGateway, feURL string) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, gateway: gateway, feURL: feURL}
}

type CreateCheckoutSessionInput struct {
	OrderID int64
}

// PENDINGの注文から決済セッションを作り、リダイレクトURLを返す。
// 税と配送料はそれぞれ独立した行として送る（合計が注文のTotalと一致する）。
func (u *CheckoutUsecase) CreateCheckoutSession(ctx context.Context, userID int64, in CreateCheckoutSessionInput) (CheckoutSession, error) {
	if userID <= 0 {
		return CheckoutSession{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.OrderID <= 0 {
		return CheckoutSession{}, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	var (
		order model.Order
		items []model.OrderItem
	)

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, in.OrderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if o.Status != model.OrderStatusPending {
			return NewHTTPError(http.StatusConflict, "order is not awaiting payment")
		}

		its, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order = o
		items = its
		return nil
	})
	if err != nil {
		return CheckoutSession{}, err
	}

	lines := make([]CheckoutSessionLine, 0, len(items)+2)
	for _, it := range items {
		lines = append(lines, CheckoutSessionLine{
			Name:            it.ProductNameSnapshot + " (" + string(it.Tier) + ")",
			UnitAmountCents: it.UnitPriceSnapshot,
			Quantity:        it.Quantity,
		})
	}
	if order.TaxCents > 0 {
		lines = append(lines, CheckoutSessionLine{
			Name:            "Taxes (GST + QST)",
			UnitAmountCents: order.TaxCents,
			Quantity:        1,
		})
	}
	if order.DeliveryFeeCents > 0 {
		lines = append(lines, CheckoutSessionLine{
			Name:            "Delivery",
			UnitAmountCents: order.DeliveryFeeCents,
			Quantity:        1,
		})
	}

	sess, err := u.gateway.CreateCheckoutSession(ctx, CheckoutSessionInput{
		OrderNumber:   order.OrderNumber,
		Currency:      order.Currency,
		CustomerEmail: order.RecipientEmail,
		SuccessURL:    u.feURL + "/checkout/success?order=" + order.OrderNumber,
		CancelURL:     u.feURL + "/checkout/cancel?order=" + order.OrderNumber,
		Lines:         lines,
	})
	if err != nil {
		return CheckoutSession{}, NewHTTPError(http.StatusBadGateway, "payment provider error")
	}

	//セッションIDを保存してwebhookから引けるようにする
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().SetStripeSessionID(ctx, order.ID, sess.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return CheckoutSession{}, err
	}

	return sess, nil
}
