package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"app/internal/usecase"
)

type StripeGateway struct {
	api *client.API
}

// DI
func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, nil)}
}

// Stripe Checkoutのセッションを作る。カード情報はStripe側で扱う。
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in usecase.CheckoutSessionInput) (usecase.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(in.SuccessURL),
		CancelURL:         stripe.String(in.CancelURL),
		CustomerEmail:     stripe.String(in.CustomerEmail),
		ClientReferenceID: stripe.String(in.OrderNumber),
	}
	params.Context = ctx

	for _, ln := range in.Lines {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(ln.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(in.Currency),
				UnitAmount: stripe.Int64(ln.UnitAmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(ln.Name),
				},
			},
		})
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return usecase.CheckoutSession{}, err
	}

	return usecase.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
