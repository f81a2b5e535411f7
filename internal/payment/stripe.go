package payment

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway captures payments through the Stripe Charges API.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) Charge(amount int64, currency, source string) (Charge, error) {
	params := &stripe.ChargeParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	if err := params.SetSource(source); err != nil {
		return Charge{}, fmt.Errorf("invalid payment source: %w", err)
	}

	ch, err := g.api.Charges.New(params)
	if err != nil {
		return Charge{}, fmt.Errorf("stripe charge failed: %w", err)
	}

	return Charge{ID: ch.ID, Amount: ch.Amount}, nil
}
