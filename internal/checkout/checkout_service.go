package checkout

import (
	"context"
	"fmt"

	"github.com/EvelinaRudin/blooberry-backend/internal/stripe"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// All line items are priced in SEK; multi-currency is out of scope.
const currency = "sek"

type Service interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error)
}

type service struct {
	provider   stripe.Service
	successURL string
	cancelURL  string
	validate   *validator.Validate
	logger     *zap.Logger
}

type Deps struct {
	Provider   stripe.Service
	SuccessURL string
	CancelURL  string
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Provider == nil {
		panic("payment provider cannot be nil")
	}
	if deps.SuccessURL == "" || deps.CancelURL == "" {
		panic("redirect urls cannot be empty")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		provider:   deps.Provider,
		successURL: deps.SuccessURL,
		cancelURL:  deps.CancelURL,
		validate:   validator.New(),
		logger:     deps.Logger.Named("checkout.service"),
	}
}

// CreateSession validates the cart, maps it to line items and asks the
// provider for a hosted checkout page. The provider call is the only
// blocking step; nothing here outlives the request.
func (s *service) CreateSession(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	if len(req.CartItems) == 0 {
		return CheckoutResponse{}, ErrInvalidCartData
	}

	items, err := s.toLineItems(req.CartItems)
	if err != nil {
		s.logger.Warn("cart rejected", zap.Error(err))
		return CheckoutResponse{}, err
	}

	resp, err := s.provider.CreateCheckoutSession(ctx, &stripe.CreateSessionRequest{
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
		Items:      items,
	})
	if err != nil {
		// Full provider detail stays in the server log; the caller only
		// ever sees the generic checkout failure message.
		s.logger.Error("provider session creation failed", zap.Error(err))
		return CheckoutResponse{}, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	s.logger.Info("checkout session created",
		zap.String("session_id", resp.SessionID),
		zap.Int("line_items", len(items)),
	)

	return CheckoutResponse{URL: resp.URL}, nil
}

// toLineItems maps each cart item, in order, onto one provider line item.
// The first invalid item aborts the whole transform so the provider never
// sees a partial cart.
func (s *service) toLineItems(cartItems []CartItem) ([]stripe.LineItem, error) {
	items := make([]stripe.LineItem, 0, len(cartItems))
	for i, item := range cartItems {
		if err := s.validate.Struct(item); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidCartItem, i, err)
		}

		items = append(items, stripe.LineItem{
			Currency:        currency,
			ProductName:     item.Name,
			UnitAmountMinor: toMinorUnits(*item.Price),
			Quantity:        *item.Quantity,
		})
	}
	return items, nil
}

// toMinorUnits converts a major-unit price to minor units (1 SEK = 100 öre),
// rounding halves away from zero so fractional öre are never truncated.
func toMinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
