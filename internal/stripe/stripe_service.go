package stripe

import (
	"context"

	stripego "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"go.uber.org/zap"
)

// Service is the payment provider seam: one hosted checkout session per
// call, card-only, one-time payment mode.
type Service interface {
	CreateCheckoutSession(ctx context.Context, req *CreateSessionRequest) (*CreateSessionResponse, error)
}

type service struct {
	api    *client.API
	logger *zap.Logger
}

func NewService(secretKey string, logger ...*zap.Logger) Service {
	l := zap.L().Named("stripe")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stripe")
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &service{
		api:    api,
		logger: l,
	}
}

func (s *service) CreateCheckoutSession(ctx context.Context, req *CreateSessionRequest) (*CreateSessionResponse, error) {
	params := &stripego.CheckoutSessionParams{
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL:         stripego.String(req.SuccessURL),
		CancelURL:          stripego.String(req.CancelURL),
	}
	params.Context = ctx

	lineItems := make([]*stripego.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripego.String(item.Currency),
				UnitAmount: stripego.Int64(item.UnitAmountMinor),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(item.ProductName),
				},
			},
			Quantity: stripego.Int64(item.Quantity),
		})
	}
	params.LineItems = lineItems

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		s.logger.Error("stripe checkout session creation failed", zap.Error(err))
		return nil, err
	}

	return &CreateSessionResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}
