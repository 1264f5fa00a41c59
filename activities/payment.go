package activities

import (
	"context"

	"github.com/temporalio/temporal-restaurant/api"
	"github.com/temporalio/temporal-restaurant/restaurant"
	"go.temporal.io/sdk/activity"
)

func (a *Activities) ProcessPayment(ctx context.Context, input *api.ProcessPaymentInput) (*api.StepResult, error) {
	activity.GetLogger(ctx).Info("Processing payment", "Amount", input.Amount)

	err := a.Restaurant.Payments().ProcessPayment(input.Amount)
	if err != nil {
		return nil, err
	}

	return &api.StepResult{Line: restaurant.PaymentProcessed(input.Amount)}, nil
}
