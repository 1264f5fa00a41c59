package activities

import (
	"context"

	"github.com/temporalio/temporal-restaurant/api"
	"github.com/temporalio/temporal-restaurant/restaurant"
	"go.temporal.io/sdk/activity"
)

func (a *Activities) ProcessOrder(ctx context.Context, input *api.ProcessOrderInput) (*api.StepResult, error) {
	activity.GetLogger(ctx).Info("Processing order", "Details", input.Details)

	err := a.Restaurant.Orders().ProcessOrder(input.Details)
	if err != nil {
		return nil, err
	}

	return &api.StepResult{Line: restaurant.OrderProcessed(input.Details)}, nil
}
