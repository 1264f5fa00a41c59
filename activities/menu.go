package activities

import (
	"context"

	"github.com/temporalio/temporal-restaurant/api"
	"github.com/temporalio/temporal-restaurant/restaurant"
	"go.temporal.io/sdk/activity"
)

func (a *Activities) PrepareMenuItem(ctx context.Context, input *api.PrepareMenuItemInput) (*api.StepResult, error) {
	item, err := restaurant.NewMenuItem(input.Type, input.Name, input.Price)
	if err != nil {
		activity.GetLogger(ctx).Error("Rejected menu item", "Type", input.Type, "Error", err)
		return nil, applicationError(err)
	}

	err = item.Prepare(a.Restaurant.Output())
	if err != nil {
		return nil, err
	}

	return &api.StepResult{Line: item.Preparing()}, nil
}
