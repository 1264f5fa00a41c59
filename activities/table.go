package activities

import (
	"context"

	"github.com/temporalio/temporal-restaurant/api"
	"github.com/temporalio/temporal-restaurant/restaurant"
	"go.temporal.io/sdk/activity"
)

func (a *Activities) ReserveTable(ctx context.Context, input *api.ReserveTableInput) (*api.StepResult, error) {
	table, err := restaurant.NewTable(input.Type, input.Number)
	if err != nil {
		activity.GetLogger(ctx).Error("Rejected table", "Type", input.Type, "Error", err)
		return nil, applicationError(err)
	}

	err = table.Reserve(a.Restaurant.Output())
	if err != nil {
		return nil, err
	}

	return &api.StepResult{Line: table.Reserving()}, nil
}
