package workflows

import (
	"github.com/temporalio/temporal-restaurant/activities"
	"github.com/temporalio/temporal-restaurant/api"
	"go.temporal.io/sdk/workflow"
)

// Kitchen prepares the items in the order given, one after another.
func Kitchen(ctx workflow.Context, input *api.KitchenInput) (*api.KitchenResult, error) {
	ctx = workflow.WithActivityOptions(ctx, stepOptions)

	var a *activities.Activities
	result := &api.KitchenResult{}

	for i := range input.Items {
		var step api.StepResult
		err := workflow.ExecuteActivity(ctx, a.PrepareMenuItem, &input.Items[i]).Get(ctx, &step)
		if err != nil {
			return result, partialFailure(err, result.Lines)
		}
		result.Lines = append(result.Lines, step.Line)
	}

	return result, nil
}
