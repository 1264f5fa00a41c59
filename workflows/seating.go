package workflows

import (
	"github.com/temporalio/temporal-restaurant/activities"
	"github.com/temporalio/temporal-restaurant/api"
	"go.temporal.io/sdk/workflow"
)

// Seating reserves the tables in the order given, one after another.
func Seating(ctx workflow.Context, input *api.SeatingInput) (*api.SeatingResult, error) {
	ctx = workflow.WithActivityOptions(ctx, stepOptions)

	var a *activities.Activities
	result := &api.SeatingResult{}

	for i := range input.Tables {
		var step api.StepResult
		err := workflow.ExecuteActivity(ctx, a.ReserveTable, &input.Tables[i]).Get(ctx, &step)
		if err != nil {
			return result, partialFailure(err, result.Lines)
		}
		result.Lines = append(result.Lines, step.Line)
	}

	return result, nil
}
