package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/temporalio/temporal-restaurant/api"
	"github.com/temporalio/temporal-restaurant/workflows"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
)

func TestKitchenWorkflow(t *testing.T) {
	s := testsuite.WorkflowTestSuite{}
	env := s.NewTestWorkflowEnvironment()

	env.RegisterWorkflow(workflows.Kitchen)
	env.RegisterActivity(activities.PrepareMenuItem)

	var prepared []string
	env.OnActivity(activities.PrepareMenuItem, mock.Anything, mock.Anything).Return(func(ctx context.Context, input *api.PrepareMenuItemInput) (*api.StepResult, error) {
		prepared = append(prepared, input.Name)
		return &api.StepResult{Line: input.Type + ":" + input.Name}, nil
	})

	input := &api.KitchenInput{
		Items: []api.PrepareMenuItemInput{
			{Type: "dessert", Name: "Cheesecake", Price: 6.99},
			{Type: "appetizer", Name: "Spring Rolls", Price: 5.99},
		},
	}

	env.ExecuteWorkflow(workflows.Kitchen, input)
	assert.True(t, env.IsWorkflowCompleted())

	var result api.KitchenResult
	err := env.GetWorkflowResult(&result)
	assert.NoError(t, err)

	assert.Equal(t, []string{"Cheesecake", "Spring Rolls"}, prepared)
	assert.Equal(t, []string{"dessert:Cheesecake", "appetizer:Spring Rolls"}, result.Lines)
}

func TestSeatingWorkflow(t *testing.T) {
	s := testsuite.WorkflowTestSuite{}
	env := s.NewTestWorkflowEnvironment()

	env.RegisterWorkflow(workflows.Seating)
	env.RegisterActivity(activities.ReserveTable)

	env.OnActivity(activities.ReserveTable, mock.Anything, mock.Anything).Return(func(ctx context.Context, input *api.ReserveTableInput) (*api.StepResult, error) {
		return &api.StepResult{Line: input.Type}, nil
	})

	input := &api.SeatingInput{
		Tables: []api.ReserveTableInput{
			{Type: "vip", Number: 2},
			{Type: "regular", Number: 1},
			{Type: "outdoor", Number: 3},
		},
	}

	env.ExecuteWorkflow(workflows.Seating, input)
	assert.True(t, env.IsWorkflowCompleted())

	var result api.SeatingResult
	err := env.GetWorkflowResult(&result)
	assert.NoError(t, err)

	assert.Equal(t, []string{"vip", "regular", "outdoor"}, result.Lines)
}

func TestKitchenWorkflowReportsPreparedItemsOnFailure(t *testing.T) {
	s := testsuite.WorkflowTestSuite{}
	env := s.NewTestWorkflowEnvironment()

	env.RegisterWorkflow(workflows.Kitchen)
	env.RegisterActivity(activities.PrepareMenuItem)

	env.OnActivity(activities.PrepareMenuItem, mock.Anything, mock.Anything).Return(func(ctx context.Context, input *api.PrepareMenuItemInput) (*api.StepResult, error) {
		if input.Type == "soup" {
			return nil, temporal.NewNonRetryableApplicationError("invalid menu item type: soup", api.InvalidArgumentErrorType, nil)
		}
		return &api.StepResult{Line: input.Name}, nil
	})

	input := &api.KitchenInput{
		Items: []api.PrepareMenuItemInput{
			{Type: "appetizer", Name: "Spring Rolls"},
			{Type: "soup", Name: "Tomato"},
			{Type: "dessert", Name: "Cheesecake"},
		},
	}

	env.ExecuteWorkflow(workflows.Kitchen, input)
	require.True(t, env.IsWorkflowCompleted())

	err := env.GetWorkflowError()
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, api.InvalidArgumentErrorType, appErr.Type())
	assert.True(t, appErr.NonRetryable())

	var lines []string
	require.NoError(t, appErr.Details(&lines))
	assert.Equal(t, []string{"Spring Rolls"}, lines)
}
