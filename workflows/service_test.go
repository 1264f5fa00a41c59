package workflows_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	act "github.com/temporalio/temporal-restaurant/activities"
	"github.com/temporalio/temporal-restaurant/api"
	"github.com/temporalio/temporal-restaurant/restaurant"
	"github.com/temporalio/temporal-restaurant/workflows"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/converter"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"
)

var activities *act.Activities

var sampleLines = []string{
	"Order processed: Burger and Fries",
	"Payment processed: $19.99",
	"Preparing appetizer: Spring Rolls",
	"Preparing main course: Grilled Chicken",
	"Preparing dessert: Cheesecake",
	"Reserving Regular Table #1",
	"Reserving VIP Table #2",
	"Reserving Outdoor Table #3",
}

func newServiceEnv(out *bytes.Buffer) *testsuite.TestWorkflowEnvironment {
	s := testsuite.WorkflowTestSuite{}
	env := s.NewTestWorkflowEnvironment()

	env.RegisterWorkflow(workflows.Service)
	env.RegisterWorkflow(workflows.Kitchen)
	env.RegisterWorkflow(workflows.Seating)
	env.RegisterActivity(&act.Activities{Restaurant: restaurant.New(out)})

	return env
}

func TestServiceWorkflow(t *testing.T) {
	var out bytes.Buffer
	env := newServiceEnv(&out)

	env.ExecuteWorkflow(workflows.Service, api.DefaultServiceInput())
	require.True(t, env.IsWorkflowCompleted())

	var result api.ServiceResult
	err := env.GetWorkflowResult(&result)
	require.NoError(t, err)

	assert.Equal(t, sampleLines, result.Lines)
	assert.Equal(t, strings.Join(sampleLines, "\n")+"\n", out.String())

	v, err := env.QueryWorkflow(api.ServiceProgressQueryName)
	require.NoError(t, err)
	var progress api.ServiceProgress
	require.NoError(t, v.Get(&progress))
	assert.Len(t, progress.Lines, 8)
}

func TestServiceWorkflowStepOrder(t *testing.T) {
	var out bytes.Buffer
	env := newServiceEnv(&out)

	var calls []string
	env.SetOnActivityStartedListener(func(info *activity.Info, ctx context.Context, args converter.EncodedValues) {
		calls = append(calls, info.ActivityType.Name)
	})

	env.ExecuteWorkflow(workflows.Service, api.DefaultServiceInput())
	require.NoError(t, env.GetWorkflowError())

	assert.Equal(t, []string{
		"ProcessOrder",
		"ProcessPayment",
		"PrepareMenuItem",
		"PrepareMenuItem",
		"PrepareMenuItem",
		"ReserveTable",
		"ReserveTable",
		"ReserveTable",
	}, calls)
}

func TestServiceWorkflowChildOrders(t *testing.T) {
	var out bytes.Buffer
	env := newServiceEnv(&out)

	env.OnWorkflow(workflows.Kitchen, mock.Anything, mock.Anything).Return(func(ctx workflow.Context, input *api.KitchenInput) (*api.KitchenResult, error) {
		return &api.KitchenResult{Lines: []string{fmt.Sprintf("kitchen:%d", len(input.Items))}}, nil
	})
	env.OnWorkflow(workflows.Seating, mock.Anything, mock.Anything).Return(func(ctx workflow.Context, input *api.SeatingInput) (*api.SeatingResult, error) {
		return &api.SeatingResult{Lines: []string{fmt.Sprintf("seating:%d", len(input.Tables))}}, nil
	})

	env.ExecuteWorkflow(workflows.Service, api.DefaultServiceInput())
	require.True(t, env.IsWorkflowCompleted())

	var result api.ServiceResult
	require.NoError(t, env.GetWorkflowResult(&result))

	assert.Equal(t, []string{
		"Order processed: Burger and Fries",
		"Payment processed: $19.99",
		"kitchen:3",
		"seating:3",
	}, result.Lines)
}

func TestServiceWorkflowInvalidMenuItem(t *testing.T) {
	var out bytes.Buffer
	env := newServiceEnv(&out)

	input := api.DefaultServiceInput()
	input.Items[1].Type = "soup"

	env.ExecuteWorkflow(workflows.Service, input)
	require.True(t, env.IsWorkflowCompleted())

	err := env.GetWorkflowError()
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, api.InvalidArgumentErrorType, appErr.Type())
	assert.Contains(t, appErr.Error(), "invalid menu item type: soup")

	assert.Equal(t, strings.Join(sampleLines[:3], "\n")+"\n", out.String())

	v, err := env.QueryWorkflow(api.ServiceProgressQueryName)
	require.NoError(t, err)
	var progress api.ServiceProgress
	require.NoError(t, v.Get(&progress))
	assert.Equal(t, sampleLines[:3], progress.Lines)
}

func TestServiceWorkflowInvalidTable(t *testing.T) {
	var out bytes.Buffer
	env := newServiceEnv(&out)

	input := api.DefaultServiceInput()
	input.Tables[2].Type = "booth"

	env.ExecuteWorkflow(workflows.Service, input)
	require.True(t, env.IsWorkflowCompleted())

	err := env.GetWorkflowError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid table type: booth")

	v, err := env.QueryWorkflow(api.ServiceProgressQueryName)
	require.NoError(t, err)
	var progress api.ServiceProgress
	require.NoError(t, v.Get(&progress))
	assert.Equal(t, sampleLines[:7], progress.Lines)
	assert.Equal(t, strings.Join(sampleLines[:7], "\n")+"\n", out.String())
}
