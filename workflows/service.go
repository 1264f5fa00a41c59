package workflows

import (
	"errors"
	"time"

	"github.com/temporalio/temporal-restaurant/activities"
	"github.com/temporalio/temporal-restaurant/api"
	workflowEnums "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const StepStartToCloseTimeout = 10 * time.Second

var stepOptions = workflow.ActivityOptions{
	StartToCloseTimeout: StepStartToCloseTimeout,
}

type ServiceWorkflow struct {
	Progress *api.ServiceProgress
}

func NewServiceWorkflow() *ServiceWorkflow {
	return &ServiceWorkflow{Progress: &api.ServiceProgress{}}
}

func (s *ServiceWorkflow) record(lines ...string) {
	s.Progress.Lines = append(s.Progress.Lines, lines...)
}

func (s *ServiceWorkflow) step(ctx workflow.Context, activity interface{}, input interface{}) error {
	var result api.StepResult
	err := workflow.ExecuteActivity(ctx, activity, input).Get(ctx, &result)
	if err != nil {
		return err
	}
	s.record(result.Line)

	return nil
}

// run awaits every step before starting the next, so lines are reported in
// input order: order, payment, menu items, tables.
func (s *ServiceWorkflow) run(ctx workflow.Context, input *api.ServiceInput) error {
	var a *activities.Activities

	actx := workflow.WithActivityOptions(ctx, stepOptions)

	err := s.step(actx, a.ProcessOrder, &api.ProcessOrderInput{Details: input.Order})
	if err != nil {
		return err
	}

	err = s.step(actx, a.ProcessPayment, &api.ProcessPaymentInput{Amount: input.Payment})
	if err != nil {
		return err
	}

	cctx := workflow.WithChildOptions(ctx, workflow.ChildWorkflowOptions{
		ParentClosePolicy: workflowEnums.PARENT_CLOSE_POLICY_REQUEST_CANCEL,
	})

	var kitchen api.KitchenResult
	err = workflow.ExecuteChildWorkflow(cctx, Kitchen, &api.KitchenInput{Items: input.Items}).Get(ctx, &kitchen)
	if err != nil {
		s.record(completedLines(err)...)
		return err
	}
	s.record(kitchen.Lines...)

	var seating api.SeatingResult
	err = workflow.ExecuteChildWorkflow(cctx, Seating, &api.SeatingInput{Tables: input.Tables}).Get(ctx, &seating)
	if err != nil {
		s.record(completedLines(err)...)
		return err
	}
	s.record(seating.Lines...)

	return nil
}

// partialFailure carries the lines a child reported before err back to the
// parent as error details. The application error type of err is kept.
func partialFailure(err error, lines []string) error {
	msg := err.Error()
	errType := ""

	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		msg = appErr.Error()
		errType = appErr.Type()
	}

	return temporal.NewNonRetryableApplicationError(msg, errType, err, lines)
}

// completedLines returns the lines a failed child reported through
// partialFailure, if any.
func completedLines(err error) []string {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) || !appErr.HasDetails() {
		return nil
	}

	var lines []string
	if appErr.Details(&lines) != nil {
		return nil
	}

	return lines
}

func Service(ctx workflow.Context, input *api.ServiceInput) (*api.ServiceResult, error) {
	wf := NewServiceWorkflow()

	err := workflow.SetQueryHandler(ctx, api.ServiceProgressQueryName, func() (*api.ServiceProgress, error) {
		return wf.Progress, nil
	})
	if err != nil {
		return &api.ServiceResult{}, err
	}

	err = wf.run(ctx, input)
	if err != nil {
		workflow.GetLogger(ctx).Error("Service stopped", "Completed", len(wf.Progress.Lines), "Error", err)
	}

	return &api.ServiceResult{Lines: wf.Progress.Lines}, err
}
