package api

import (
	"github.com/temporalio/temporal-restaurant/restaurant"
)

const TaskQueue = "restaurant"

const ServiceWorkflowName = "Service"
const KitchenWorkflowName = "Kitchen"
const SeatingWorkflowName = "Seating"
const ServiceProgressQueryName = "service-progress"

// InvalidArgumentErrorType is the application error type activities report
// when a factory rejects a type tag.
const InvalidArgumentErrorType = "InvalidArgument"

type ProcessOrderInput struct {
	Details string
}

type ProcessPaymentInput struct {
	Amount float64
}

type PrepareMenuItemInput struct {
	Type  string
	Name  string
	Price float64
}

type ReserveTableInput struct {
	Type   string
	Number int
}

// StepResult is the line one step reported.
type StepResult struct {
	Line string
}

type KitchenInput struct {
	Items []PrepareMenuItemInput
}

type KitchenResult struct {
	Lines []string
}

type SeatingInput struct {
	Tables []ReserveTableInput
}

type SeatingResult struct {
	Lines []string
}

type ServiceInput struct {
	Order   string
	Payment float64
	Items   []PrepareMenuItemInput
	Tables  []ReserveTableInput
}

type ServiceResult struct {
	Lines []string
}

type ServiceProgress struct {
	Lines []string
}

// DefaultServiceInput is the sample run: one order, one payment, the three
// sample menu items and the three sample tables.
func DefaultServiceInput() *ServiceInput {
	input := &ServiceInput{
		Order:   restaurant.SampleOrder,
		Payment: restaurant.SamplePayment,
	}
	for _, m := range restaurant.SampleMenu() {
		input.Items = append(input.Items, PrepareMenuItemInput{Type: m.Type, Name: m.Name, Price: m.Price})
	}
	for _, t := range restaurant.SampleTables() {
		input.Tables = append(input.Tables, ReserveTableInput{Type: t.Type, Number: t.Number})
	}

	return input
}
