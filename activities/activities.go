package activities

import (
	"errors"

	"github.com/temporalio/temporal-restaurant/api"
	"github.com/temporalio/temporal-restaurant/restaurant"
	"go.temporal.io/sdk/temporal"
)

type Activities struct {
	Restaurant *restaurant.Restaurant
}

// applicationError stops retries for rejected type tags, they will never
// succeed on a later attempt.
func applicationError(err error) error {
	if errors.Is(err, restaurant.ErrInvalidArgument) {
		return temporal.NewNonRetryableApplicationError(err.Error(), api.InvalidArgumentErrorType, nil)
	}
	return err
}
