package restaurant

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error a factory returns for an
// unrecognized type tag.
var ErrInvalidArgument = errors.New("invalid argument")

type InvalidArgumentError struct {
	Subject string
	Value   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s type: %s", e.Subject, e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
