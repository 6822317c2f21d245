package intake

import (
	"context"
	"fmt"
	"net"

	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"
)

type Stage string

const (
	StageNegotiate Stage = "stage 1"
	StageTransfer  Stage = "stage 2"
)

// TimeoutError is returned when a stage exceeds its deadline.
type TimeoutError struct {
	error
	Stage Stage
}

func NewTimeoutError(stage Stage, err error) TimeoutError {
	return TimeoutError{errors.Wrapf(err, "%s request has timed out", stage), stage}
}

func (err TimeoutError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

type UnexpectedStatusError struct {
	error
	Stage      Stage
	StatusCode int
}

func NewUnexpectedStatusError(stage Stage, statusCode int, body string) UnexpectedStatusError {
	return UnexpectedStatusError{
		errors.Errorf("%s request failed with status %d: %s", stage, statusCode, body),
		stage,
		statusCode,
	}
}

func (err UnexpectedStatusError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

func IsTimeout(err error) bool {
	var timeoutErr TimeoutError
	if errors.As(err, &timeoutErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func wrapRequestError(stage Stage, err error) error {
	if IsTimeout(err) {
		return NewTimeoutError(stage, err)
	}
	return errors.Wrapf(err, "%s request failed", stage)
}
