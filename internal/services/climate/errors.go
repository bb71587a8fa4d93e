package climate

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"climate-api/internal/models"
)

// ErrMalformedDate is returned when a date parameter is not YYYY-MM-DD.
var ErrMalformedDate = errors.New("malformed date")

type ValidationReason string

const (
	ReasonStartOutOfRange ValidationReason = "start_out_of_range"
	ReasonRangeOutOfRange ValidationReason = "range_out_of_range"
	ReasonInvertedRange   ValidationReason = "inverted_range"
)

// ValidationError reports a well-formed request whose dates fall outside the
// dataset or are in the wrong order. Its message is shown to the caller as is.
type ValidationError struct {
	Reason ValidationReason
	Bounds models.DateBounds
	msg    string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func startOutOfRange(b models.DateBounds) *ValidationError {
	return &ValidationError{
		Reason: ReasonStartOutOfRange,
		Bounds: b,
		msg: fmt.Sprintf("Please enter a start date between %s and %s",
			models.FormatDate(b.Earliest), models.FormatDate(b.Latest)),
	}
}

func rangeOutOfRange(b models.DateBounds) *ValidationError {
	return &ValidationError{
		Reason: ReasonRangeOutOfRange,
		Bounds: b,
		msg: fmt.Sprintf("No temperature observations available for requested dates. Please enter dates between %s and %s in YYYY-MM-DD Format",
			models.FormatDate(b.Earliest), models.FormatDate(b.Latest)),
	}
}

func invertedRange(start, end time.Time, b models.DateBounds) *ValidationError {
	return &ValidationError{
		Reason: ReasonInvertedRange,
		Bounds: b,
		msg: fmt.Sprintf("The start date %s is after end date %s. Please revise the start and end dates. Your dates must be between %s and %s in YYYY-MM-DD Format",
			models.FormatDate(start), models.FormatDate(end),
			models.FormatDate(b.Earliest), models.FormatDate(b.Latest)),
	}
}
