package usecase

import (
	"errors"
	"fmt"

	"business-directory/pkg/utils"
)

// Client-facing errors. Their messages are written to the response body
// verbatim, so keep them stable.
var (
	ErrMissingAttributes = errors.New("The request body is missing at least one of the required attributes")
	ErrInvalidAttributes = errors.New("The request body contains invalid attribute values")
	ErrBusinessNotFound  = errors.New("No business with this business_id exists")
	ErrReviewNotFound    = errors.New("No review with this review_id exists")
	ErrReviewConflict    = errors.New("You have already submitted a review for this business. You can update your previous review, or delete it and submit a new review")
)

// validationError turns validator output into ErrMissingAttributes when a
// required attribute is absent, and ErrInvalidAttributes otherwise.
func validationError(errs *utils.ValidationErrors) error {
	if errs.HasMissing() {
		return ErrMissingAttributes
	}
	return fmt.Errorf("%w: %s", ErrInvalidAttributes, utils.FormatValidationErrors(errs))
}
