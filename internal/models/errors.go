package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrValidation        = errors.New("invalid input")
	ErrUnauthenticated   = errors.New("the request is not authenticated")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportFailure     = errors.New("the export could not be generated")
)

// Validation errors. All of them wrap ErrValidation.
var (
	ErrTypeInvalid         = fmt.Errorf("%w: the type must be one of INCOME, EXPENSE", ErrValidation)
	ErrAmountNotPositive   = fmt.Errorf("%w: the amount of a transaction must be positive", ErrValidation)
	ErrAmountScale         = fmt.Errorf("%w: the amount of a transaction must not have more than 2 decimal places", ErrValidation)
	ErrAmountTooLarge      = fmt.Errorf("%w: the amount of a transaction is too large", ErrValidation)
	ErrDateMissing         = fmt.Errorf("%w: the transaction date is mandatory", ErrValidation)
	ErrDateInFuture        = fmt.Errorf("%w: setting future dates for transactions is not allowed", ErrValidation)
	ErrDescriptionTooLong  = fmt.Errorf("%w: the description must not exceed 255 characters", ErrValidation)
	ErrCategoryNameBlank   = fmt.Errorf("%w: the name of a category must not be empty", ErrValidation)
	ErrCategoryNameTooLong = fmt.Errorf("%w: the name of a category must not exceed 50 characters", ErrValidation)
	ErrDateRange           = fmt.Errorf("%w: the start date is after the end date", ErrValidation)
	ErrMonthRange          = fmt.Errorf("%w: the start month is after the end month", ErrValidation)
	ErrMonthMissing        = fmt.Errorf("%w: the month is mandatory, use YYYY-MM format", ErrValidation)
	ErrUsernameInvalid     = fmt.Errorf("%w: the username must not be empty and must not exceed 50 characters", ErrValidation)
	ErrEmailInvalid        = fmt.Errorf("%w: the email address is invalid", ErrValidation)
	ErrEmailInUse          = fmt.Errorf("%w: the email address is already in use", ErrValidation)
	ErrPasswordLength      = fmt.Errorf("%w: the password must be between 8 and 50 characters", ErrValidation)
)
