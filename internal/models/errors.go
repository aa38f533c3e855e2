package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive = errors.New("the amount must be positive")

	ErrUserEmailNotUnique = errors.New("a user with this email address already exists")
	ErrCredentialsInvalid = errors.New("the email or password is incorrect")

	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the user")
	ErrCategoryTypeInvalid   = errors.New("the category type must be FIXED or VARIABLE")

	ErrPaymentModeInvalid = errors.New("the payment mode must be one of CASH, CARD, UPI")
	ErrFrequencyInvalid   = errors.New("the frequency must be MONTHLY or YEARLY")
	ErrEndBeforeStart     = errors.New("the end date must not be before the start date")
)
