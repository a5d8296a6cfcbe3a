package domain

import "errors"

var (
	// ErrAccountNotFound is returned when no account exists for the requested id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCustomerNotFound is returned when a customer has no accounts in the
	// store. The store cannot tell an unknown customer apart from a customer
	// with zero accounts, so both surface as this error.
	ErrCustomerNotFound = errors.New("customer not found or has no accounts")
)
