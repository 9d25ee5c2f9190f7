package pipeline

import "errors"

// Validation failures are sentinel errors so handlers can map them to
// user-facing messages with errors.Is. Each one is terminal for the current
// submission; nothing is persisted when any of them is returned.
var (
	// ErrMissingMessage: the free-text message was empty after trimming.
	// Reported before any external call is made.
	ErrMissingMessage = errors.New("transaction message is required")

	// ErrMissingDate: no transaction date was supplied.
	// Reported before any external call is made.
	ErrMissingDate = errors.New("transaction date is required")

	// ErrMissingStore: reconciliation left the store name empty. Checked
	// before ErrMissingAmount, so when both are empty only this one surfaces.
	ErrMissingStore = errors.New("failed to determine store name, please provide one")

	// ErrMissingAmount: reconciliation left the amount empty.
	ErrMissingAmount = errors.New("failed to determine the amount, please provide one")
)
