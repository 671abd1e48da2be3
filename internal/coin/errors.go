package coin

import "errors"

var (
	// ErrNoBackend means no quantum backend was supplied.
	ErrNoBackend = errors.New("no quantum backend configured")

	// ErrInvalidCoinCount means the requested coin count is below the minimum.
	ErrInvalidCoinCount = errors.New("coin count below supported minimum")

	// ErrCounterfeitOutOfRange means the hidden counterfeit index is not a
	// valid coin position.
	ErrCounterfeitOutOfRange = errors.New("counterfeit index outside coin range")

	// ErrRegisterBudget means the coin count plus ancilla does not fit the
	// backend's qubit budget.
	ErrRegisterBudget = errors.New("coin count exceeds backend qubit budget")

	// ErrPreparationFailed signals that a shot collapsed into the odd-parity
	// sector. It is recoverable: the shot is discarded and retried.
	ErrPreparationFailed = errors.New("parity preparation collapsed into the odd sector")

	// ErrPreparationNotConverged is returned when a trial exhausts its
	// preparation retry bound.
	ErrPreparationNotConverged = errors.New("parity preparation did not converge")

	// ErrUnexpectedOutcome means a successful shot decoded to neither an
	// indicator pattern nor its complement.
	ErrUnexpectedOutcome = errors.New("readout is neither an indicator pattern nor its complement")
)
