package coverage

import "errors"

var (
	// ErrNilScores is returned when a nil matrix or nil *Scores is supplied.
	ErrNilScores = errors.New("coverage: nil score matrix")

	// ErrInvalidScoreValue indicates a NaN, ±Inf or negative affinity, or a
	// non-finite aggregate (e.g. overflow while summing gains).
	ErrInvalidScoreValue = errors.New("coverage: invalid score value")

	// ErrProductOutOfRange indicates a product id outside [0, Products()).
	ErrProductOutOfRange = errors.New("coverage: product id out of range")

	// ErrCustomerOutOfRange indicates a customer id outside [0, Customers()).
	ErrCustomerOutOfRange = errors.New("coverage: customer id out of range")

	// ErrDuplicateCustomer indicates the same customer id listed twice.
	ErrDuplicateCustomer = errors.New("coverage: duplicate customer id")
)
