package contract

import "errors"

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrInvalidPayUnit   = errors.New("invalid pay unit")
)
