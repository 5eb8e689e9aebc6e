package adjustment

import "errors"

var (
	ErrAdjustmentNotFound = errors.New("adjustment not found")
	ErrInvalidKind        = errors.New("invalid adjustment kind")
)
