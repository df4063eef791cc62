package outbox

import "errors"

var (
	ErrInvalidBatchSize = errors.New("invalid outbox batch size")
	ErrPublishFailed    = errors.New("outbox publish failed")
)
