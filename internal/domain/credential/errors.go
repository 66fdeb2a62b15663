package credential

import "errors"

var (
	ErrUnknownTokenKind   = errors.New("unknown token kind")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidPatternKind = errors.New("invalid pattern kind")
	ErrEmptyPattern       = errors.New("pattern has no tokens")
)
