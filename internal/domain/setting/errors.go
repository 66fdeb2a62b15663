package setting

import "errors"

var (
	ErrSettingNotFound   = errors.New("setting not found")
	ErrUnknownSettingKey = errors.New("unknown setting key")
	ErrInvalidValueType  = errors.New("setting value type mismatch")
)
