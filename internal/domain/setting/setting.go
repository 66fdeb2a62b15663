package setting

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fiberops/subcore/internal/shared/biztime"
	"github.com/fiberops/subcore/internal/shared/constants"
)

// ValueType is how a setting value is parsed.
type ValueType string

const (
	ValueTypeString ValueType = "string"
	ValueTypeInt    ValueType = "int"
)

// SequenceKeyPrefix holds the account number seed, e.g. "ATS1000".
const SequenceKeyPrefix = "prefix"

type keySpec struct {
	valueType ValueType
	secret    bool
}

// catalog lists every key an operator may store. Rows outside it are
// rejected at construction.
var catalog = map[string]map[string]keySpec{
	constants.SettingCategoryAAA: {
		AAAKeyScheme:         {valueType: ValueTypeString},
		AAAKeyHost:           {valueType: ValueTypeString},
		AAAKeyPort:           {valueType: ValueTypeInt},
		AAAKeyUsername:       {valueType: ValueTypeString},
		AAAKeyPassword:       {valueType: ValueTypeString, secret: true},
		AAAKeyTimeoutSeconds: {valueType: ValueTypeInt},
		AAAKeyDisconnectMode: {valueType: ValueTypeString},
		AAAKeyRadiusSecret:   {valueType: ValueTypeString, secret: true},
		AAAKeyRadiusNASAddr:  {valueType: ValueTypeString},
	},
	constants.SettingCategoryAccountSequence: {
		SequenceKeyPrefix: {valueType: ValueTypeString},
	},
}

func lookup(category, key string) (keySpec, bool) {
	keys, ok := catalog[category]
	if !ok {
		return keySpec{}, false
	}
	spec, ok := keys[key]
	return spec, ok
}

// IsKnownKey reports whether category.key is in the catalog.
func IsKnownKey(category, key string) bool {
	_, ok := lookup(category, key)
	return ok
}

// IsSecretKey reports whether values of category.key must never be echoed.
func IsSecretKey(category, key string) bool {
	spec, _ := lookup(category, key)
	return spec.secret
}

// MaskValue hides a secret value while still showing whether one is set.
func MaskValue(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 6 {
		return "***"
	}
	return "***...***"
}

// SystemSetting is one operator-managed value from the catalog. AAA endpoint
// fields and the account number seed are stored this way; updatedBy records
// the operator who last wrote it.
type SystemSetting struct {
	id        uint
	category  string
	key       string
	value     string
	valueType ValueType
	updatedBy string
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewSystemSetting creates an empty setting for a catalog key. The value type
// comes from the catalog.
func NewSystemSetting(category, key string) (*SystemSetting, error) {
	spec, ok := lookup(category, key)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownSettingKey, category, key)
	}

	now := biztime.NowUTC()
	return &SystemSetting{
		category:  category,
		key:       key,
		valueType: spec.valueType,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSystemSetting reconstructs a SystemSetting from persistence layer
func ReconstructSystemSetting(
	id uint,
	category string,
	key string,
	value string,
	valueType ValueType,
	updatedBy string,
	version int,
	createdAt, updatedAt time.Time,
) *SystemSetting {
	return &SystemSetting{
		id:        id,
		category:  category,
		key:       key,
		value:     value,
		valueType: valueType,
		updatedBy: updatedBy,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *SystemSetting) ID() uint             { return s.id }
func (s *SystemSetting) Category() string     { return s.category }
func (s *SystemSetting) Key() string          { return s.key }
func (s *SystemSetting) Value() string        { return s.value }
func (s *SystemSetting) ValueType() ValueType { return s.valueType }
func (s *SystemSetting) UpdatedBy() string    { return s.updatedBy }
func (s *SystemSetting) Version() int         { return s.version }
func (s *SystemSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SystemSetting) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the setting ID (only for persistence layer use)
func (s *SystemSetting) SetID(id uint) {
	s.id = id
}

// HasValue reports whether an operator has stored a non-empty value.
// Empty rows fall back to the config file.
func (s *SystemSetting) HasValue() bool {
	return s.value != ""
}

// IsSecret reports whether the value must be masked in responses and logs.
func (s *SystemSetting) IsSecret() bool {
	return IsSecretKey(s.category, s.key)
}

// DisplayValue returns the value as it may be shown to operators.
func (s *SystemSetting) DisplayValue() any {
	if s.IsSecret() {
		return MaskValue(s.value)
	}
	if s.valueType == ValueTypeInt {
		if v, err := s.IntValue(); err == nil {
			return v
		}
	}
	return s.value
}

// IntValue parses an int setting. An empty value reads as 0.
func (s *SystemSetting) IntValue() (int, error) {
	if s.value == "" {
		return 0, nil
	}
	return strconv.Atoi(s.value)
}

// SetStringValue stores a string value.
func (s *SystemSetting) SetStringValue(value, updatedBy string) error {
	if s.valueType != ValueTypeString {
		return fmt.Errorf("%w: %s.%s expects %s", ErrInvalidValueType, s.category, s.key, s.valueType)
	}
	s.touch(value, updatedBy)
	return nil
}

// SetIntValue stores an int value.
func (s *SystemSetting) SetIntValue(value int, updatedBy string) error {
	if s.valueType != ValueTypeInt {
		return fmt.Errorf("%w: %s.%s expects %s", ErrInvalidValueType, s.category, s.key, s.valueType)
	}
	s.touch(strconv.Itoa(value), updatedBy)
	return nil
}

func (s *SystemSetting) touch(value, updatedBy string) {
	s.value = value
	s.updatedBy = updatedBy
	s.version++
	s.updatedAt = biztime.NowUTC()
}
