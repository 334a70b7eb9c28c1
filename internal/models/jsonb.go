package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/fridgechef/backend/internal/types"
)

// JSONBStringArray stores a string slice in a JSONB column.
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	bytes, ok := jsonBytes(value)
	if !ok {
		*a = JSONBStringArray{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// JSONBSubstitutions stores substitution suggestions in a JSONB column.
type JSONBSubstitutions []types.Substitution

// Value implements the driver.Valuer interface
func (s JSONBSubstitutions) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *JSONBSubstitutions) Scan(value interface{}) error {
	bytes, ok := jsonBytes(value)
	if !ok {
		*s = JSONBSubstitutions{}
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// JSONBNutrition stores a nutrition estimate in a JSONB column.
type JSONBNutrition types.Nutrition

// Value implements the driver.Valuer interface
func (n JSONBNutrition) Value() (driver.Value, error) {
	return json.Marshal(n)
}

// Scan implements the sql.Scanner interface
func (n *JSONBNutrition) Scan(value interface{}) error {
	bytes, ok := jsonBytes(value)
	if !ok {
		*n = JSONBNutrition{}
		return nil
	}
	return json.Unmarshal(bytes, n)
}

// JSONBPreferences stores the preference snapshot in a JSONB column.
type JSONBPreferences types.FridgePreferences

// Value implements the driver.Valuer interface
func (p JSONBPreferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *JSONBPreferences) Scan(value interface{}) error {
	bytes, ok := jsonBytes(value)
	if !ok {
		*p = JSONBPreferences{}
		return nil
	}
	return json.Unmarshal(bytes, p)
}

func jsonBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, len(v) > 0
	case string:
		return []byte(v), len(v) > 0
	default:
		return nil, false
	}
}
