package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return string(StringColumnType)
	case KindInt:
		return string(IntColumnType)
	case KindFloat:
		return string(FloatColumnType)
	case KindBool:
		return string(BoolColumnType)
	default:
		return "invalid"
	}
}

var InvalidValueError = errors.New("invalid cell value")

// Value is a cell value: exactly one of string, int, float or bool.
// The zero Value is invalid and is never stored.
type Value struct {
	kind    Kind
	text    string
	integer int64
	float   float64
	boolean bool
}

func StringValue(text string) Value {
	return Value{kind: KindString, text: text}
}

func IntValue(integer int64) Value {
	return Value{kind: KindInt, integer: integer}
}

func FloatValue(float float64) Value {
	return Value{kind: KindFloat, float: float}
}

func BoolValue(boolean bool) Value {
	return Value{kind: KindBool, boolean: boolean}
}

// ValueOf builds a Value from a decoded JSON primitive. Numbers written without
// fraction or exponent become ints, everything else numeric becomes float.
func ValueOf(raw any) (Value, error) {
	switch typed := raw.(type) {
	case Value:
		return typed, nil
	case string:
		return StringValue(typed), nil
	case bool:
		return BoolValue(typed), nil
	case int:
		return IntValue(int64(typed)), nil
	case int64:
		return IntValue(typed), nil
	case float64:
		return FloatValue(typed), nil
	case json.Number:
		if !strings.ContainsAny(typed.String(), ".eE") {
			if integer, err := typed.Int64(); err == nil {
				return IntValue(integer), nil
			}
		}
		float, err := typed.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", typed, InvalidValueError)
		}
		return FloatValue(float), nil
	case nil:
		return Value{}, fmt.Errorf("null: %w", InvalidValueError)
	}

	return Value{}, fmt.Errorf("%v is type of %T: %w", raw, raw, InvalidValueError)
}

// ValueOfKind decodes a JSON primitive that must be of the given kind.
// An int written as a whole number is accepted for float columns.
func ValueOfKind(kind Kind, raw any) (Value, error) {
	value, err := ValueOf(raw)
	if err != nil {
		return value, err
	}

	if kind == KindFloat && value.kind == KindInt {
		return FloatValue(float64(value.integer)), nil
	}

	if value.kind != kind {
		return Value{}, fmt.Errorf("%v is %s, expected %s: %w", raw, value.kind, kind, InvalidValueError)
	}

	return value, nil
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// Text returns the string payload; ok is false for non-string values.
func (v Value) Text() (text string, ok bool) {
	return v.text, v.kind == KindString
}

func (v Value) Int() (int64, bool) {
	return v.integer, v.kind == KindInt
}

func (v Value) Float() (float64, bool) {
	return v.float, v.kind == KindFloat
}

func (v Value) Bool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.text
	case KindInt:
		return v.integer
	case KindFloat:
		return v.float
	case KindBool:
		return v.boolean
	}

	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.text
	case KindInt:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.boolean)
	}

	return ""
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.text)
	case KindInt:
		return strconv.AppendInt(nil, v.integer, 10), nil
	case KindFloat:
		if math.IsInf(v.float, 0) || math.IsNaN(v.float) {
			return nil, fmt.Errorf("%v: %w", v.float, InvalidValueError)
		}
		return strconv.AppendFloat(nil, v.float, 'f', -1, 64), nil
	case KindBool:
		return strconv.AppendBool(nil, v.boolean), nil
	}

	return []byte("null"), nil
}
