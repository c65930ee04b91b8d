package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/leofalp/medcalc/core/operation"
	"github.com/leofalp/medcalc/internal/utils"
)

// maxExactFloat is the largest magnitude at which every integer is exactly
// representable as a float64.
const maxExactFloat = 1 << 53

var (
	errNull       = errors.New("value is null")
	errNotFinite  = errors.New("value is not finite")
	errFractional = errors.New("value has a fractional part")
	errOverflow   = errors.New("value is out of range")
)

// Coerce converts raw into a Value of the given kind, or returns an error
// describing why the conversion would lose information.
//
// Number accepts Go numeric kinds, json.Number and decimal strings.
// Integer accepts the same sources when they hold an exact whole number.
// Boolean accepts bool and the strings "true" and "false" in any case.
func Coerce(raw any, kind operation.Kind) (operation.Value, error) {
	if raw == nil {
		return operation.Value{}, errNull
	}
	switch kind {
	case operation.Number:
		f, err := toFloat(raw)
		if err != nil {
			return operation.Value{}, err
		}
		return operation.NumberValue(f), nil
	case operation.Integer:
		i, err := toInt(raw)
		if err != nil {
			return operation.Value{}, err
		}
		return operation.IntegerValue(i), nil
	case operation.Boolean:
		b, err := toBool(raw)
		if err != nil {
			return operation.Value{}, err
		}
		return operation.BooleanValue(b), nil
	default:
		return operation.Value{}, fmt.Errorf("unsupported kind %s", kind)
	}
}

// Describe renders a raw value and its Go type for error messages.
func Describe(raw any) string {
	switch v := raw.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(utils.TruncateString(v, 64)) + " (string)"
	case json.Number:
		return v.String() + " (number)"
	default:
		return utils.TruncateString(fmt.Sprintf("%v", v), 64) + fmt.Sprintf(" (%T)", v)
	}
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case json.Number:
		return parseFloat(v.String())
	case string:
		return parseFloat(v)
	case bool:
		return 0, errors.New("boolean is not a number")
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return finite(rv.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i > maxExactFloat || i < -maxExactFloat {
			return 0, errOverflow
		}
		return float64(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > maxExactFloat {
			return 0, errOverflow
		}
		return float64(u), nil
	default:
		return 0, fmt.Errorf("%T is not a number", raw)
	}
}

func toInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case json.Number:
		return parseInt(v.String())
	case string:
		return parseInt(v)
	case bool:
		return 0, errors.New("boolean is not an integer")
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, errOverflow
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return wholeFloat(rv.Float())
	default:
		return 0, fmt.Errorf("%T is not an integer", raw)
	}
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, errors.New(`only "true" or "false" are accepted`)
	default:
		return false, fmt.Errorf("%T is not a boolean", raw)
	}
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	// strconv also reads hexadecimal floats such as "0x1p4".
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, errors.New("not a decimal number")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, errOverflow
		}
		return 0, errors.New("not a decimal number")
	}
	return finite(f)
}

func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	return wholeFloat(f)
}

func finite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

func wholeFloat(f float64) (int64, error) {
	if _, err := finite(f); err != nil {
		return 0, err
	}
	if math.Trunc(f) != f {
		return 0, errFractional
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is itself out of range.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errOverflow
	}
	return int64(f), nil
}
