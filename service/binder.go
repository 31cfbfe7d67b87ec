package service

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"zonekeeper/interfaces"

	"github.com/spf13/cast"
)

// bindTag overrides the flattened key of a field; "-" excludes the field from binding.
const bindTag = "bind"

var durationType = reflect.TypeOf(time.Duration(0))

// fieldPlan is one bindable attribute of a struct type: where it lives and which key feeds it.
type fieldPlan struct {
	index []int
	name  string
	key   string
}

// plans caches the binding plan per struct type; it is built on first use and never changes afterwards.
var plans sync.Map // reflect.Type -> []fieldPlan

// Bind assigns values from source to the exported fields of target, which must be a non-nil pointer to a struct.
// Every field is looked up under FlatKey(keyPrefix, FlatName(field)). Absent or empty keys leave the field
// as it is. A value that cannot be coerced leaves the field untouched and is reported as a binding_error in the
// returned slice; other fields are still bound. Bind never fails the whole target because of one attribute.
func Bind(target any, keyPrefix string, source interfaces.ConfigSource) []error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return []error{NewBadParameterError(fmt.Sprintf("bind target must be a non-nil struct pointer, got %T", target), nil)}
	}
	if source == nil {
		return []error{NewBadParameterError("bind source is required", nil)}
	}
	elem := rv.Elem()

	var errs []error
	for _, plan := range planFor(elem.Type()) {
		key := FlatKey(keyPrefix, plan.key)
		raw, ok := source.Lookup(key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		if err := assign(elem.FieldByIndex(plan.index), raw); err != nil {
			errs = append(errs, NewBindingError(key, fmt.Errorf("field %s: %w", plan.name, err)))
		}
	}
	return errs
}

func planFor(t reflect.Type) []fieldPlan {
	if cached, ok := plans.Load(t); ok {
		return cached.([]fieldPlan)
	}
	built := buildPlan(t, nil)
	actual, _ := plans.LoadOrStore(t, built)
	return actual.([]fieldPlan)
}

// buildPlan walks exported fields; embedded structs (by value) are flattened into the parent namespace.
func buildPlan(t reflect.Type, parent []int) []fieldPlan {
	var out []fieldPlan
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		index := append(append([]int{}, parent...), i)
		tag := f.Tag.Get(bindTag)
		if tag == "-" {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct && tag == "" {
			out = append(out, buildPlan(f.Type, index)...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		key := tag
		if key == "" {
			key = FlatName(f.Name)
		}
		out = append(out, fieldPlan{index: index, name: f.Name, key: key})
	}
	return out
}

func assign(field reflect.Value, raw string) error {
	raw = strings.TrimSpace(raw)
	if field.Type() == durationType {
		d, err := parseDuration(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		v, err := cast.ToBoolE(raw)
		if err != nil {
			return err
		}
		field.SetBool(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := toDecimalInt64(raw)
		if err != nil {
			return err
		}
		if field.OverflowInt(v) {
			return fmt.Errorf("value %d overflows %s", v, field.Type())
		}
		field.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		digits, err := decimalInteger(raw)
		if err != nil {
			return err
		}
		v, err := cast.ToUint64E(digits)
		if err != nil {
			return err
		}
		if field.OverflowUint(v) {
			return fmt.Errorf("value %d overflows %s", v, field.Type())
		}
		field.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return err
		}
		if field.OverflowFloat(v) {
			return fmt.Errorf("value %v overflows %s", v, field.Type())
		}
		field.SetFloat(v)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		field.Set(reflect.ValueOf(splitList(raw)).Convert(field.Type()))
	default:
		return fmt.Errorf("unsupported attribute type %s", field.Type())
	}
	return nil
}

// parseDuration reads bare integers as milliseconds, everything else as a Go duration ("30s", "1m").
func parseDuration(raw string) (time.Duration, error) {
	if ms, err := toDecimalInt64(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(raw)
}

func toDecimalInt64(raw string) (int64, error) {
	digits, err := decimalInteger(raw)
	if err != nil {
		return 0, err
	}
	return cast.ToInt64E(digits)
}

// decimalInteger normalises an integer literal to plain base 10: an optional sign followed by digits only.
// Leading zeros are dropped ("010" is ten) and 0x, 0o, 0b prefixes or digit separators are rejected,
// so cast never infers a base from the literal.
func decimalInteger(raw string) (string, error) {
	sign, digits := "", raw
	switch {
	case strings.HasPrefix(digits, "-"):
		sign, digits = "-", digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}
	if digits == "" {
		return "", fmt.Errorf("invalid decimal integer %q", raw)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid decimal integer %q", raw)
		}
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0", nil
	}
	return sign + digits, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
