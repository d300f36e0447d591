package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors holds prop validation errors, keyed by prop name.
// JSON output: {"errors": {"prop": ["msg1", "msg2"]}}
type Errors struct {
	Component string              `json:"component,omitempty"`
	Bag       map[string][]string `json:"errors"`
}

func (e *Errors) add(prop, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[prop] = append(e.Bag[prop], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return e != nil && len(e.Bag) > 0 }

// First returns the first error for a prop.
func (e *Errors) First(prop string) string {
	if e == nil {
		return ""
	}
	if msgs, ok := e.Bag[prop]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Props returns the names of the failing props in sorted order.
func (e *Errors) Props() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Bag))
	for p := range e.Bag {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Error implements error so a failing bag can be returned directly.
func (e *Errors) Error() string {
	var b strings.Builder
	for i, p := range e.Props() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(strings.Join(e.Bag[p], "; "))
	}
	return b.String()
}

// ── Validator ────────────────────────────────────────────────────────────────

// Rules maps a prop name to a pipe-separated rule string.
// e.g. Rules{"name": "required|string", "age": "integer|min:0"}
type Rules map[string]string

// Validate checks props against rules for the named component and returns
// the error bag, or nil when every prop passes.
//
//	if errs := validation.Validate("UserInfo", props, rules); errs != nil { ... }
func Validate(component string, props map[string]any, rules Rules) *Errors {
	errs := &Errors{Component: component}

	for prop, ruleStr := range rules {
		value, present := props[prop]
		if present && value == nil {
			present = false
		}

		for _, rule := range strings.Split(ruleStr, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}

			// min:3 → name=min, param=3
			name, param, _ := strings.Cut(rule, ":")

			if name == "required" {
				if !present {
					errs.add(prop, fmt.Sprintf("The prop `%s` is marked as required in `%s`, but its value is missing.", prop, component))
					break
				}
				continue
			}
			// Absent optional props skip the remaining rules.
			if !present {
				break
			}
			if !applyRule(errs, component, prop, value, name, param) {
				break
			}
		}
	}

	if !errs.Has() {
		return nil
	}
	return errs
}

// applyRule returns true if the rule passes.
func applyRule(errs *Errors, component, prop string, value any, rule, param string) bool {
	invalid := func(expected string) bool {
		errs.add(prop, fmt.Sprintf("Invalid prop `%s` of type `%s` supplied to `%s`, expected `%s`.", prop, typeName(value), component, expected))
		return false
	}

	switch rule {
	case "nullable":
		// Presence already checked by the caller.

	case "string":
		if _, ok := value.(string); !ok {
			return invalid("string")
		}

	case "number":
		if _, ok := toFloat(value); !ok {
			return invalid("number")
		}

	case "integer":
		if !isInteger(value) {
			return invalid("integer")
		}

	case "bool":
		if _, ok := value.(bool); !ok {
			return invalid("bool")
		}

	case "func":
		if reflect.TypeOf(value).Kind() != reflect.Func {
			return invalid("func")
		}

	case "min":
		n, _ := strconv.ParseFloat(param, 64)
		if size(value) < n {
			errs.add(prop, fmt.Sprintf("The prop `%s` supplied to `%s` must be at least %s.", prop, component, param))
			return false
		}

	case "max":
		n, _ := strconv.ParseFloat(param, 64)
		if size(value) > n {
			errs.add(prop, fmt.Sprintf("The prop `%s` supplied to `%s` may not be greater than %s.", prop, component, param))
			return false
		}

	case "in":
		s := fmt.Sprint(value)
		for _, a := range strings.Split(param, ",") {
			if strings.TrimSpace(a) == s {
				return true
			}
		}
		errs.add(prop, fmt.Sprintf("Invalid prop `%s` of value `%s` supplied to `%s`, expected one of [%s].", prop, s, component, param))
		return false

	case "regex":
		re, err := regexp.Compile(param)
		if err != nil || !re.MatchString(fmt.Sprint(value)) {
			errs.add(prop, fmt.Sprintf("The prop `%s` supplied to `%s` has an invalid format.", prop, component))
			return false
		}
	}

	return true
}

// Coerce converts string props to the type their rules declare, in place.
// A string under an integer, number or bool rule is parsed; values that do
// not parse stay strings so Validate reports them. Props without a type
// rule, or declared as string, are left alone.
//
//	validation.Coerce(props, Rules{"age": "integer", "name": "string"}) // age "27" → 27, name "007" stays
func Coerce(props map[string]any, rules Rules) {
	for prop, ruleStr := range rules {
		s, ok := props[prop].(string)
		if !ok {
			continue
		}
		for _, rule := range strings.Split(ruleStr, "|") {
			name, _, _ := strings.Cut(strings.TrimSpace(rule), ":")
			if v, ok := parseAs(name, s); ok {
				props[prop] = v
				break
			}
		}
	}
}

func parseAs(rule, s string) (any, bool) {
	switch rule {
	case "integer":
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
	case "number":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	case "bool":
		if b, err := strconv.ParseBool(s); err == nil {
			return b, true
		}
	}
	return nil, false
}

// ── helpers ─────────────────────────────────────────────────────────────────

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isInteger(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// size is the numeric value for numbers and the rune length for strings.
func size(v any) float64 {
	if s, ok := v.(string); ok {
		return float64(utf8.RuneCountInString(s))
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return float64(rv.Len())
	}
	return 0
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
