package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-ioc/framework/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func pass(t *testing.T, label string, props map[string]any, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		errs := validation.Validate("Test", props, rules)
		assert.Nil(t, errs, "expected PASS")
	})
}

func fail(t *testing.T, label, prop string, props map[string]any, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		errs := validation.Validate("Test", props, rules)
		require.NotNil(t, errs, "expected FAIL on prop %q", prop)
		assert.NotEmpty(t, errs.First(prop))
	})
}

// ── required ─────────────────────────────────────────────────────────────────

func TestValidation_Required(t *testing.T) {
	r := validation.Rules{"name": "required"}

	pass(t, "present", map[string]any{"name": "Jar jar"}, r)
	pass(t, "empty string still present", map[string]any{"name": ""}, r)
	fail(t, "missing key", "name", map[string]any{}, r)
	fail(t, "nil value", "name", map[string]any{"name": nil}, r)
}

func TestValidation_Required_MessageFormat(t *testing.T) {
	errs := validation.Validate("UserInfo", map[string]any{}, validation.Rules{"name": "required|string"})
	require.NotNil(t, errs)
	assert.Equal(t, "The prop `name` is marked as required in `UserInfo`, but its value is missing.", errs.First("name"))
	assert.Equal(t, "UserInfo", errs.Component)
}

func TestValidation_OptionalAbsentSkipsTypeRules(t *testing.T) {
	pass(t, "absent integer", map[string]any{}, validation.Rules{"age": "integer|min:18"})
}

// ── types ────────────────────────────────────────────────────────────────────

func TestValidation_Types(t *testing.T) {
	pass(t, "string", map[string]any{"v": "x"}, validation.Rules{"v": "string"})
	fail(t, "string given int", "v", map[string]any{"v": 1}, validation.Rules{"v": "string"})

	pass(t, "number int", map[string]any{"v": 3}, validation.Rules{"v": "number"})
	pass(t, "number float", map[string]any{"v": 3.5}, validation.Rules{"v": "number"})
	fail(t, "number given string", "v", map[string]any{"v": "3"}, validation.Rules{"v": "number"})

	pass(t, "integer", map[string]any{"v": int64(7)}, validation.Rules{"v": "integer"})
	fail(t, "integer given float", "v", map[string]any{"v": 7.1}, validation.Rules{"v": "integer"})

	pass(t, "bool", map[string]any{"v": true}, validation.Rules{"v": "bool"})
	fail(t, "bool given string", "v", map[string]any{"v": "true"}, validation.Rules{"v": "bool"})

	pass(t, "func", map[string]any{"v": func() {}}, validation.Rules{"v": "func"})
	fail(t, "func given int", "v", map[string]any{"v": 1}, validation.Rules{"v": "func"})
}

func TestValidation_TypeMessageFormat(t *testing.T) {
	errs := validation.Validate("UserInfo", map[string]any{"age": "old"}, validation.Rules{"age": "integer"})
	require.NotNil(t, errs)
	assert.Equal(t, "Invalid prop `age` of type `string` supplied to `UserInfo`, expected `integer`.", errs.First("age"))
}

// ── size / membership ────────────────────────────────────────────────────────

func TestValidation_MinMax(t *testing.T) {
	r := validation.Rules{"age": "integer|min:18|max:99"}
	pass(t, "in range", map[string]any{"age": 22}, r)
	fail(t, "below", "age", map[string]any{"age": 3}, r)
	fail(t, "above", "age", map[string]any{"age": 120}, r)

	s := validation.Rules{"name": "string|min:2|max:4"}
	pass(t, "runes in range", map[string]any{"name": "héé"}, s)
	fail(t, "too short", "name", map[string]any{"name": "a"}, s)
	fail(t, "too long", "name", map[string]any{"name": "abcde"}, s)
}

func TestValidation_In(t *testing.T) {
	r := validation.Rules{"size": "in:sm, md, lg"}
	pass(t, "listed", map[string]any{"size": "md"}, r)
	fail(t, "not listed", "size", map[string]any{"size": "xl"}, r)
}

func TestValidation_Regex(t *testing.T) {
	r := validation.Rules{"slug": "regex:^[a-z-]+$"}
	pass(t, "matches", map[string]any{"slug": "jar-jar"}, r)
	fail(t, "no match", "slug", map[string]any{"slug": "Jar Jar"}, r)
}

func TestValidation_StopsOnFirstFailure(t *testing.T) {
	errs := validation.Validate("Test", map[string]any{"age": "x"}, validation.Rules{"age": "integer|min:18"})
	require.NotNil(t, errs)
	assert.Len(t, errs.Bag["age"], 1)
}

func TestErrors_ErrorJoinsSortedProps(t *testing.T) {
	errs := validation.Validate("Test", map[string]any{}, validation.Rules{"b": "required", "a": "required"})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"a", "b"}, errs.Props())
	assert.Contains(t, errs.Error(), "`a`")
	assert.Contains(t, errs.Error(), "`b`")
}

func TestCoerce(t *testing.T) {
	props := map[string]any{
		"name":  "007",
		"age":   "27",
		"ratio": "0.5",
		"admin": "true",
		"bad":   "old",
		"free":  "42",
		"count": 3,
	}
	validation.Coerce(props, validation.Rules{
		"name":  "required|string",
		"age":   "integer|min:0",
		"ratio": "nullable|number",
		"admin": "bool",
		"bad":   "integer",
		"count": "integer",
	})

	assert.Equal(t, map[string]any{
		"name":  "007",
		"age":   27,
		"ratio": 0.5,
		"admin": true,
		"bad":   "old",
		"free":  "42",
		"count": 3,
	}, props)
}
