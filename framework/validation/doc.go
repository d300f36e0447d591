// Package validation checks component props against Laravel-style rule
// strings.
//
// A component class declares its prop types as a Rules map:
//
//	validation.Rules{
//	    "name": "required|string|max:64",
//	    "age":  "integer|min:0",
//	    "size": "in:sm,md,lg",
//	}
//
// # Available Rules
//
//	required        prop must be present and non-nil
//	nullable        no-op marker for optional props
//	string          value is a string
//	number          value is any Go numeric kind
//	integer         value is an integer kind
//	bool            value is a bool
//	func            value is a func
//	min:n           number >= n, or string/slice length >= n
//	max:n           number <= n, or string/slice length <= n
//	in:a,b,c        fmt.Sprint(value) is one of the listed values
//	regex:pattern   fmt.Sprint(value) matches pattern
//
// Rules for a prop stop at the first failure. Absent props that are not
// required skip every other rule.
package validation
