// Package element models UI component classes and the small runtime that
// renders them.
//
// A Class pairs a Constructor with the static metadata a renderer inspects:
// display name, default props, prop types and context types. Bind partially
// applies constructor arguments while keeping that metadata, so a bound class
// is a drop-in replacement for the original:
//
//	userInfo := element.Bind(UserInfoClass, fetchAction)
//	html, err := element.Render(userInfo, element.Props{"name": "Jar jar binx"}, nil)
//
// Render merges DefaultProps, validates against PropTypes, constructs the
// component and passes it a Scope whose Context is narrowed to ContextTypes.
package element
