package http

import (
	"net/http"

	"github.com/km-arc/go-ioc/framework/element"
	"github.com/km-arc/go-ioc/framework/routing"
)

// PropsFromRequest turns query values and chi route params into props.
// Route params win over query values of the same name. Values stay strings;
// element.Render converts them per the class's PropTypes. Multi-valued keys
// become []string.
//
//	GET /components/UserInfo?name=Jar&age=30  →  Props{"name": "Jar", "age": "30"}
func PropsFromRequest(r *http.Request) element.Props {
	query := r.URL.Query()
	props := make(element.Props, len(query))
	for k, vals := range query {
		switch len(vals) {
		case 0:
		case 1:
			props[k] = vals[0]
		default:
			props[k] = append([]string(nil), vals...)
		}
	}
	for k, v := range routing.Params(r) {
		props[k] = v
	}
	return props
}
