// Package http serves element classes over HTTP.
//
//	res := gohttp.NewResponse(w)
//	res.HTML(http.StatusOK, html)
//	res.ValidationError(propErr.Errors)   // 422 {"component": ..., "errors": {...}}
//
//	props := gohttp.PropsFromRequest(r)   // query + route params
//
// Component ties both together: resolve a class, render it with request
// props, answer 200 HTML, 404 for unknown classes, 422 for invalid props and
// 500 otherwise.
package http
