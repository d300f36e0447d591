package http_test

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-ioc/framework/element"
	gohttp "github.com/km-arc/go-ioc/framework/http"
	"github.com/km-arc/go-ioc/framework/routing"
)

// ── fixtures ──────────────────────────────────────────────────────────────────

type hello struct{}

func (hello) Render(props element.Props, scope *element.Scope) (template.HTML, error) {
	return template.HTML("<p>" + template.HTMLEscapeString(props["name"].(string)) + "</p>"), nil
}

var helloClass = &element.Class{
	Name:      "Hello",
	New:       func(...any) (element.Component, error) { return hello{}, nil },
	PropTypes: element.PropTypes{"name": "required|string"},
}

func static(class *element.Class) gohttp.ClassResolver {
	return func() (*element.Class, error) { return class, nil }
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

// ── PropsFromRequest ──────────────────────────────────────────────────────────

func TestPropsFromRequest_KeepsRawStrings(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?name=007&age=30&admin=true&tag=a&tag=b", nil)
	props := gohttp.PropsFromRequest(req)

	assert.Equal(t, element.Props{
		"name":  "007",
		"age":   "30",
		"admin": "true",
		"tag":   []string{"a", "b"},
	}, props)
}

func TestPropsFromRequest_RouteParamsWin(t *testing.T) {
	r := routing.New(nil)
	var props element.Props
	r.Get("/users/{name}", func(w http.ResponseWriter, req *http.Request) {
		props = gohttp.PropsFromRequest(req)
	})

	serve(r, "/users/Jar?name=Other")
	assert.Equal(t, "Jar", props["name"])
}

// ── Component ─────────────────────────────────────────────────────────────────

func TestComponent_RendersHTML(t *testing.T) {
	rr := serve(gohttp.Component(static(helloClass), nil, nil), "/?name=%3Cb%3E")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "<p>&lt;b&gt;</p>", rr.Body.String())
}

func TestComponent_StringPropsStayStrings(t *testing.T) {
	for _, name := range []string{"007", "true", "0.5"} {
		rr := serve(gohttp.Component(static(helloClass), nil, nil), "/?name="+name)

		assert.Equal(t, http.StatusOK, rr.Code, name)
		assert.Equal(t, "<p>"+name+"</p>", rr.Body.String())
	}
}

type typed struct{}

func (typed) Render(props element.Props, scope *element.Scope) (template.HTML, error) {
	return template.HTML(fmt.Sprintf("%T %T", props["age"], props["admin"])), nil
}

func TestComponent_ConvertsDeclaredTypes(t *testing.T) {
	class := &element.Class{
		Name:      "Typed",
		New:       func(...any) (element.Component, error) { return typed{}, nil },
		PropTypes: element.PropTypes{"age": "integer|min:0", "admin": "bool"},
	}

	rr := serve(gohttp.Component(static(class), nil, nil), "/?age=007&admin=true")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "int bool", rr.Body.String())

	rr = serve(gohttp.Component(static(class), nil, nil), "/?age=old")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestComponent_InvalidPropsAre422(t *testing.T) {
	rr := serve(gohttp.Component(static(helloClass), nil, nil), "/")

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var body struct {
		Component string              `json:"component"`
		Errors    map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Hello", body.Component)
	assert.Contains(t, body.Errors, "name")
}

func TestComponent_UnknownClassIs404(t *testing.T) {
	resolve := func() (*element.Class, error) {
		return nil, errors.Wrap(gohttp.ErrClassNotFound, "Missing")
	}
	rr := serve(gohttp.Component(resolve, nil, nil), "/")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestComponent_RenderFailureIs500(t *testing.T) {
	broken := &element.Class{
		Name: "Broken",
		New:  func(...any) (element.Component, error) { return nil, errors.New("no deps") },
	}
	rr := serve(gohttp.Component(static(broken), nil, nil), "/")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestComponent_PassesRootContext(t *testing.T) {
	themed := &element.Class{
		Name:         "Themed",
		New:          func(...any) (element.Component, error) { return themedComponent{}, nil },
		ContextTypes: element.ContextTypes{"theme": "string"},
	}
	rr := serve(gohttp.Component(static(themed), element.Context{"theme": "dark"}, nil), "/")
	assert.Equal(t, "dark", rr.Body.String())
}

type themedComponent struct{}

func (themedComponent) Render(_ element.Props, s *element.Scope) (template.HTML, error) {
	return template.HTML(s.Context["theme"].(string)), nil
}
