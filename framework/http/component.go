package http

import (
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/km-arc/go-ioc/framework/element"
)

// ClassResolver returns the class to render for one request. The kernel
// resolves it from the container on every call so factories stay fresh.
type ClassResolver func() (*element.Class, error)

// ErrClassNotFound makes the component handler answer 404.
var ErrClassNotFound = errors.New("component class not found")

// Component serves a rendered element class. Request props come from
// PropsFromRequest; ctx is passed as the root context.
//
//	r.Get("/", gohttp.Component(resolve, nil, log).ServeHTTP)
func Component(resolve ClassResolver, ctx element.Context, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := NewResponse(w)

		class, err := resolve()
		if err != nil {
			if errors.Is(err, ErrClassNotFound) {
				res.NotFound(err.Error())
				return
			}
			log.Error("resolve component", zap.Error(err))
			res.ServerError()
			return
		}

		html, err := element.Render(class, PropsFromRequest(r), ctx)
		if err != nil {
			var propErr *element.PropError
			if errors.As(err, &propErr) {
				res.ValidationError(propErr.Errors)
				return
			}
			log.Error("render component", zap.String("component", class.DisplayName()), zap.Error(err))
			res.ServerError()
			return
		}

		res.HTML(http.StatusOK, html)
	})
}
