package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	// WithGroup registra um conjunto de rotas compartilhando os mesmos
	// middlewares, aplicados antes dos middlewares específicos de cada rota
	WithGroup = func(group Group) ConfigRouter {
		return func(router *Router) {
			router.AddGroup(group)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares específicos desta rota
}

// Group agrupa rotas sob middlewares comuns (por exemplo, a allowlist de
// referer das rotas do widget ou a autenticação das rotas administrativas)
type Group struct {
	Middlewares []func(http.Handler) http.Handler
	Routes      []Route
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, wrap(route.Handler, route.Middlewares))
	}
}

// AddGroup adiciona as rotas do grupo, encadeando os middlewares do grupo
// por fora dos middlewares de cada rota
func (r Router) AddGroup(group Group) {
	for _, route := range group.Routes {
		handler := wrap(route.Handler, route.Middlewares)
		r.router.Handler(route.Method, route.Path, wrap(handler, group.Middlewares))
	}
}

// wrap aplica os middlewares do último para o primeiro, preservando a ordem
// de declaração na execução
func wrap(handler http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
