package rest

import "github.com/gin-gonic/gin"

type HttpMethod int

const (
	GET HttpMethod = iota
	POST
	PUT
	PATCH
	DELETE
)

type Route struct {
	Method   HttpMethod
	Path     string
	Handlers []gin.HandlerFunc
	Group    string
}

// NewRoute accepts a handler chain so routes can carry their own
// middleware, for example an account guard on mutating endpoints that
// share a group with public reads.
func NewRoute(method HttpMethod, group, path string, handlers ...gin.HandlerFunc) Route {
	return Route{
		Method:   method,
		Path:     path,
		Group:    group,
		Handlers: handlers,
	}
}
