package http

import (
	"net/http"

	"vendorflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorID   = "X-Actor-ID"

	actorKey = "actor"
)

// ActorFromHeaders resolves the acting identity from X-Actor-Role and X-Actor-ID.
// Authentication happens upstream; a request without a usable identity is
// answered with 401.
func ActorFromHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := parseActor(c.Request().Header)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid actor identity",
				})
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func parseActor(h http.Header) (kernel.Actor, bool) {
	role, err := kernel.RoleFromString(h.Get(HeaderActorRole))
	if err != nil {
		return kernel.Actor{}, false
	}
	id, err := kernel.UUIDFromString(h.Get(HeaderActorID))
	if err != nil {
		return kernel.Actor{}, false
	}
	actor, err := kernel.NewActor(role, id)
	if err != nil {
		return kernel.Actor{}, false
	}
	return actor, true
}

func actorFrom(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorKey).(kernel.Actor)
	return actor
}
