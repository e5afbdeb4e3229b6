package http

import (
	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	actorKey = "actor"
)

// Identity resolves the calling actor from the identity headers set by the gateway. Requests
// without a valid identity never reach a handler.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderUserID))
			if err != nil {
				return errUnauthenticated
			}
			role, err := actor.ParseRole(c.Request().Header.Get(HeaderUserRole))
			if err != nil {
				return errUnauthenticated
			}
			a, err := actor.NewActor(id, role)
			if err != nil {
				return errUnauthenticated
			}

			c.Set(actorKey, a)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) actor.Actor {
	a, _ := c.Get(actorKey).(actor.Actor)
	return a
}
