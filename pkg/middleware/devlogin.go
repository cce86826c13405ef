package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uidCookie = "FARM_UID"

// DevLogin resolves the acting user from a cookie or ?uid= and stores it in
// the request context as "uid". When mint is true a missing identity gets a
// fresh uuid instead of a 401, which is what local development wants.
func DevLogin(mint bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else if mint {
					uid = uuid.NewString()
				} else {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing uid"})
				}
				c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
