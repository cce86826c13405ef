package controller

import "github.com/labstack/echo/v4"

// AuthController issues and reports the dev identity cookie. There is no
// real account system; a uid is minted (or supplied) and everything else is
// scoped by it.
type AuthController interface {
	DevLogin(c echo.Context) error
	WhoAmI(c echo.Context) error
}
