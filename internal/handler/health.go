package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home is the liveness endpoint used by load balancers and monitoring
// systems to verify that the service is running.
func Home(c echo.Context) error {
	return c.String(http.StatusOK, "Home Maintenance Tasks API is running")
}
