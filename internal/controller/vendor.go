package controller

import (
	"net/http"

	"prequal-reporting-api/internal/service"

	"github.com/labstack/echo"
)

type vendorRoutesHandler struct {
	vendorService service.Vendor
}

func newVendorRoutesHandler(outer *echo.Group, services *service.Services) *vendorRoutesHandler {
	h := &vendorRoutesHandler{services.Vendor}
	outer.GET("/vendors/stats", h.GetStats)

	return h
}

// /vendors/stats
func (h *vendorRoutesHandler) GetStats(c echo.Context) error {
	if e := c.JSON(http.StatusOK, h.vendorService.GetVendorStatFields()); e != nil {
		return e
	}

	return nil
}
