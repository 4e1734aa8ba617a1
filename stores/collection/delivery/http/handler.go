package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/delivery"
	"github.com/algogallery/goapi/domain/collection"
)

type handler struct {
	collection collection.Usecase
}

func New(e *echo.Echo, collection collection.Usecase) {
	h := &handler{collection: collection}

	g := e.Group("/collections")

	g.GET("/featured", h.featured)
}

func (h *handler) featured(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.collection.Featured(ctx))
}
