package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/delivery"
	"github.com/algogallery/goapi/domain/gallery"
)

type handler struct {
	gallery gallery.Usecase
}

func New(e *echo.Echo, gallery gallery.Usecase) {
	h := &handler{gallery: gallery}

	g := e.Group("/gallery")

	g.GET("/search", h.search)
}

func (h *handler) search(c echo.Context) error {
	type params struct {
		Keyword string  `query:"keyword"`
		Cursor  *string `query:"cursor"`
		Token   string  `query:"token"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if p.Token == "" {
		p.Token = uuid.NewString()
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.gallery.Search(ctx, p.Keyword, p.Cursor, p.Token); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
