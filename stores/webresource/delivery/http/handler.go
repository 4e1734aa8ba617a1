package http

import (
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/delivery"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/metadata"
)

type handler struct {
	reader   domain.WebResourceReaderRepository
	metadata metadata.Usecase
}

// New mounts the image passthrough. The browser cannot fetch gateway images
// cross-origin, so the server proxies them and sniffs the real content type.
func New(e *echo.Echo, reader domain.WebResourceReaderRepository, metadata metadata.Usecase) {
	h := &handler{reader: reader, metadata: metadata}

	g := e.Group("/gallery")

	g.GET("/image", h.image)
}

func (h *handler) image(c echo.Context) error {
	type params struct {
		Url string `query:"url"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil || p.Url == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	url := h.metadata.ResolveImageUrl(p.Url)

	body, err := h.reader.Get(ctx, url)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadGateway, "failed to fetch resource")
	}

	mtype := mimetype.Detect(body)
	return c.Blob(http.StatusOK, mtype.String(), body)
}
