package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/delivery"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
	"github.com/algogallery/goapi/domain/favorites"
)

type handler struct {
	favorites favorites.Usecase
}

func New(e *echo.Echo, favorites favorites.Usecase) {
	h := &handler{favorites: favorites}

	g := e.Group("/favorites")

	g.GET("", h.list)

	g.GET("/:assetId", h.isFavorite)

	g.POST("/toggle", h.toggle)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type resp struct {
		Records []*asset.NftRecord `json:"records"`
		Count   int                `json:"count"`
	}

	return delivery.MakeJsonResp(c, http.StatusOK, &resp{
		Records: h.favorites.List(ctx),
		Count:   h.favorites.Count(ctx),
	})
}

func (h *handler) isFavorite(c echo.Context) error {
	id, err := domain.ParseAssetId(c.Param("assetId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid asset id")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	type resp struct {
		AssetId    domain.AssetId `json:"assetId"`
		IsFavorite bool           `json:"isFavorite"`
	}

	return delivery.MakeJsonResp(c, http.StatusOK, &resp{
		AssetId:    id,
		IsFavorite: h.favorites.IsFavorite(ctx, id),
	})
}

func (h *handler) toggle(c echo.Context) error {
	p := &asset.NftRecord{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if p.AssetId == 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "missing asset id")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if fav, err := h.favorites.Toggle(ctx, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		type resp struct {
			AssetId    domain.AssetId `json:"assetId"`
			IsFavorite bool           `json:"isFavorite"`
		}
		return delivery.MakeJsonResp(c, http.StatusOK, &resp{AssetId: p.AssetId, IsFavorite: fav})
	}
}
