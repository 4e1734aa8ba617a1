package collection

import (
	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/domain"
)

// Collection is a featured collection entry: a display name mapped to the
// creator address whose created assets make up the collection.
type Collection struct {
	Name    string         `json:"name"`
	Creator domain.Address `json:"creator"`
	Icon    string         `json:"icon"`
}

type Usecase interface {
	Featured(c ctx.Ctx) []*Collection
}
