package metadata

import (
	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
)

// Resolved is the trait metadata recovered from an asset's newest
// recognized transaction note. An empty value is a normal outcome, not an
// error.
type Resolved struct {
	Traits      asset.Traits `json:"traits"`
	Description string       `json:"description,omitempty"`
}

func Empty() *Resolved {
	return &Resolved{Traits: asset.Traits{}}
}

type Usecase interface {
	// Resolve never fails: any internal error degrades to Empty().
	Resolve(c ctx.Ctx, id domain.AssetId) *Resolved
	// ResolveImageUrl normalizes gateway-style URLs and falls back to the
	// placeholder identifier when the asset carries no URL.
	ResolveImageUrl(rawUrl string) string
}
