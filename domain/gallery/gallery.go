package gallery

import (
	"fmt"

	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
)

type ResultKind string

const (
	ResultSingle ResultKind = "single"
	ResultList   ResultKind = "list"
)

// SearchResultPage is one page of merged records plus pagination state.
// Cursor is nil exactly when no further page exists. Token is the caller's
// correlation token echoed back unchanged.
type SearchResultPage struct {
	Records []*asset.NftRecord `json:"records"`
	Cursor  *string            `json:"cursor"`
	Kind    ResultKind         `json:"kind"`
	Heading string             `json:"heading"`
	Token   string             `json:"token,omitempty"`
}

// HasMore reports whether a further page exists.
func (p *SearchResultPage) HasMore() bool {
	return p.Cursor != nil
}

type Usecase interface {
	Search(c ctx.Ctx, keyword string, cursor *string, token string) (*SearchResultPage, error)
}

type TargetKind string

const (
	TargetAssetId TargetKind = "assetId"
	TargetAddress TargetKind = "address"
)

// SearchTarget is the classified form of a raw search string: either a
// single asset id or an owning-account address. Immutable once created.
type SearchTarget struct {
	Kind    TargetKind
	AssetId domain.AssetId
	Address domain.Address
}

// Heading derives the results heading text for the target.
func (t *SearchTarget) Heading() string {
	if t.Kind == TargetAssetId {
		return fmt.Sprintf("Asset #%s", t.AssetId)
	}
	return fmt.Sprintf("Assets by %s", t.Address.Short(8))
}

// ResultKind maps the target to the page's result-kind label.
func (t *SearchTarget) ResultKind() ResultKind {
	if t.Kind == TargetAssetId {
		return ResultSingle
	}
	return ResultList
}
