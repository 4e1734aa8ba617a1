package asset

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/algogallery/goapi/domain"
)

// RawAsset is the asset record as the indexing service returns it.
// Optional fields default to their zero value instead of erroring.
type RawAsset struct {
	Index  domain.AssetId `json:"index"`
	Params Params         `json:"params"`
}

type Params struct {
	Name     string         `json:"name"`
	UnitName string         `json:"unit-name"`
	Url      string         `json:"url"`
	Total    uint64         `json:"total"`
	Decimals uint32         `json:"decimals"`
	Creator  domain.Address `json:"creator"`
}

// DisplayName falls back from name to unit-name to "Asset #<id>".
func (a *RawAsset) DisplayName() string {
	if a.Params.Name != "" {
		return a.Params.Name
	}
	if a.Params.UnitName != "" {
		return a.Params.UnitName
	}
	return fmt.Sprintf("Asset #%s", a.Index)
}

type Trait struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type Traits = []Trait

// NftRecord is the render-ready entity handed to the UI.
type NftRecord struct {
	AssetId     domain.AssetId `json:"assetId"`
	Name        string         `json:"name"`
	UnitName    string         `json:"unitName"`
	Creator     domain.Address `json:"creator"`
	Total       uint64         `json:"total"`
	Decimals    uint32         `json:"decimals"`
	ImageUrl    string         `json:"imageUrl"`
	Description string         `json:"description,omitempty"`
	Traits      Traits         `json:"traits"`
	IsFavorite  bool           `json:"isFavorite"`
}

// DisplaySupply renders the total supply scaled by the asset's decimal
// precision, e.g. total 50 with 2 decimals is "0.5".
func (r *NftRecord) DisplaySupply() string {
	return decimal.New(int64(r.Total), -int32(r.Decimals)).String()
}
