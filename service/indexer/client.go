package indexer

import (
	"net/http"
	"time"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
)

type GetCreatedAssetsOptions struct {
	Cursor *string
	Limit  *int
}

type GetCreatedAssetsOptionsFunc func(*GetCreatedAssetsOptions) error

func ParseGetCreatedAssetsOptions(opts ...GetCreatedAssetsOptionsFunc) (GetCreatedAssetsOptions, error) {
	opt := GetCreatedAssetsOptions{}
	for _, f := range opts {
		err := f(&opt)
		if err != nil {
			return opt, err
		}
	}
	return opt, nil
}

func WithCursor(c string) GetCreatedAssetsOptionsFunc {
	return func(opt *GetCreatedAssetsOptions) error {
		opt.Cursor = &c
		return nil
	}
}

func WithLimit(n int) GetCreatedAssetsOptionsFunc {
	return func(opt *GetCreatedAssetsOptions) error {
		opt.Limit = &n
		return nil
	}
}

// Client is a read-only view of the ledger indexing service.
type Client interface {
	GetAsset(ctx bCtx.Ctx, id domain.AssetId) (*asset.RawAsset, error)
	GetCreatedAssets(ctx bCtx.Ctx, address domain.Address, opts ...GetCreatedAssetsOptionsFunc) (*CreatedAssetsResp, error)
	// GetAssetTransactions returns up to limit transactions referencing the
	// asset, newest first.
	GetAssetTransactions(ctx bCtx.Ctx, id domain.AssetId, limit int) ([]Transaction, error)
}

type ClientCfg struct {
	HttpClient http.Client
	BaseUrl    string
	Timeout    time.Duration
}

type AssetResp struct {
	Asset asset.RawAsset `json:"asset"`
}

type CreatedAssetsResp struct {
	Assets    []*asset.RawAsset `json:"assets"`
	NextToken string            `json:"next-token"`
}

type Transaction struct {
	Id        string `json:"id"`
	Note      string `json:"note"`
	RoundTime int64  `json:"round-time"`
}

type TransactionsResp struct {
	Transactions []Transaction `json:"transactions"`
}
