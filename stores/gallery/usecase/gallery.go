package usecase

import (
	"github.com/viney-shih/goroutines"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/log"
	"github.com/algogallery/goapi/base/ptr"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
	"github.com/algogallery/goapi/domain/favorites"
	"github.com/algogallery/goapi/domain/gallery"
	"github.com/algogallery/goapi/domain/metadata"
	"github.com/algogallery/goapi/service/indexer"
)

const (
	defaultPageSize    = 12
	defaultConcurrency = 10
)

type GalleryUseCaseCfg struct {
	Indexer     indexer.Client
	Metadata    metadata.Usecase
	Favorites   favorites.Usecase
	PageSize    int
	Concurrency int
}

type impl struct {
	indexer     indexer.Client
	metadata    metadata.Usecase
	favorites   favorites.Usecase
	pageSize    int
	concurrency int
}

func New(cfg *GalleryUseCaseCfg) gallery.Usecase {
	im := &impl{
		indexer:     cfg.Indexer,
		metadata:    cfg.Metadata,
		favorites:   cfg.Favorites,
		pageSize:    cfg.PageSize,
		concurrency: cfg.Concurrency,
	}
	if im.pageSize == 0 {
		im.pageSize = defaultPageSize
	}
	if im.concurrency == 0 {
		im.concurrency = defaultConcurrency
	}
	return im
}

func (im *impl) Search(c bCtx.Ctx, keyword string, cursor *string, token string) (*gallery.SearchResultPage, error) {
	target, err := gallery.Classify(keyword)
	if err != nil {
		return nil, err
	}

	raws, next, err := im.fetchPage(c, target, cursor)
	if err != nil {
		c.WithFields(log.Fields{
			"keyword": keyword,
			"err":     err,
		}).Error("failed to fetch page")
		return nil, err
	}

	return &gallery.SearchResultPage{
		Records: im.mergeRecords(c, raws),
		Cursor:  next,
		Kind:    target.ResultKind(),
		Heading: target.Heading(),
		Token:   token,
	}, nil
}

// fetchPage resolves the target against the indexer. A single-asset target
// never paginates, an address target pages through created assets.
func (im *impl) fetchPage(c bCtx.Ctx, target *gallery.SearchTarget, cursor *string) ([]*asset.RawAsset, *string, error) {
	if target.Kind == gallery.TargetAssetId {
		raw, err := im.indexer.GetAsset(c, target.AssetId)
		if err != nil {
			if fe, ok := domain.AsFetchError(err); ok && fe.Status == 404 {
				return nil, nil, domain.ErrNotFound
			}
			return nil, nil, err
		}
		return []*asset.RawAsset{raw}, nil, nil
	}

	opts := []indexer.GetCreatedAssetsOptionsFunc{indexer.WithLimit(im.pageSize)}
	if cursor != nil && *cursor != "" {
		opts = append(opts, indexer.WithCursor(*cursor))
	}
	resp, err := im.indexer.GetCreatedAssets(c, target.Address, opts...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if resp.NextToken != "" {
		next = ptr.String(resp.NextToken)
	}
	return resp.Assets, next, nil
}

// mergeRecords resolves metadata for every asset concurrently while keeping
// the indexer's ordering.
func (im *impl) mergeRecords(c bCtx.Ctx, raws []*asset.RawAsset) []*asset.NftRecord {
	records := make([]*asset.NftRecord, len(raws))
	if len(raws) == 0 {
		return records
	}

	b := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(raws)))
	defer b.Close()
	for i := 0; i < len(raws); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			records[idx] = im.toRecord(c, raws[idx])
			return nil, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("merge record error result")
		}
	}
	return records
}

func (im *impl) toRecord(c bCtx.Ctx, raw *asset.RawAsset) *asset.NftRecord {
	res := im.metadata.Resolve(c, raw.Index)
	return &asset.NftRecord{
		AssetId:     raw.Index,
		Name:        raw.DisplayName(),
		UnitName:    raw.Params.UnitName,
		Creator:     raw.Params.Creator,
		Total:       raw.Params.Total,
		Decimals:    raw.Params.Decimals,
		ImageUrl:    im.metadata.ResolveImageUrl(raw.Params.Url),
		Description: res.Description,
		Traits:      res.Traits,
		IsFavorite:  im.favorites.IsFavorite(c, raw.Index),
	}
}
