package usecase

import (
	"sort"
	"sync"
	"time"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/log"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
	"github.com/algogallery/goapi/domain/favorites"
)

type FavoritesUseCaseCfg struct {
	Repo favorites.Repo
}

type impl struct {
	repo favorites.Repo

	mu      sync.Mutex
	records favorites.Map
	nextSeq int64
}

// New loads the persisted favorites once and serves all reads from memory.
// Every mutation is persisted before it is acknowledged.
func New(c bCtx.Ctx, cfg *FavoritesUseCaseCfg) (favorites.Usecase, error) {
	m, err := cfg.Repo.Load(c)
	if err != nil {
		return nil, err
	}

	var maxSeq int64
	for _, rec := range m {
		if rec.Seq > maxSeq {
			maxSeq = rec.Seq
		}
	}

	return &impl{
		repo:    cfg.Repo,
		records: m,
		nextSeq: maxSeq + 1,
	}, nil
}

func (im *impl) Toggle(c bCtx.Ctx, record *asset.NftRecord) (bool, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	key := record.AssetId.String()
	prev, existed := im.records[key]

	if existed {
		delete(im.records, key)
	} else {
		snapshot := *record
		snapshot.IsFavorite = true
		im.records[key] = &favorites.Record{
			NftRecord:   snapshot,
			Seq:         im.nextSeq,
			FavoritedAt: time.Now().UTC(),
		}
		im.nextSeq++
	}

	if err := im.repo.Save(c, im.records); err != nil {
		// roll back so memory never diverges from disk
		if existed {
			im.records[key] = prev
		} else {
			delete(im.records, key)
			im.nextSeq--
		}
		c.WithFields(log.Fields{
			"assetId": record.AssetId,
			"err":     err,
		}).Error("failed to persist favorites")
		return existed, err
	}

	return !existed, nil
}

func (im *impl) IsFavorite(c bCtx.Ctx, id domain.AssetId) bool {
	im.mu.Lock()
	defer im.mu.Unlock()
	_, ok := im.records[id.String()]
	return ok
}

func (im *impl) List(c bCtx.Ctx) []*asset.NftRecord {
	im.mu.Lock()
	defer im.mu.Unlock()

	recs := make([]*favorites.Record, 0, len(im.records))
	for _, rec := range im.records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Seq < recs[j].Seq })

	out := make([]*asset.NftRecord, 0, len(recs))
	for _, rec := range recs {
		snapshot := rec.NftRecord
		out = append(out, &snapshot)
	}
	return out
}

func (im *impl) Count(c bCtx.Ctx) int {
	im.mu.Lock()
	defer im.mu.Unlock()
	return len(im.records)
}
