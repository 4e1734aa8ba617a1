package favorites

import (
	"time"

	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
)

// Record is a persisted snapshot of a favorited NftRecord. Seq restores
// insertion order after a JSON round-trip, FavoritedAt is kept for display.
type Record struct {
	asset.NftRecord
	Seq         int64     `json:"seq"`
	FavoritedAt time.Time `json:"favoritedAt"`
}

// Map is the persisted favorites blob, keyed by asset id string. Presence
// of a key is authoritative for "is favorited".
type Map map[string]*Record

type Repo interface {
	// Load reads the persisted blob. An absent or corrupt blob yields an
	// empty map, not an error.
	Load(c ctx.Ctx) (Map, error)
	// Save writes the whole map back synchronously.
	Save(c ctx.Ctx, m Map) error
}

type Usecase interface {
	// Toggle inserts a snapshot of record if absent, removes it if present,
	// persists the map before returning, and reports the new state.
	Toggle(c ctx.Ctx, record *asset.NftRecord) (bool, error)
	IsFavorite(c ctx.Ctx, id domain.AssetId) bool
	// List returns the snapshots in insertion order.
	List(c ctx.Ctx) []*asset.NftRecord
	Count(c ctx.Ctx) int
}
