package usecase

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/log"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
	"github.com/algogallery/goapi/domain/metadata"
	"github.com/algogallery/goapi/service/cache/provider"
	"github.com/algogallery/goapi/service/indexer"
)

const (
	arc69Standard = "arc69"
	ipfsScheme    = "ipfs://"

	defaultNoteScanLimit = 20
	defaultCacheTtl      = 5 * time.Minute
	defaultIpfsGateway   = "https://ipfs.io/ipfs"
	defaultPlaceholder   = "/assets/placeholder.png"

	cacheKeyPfx = "arc69:"
)

type MetadataUseCaseCfg struct {
	Indexer       indexer.Client
	Cache         provider.Provider
	CacheTtl      time.Duration
	NoteScanLimit int
	IpfsGateway   string
	Placeholder   string
}

type impl struct {
	indexer       indexer.Client
	cache         provider.Provider
	cacheTtl      time.Duration
	noteScanLimit int
	ipfsGateway   string
	placeholder   string
}

func New(cfg *MetadataUseCaseCfg) metadata.Usecase {
	im := &impl{
		indexer:       cfg.Indexer,
		cache:         cfg.Cache,
		cacheTtl:      cfg.CacheTtl,
		noteScanLimit: cfg.NoteScanLimit,
		ipfsGateway:   cfg.IpfsGateway,
		placeholder:   cfg.Placeholder,
	}
	if im.cacheTtl == 0 {
		im.cacheTtl = defaultCacheTtl
	}
	if im.noteScanLimit == 0 {
		im.noteScanLimit = defaultNoteScanLimit
	}
	if im.ipfsGateway == "" {
		im.ipfsGateway = defaultIpfsGateway
	}
	if im.placeholder == "" {
		im.placeholder = defaultPlaceholder
	}
	return im
}

// arc69Note is the decoded note payload. Properties stays nil when the
// mapping is absent so a bare description note is not mistaken for trait
// metadata.
type arc69Note struct {
	Standard    string                 `json:"standard"`
	Description string                 `json:"description"`
	Properties  map[string]interface{} `json:"properties"`
}

func (im *impl) Resolve(c bCtx.Ctx, id domain.AssetId) *metadata.Resolved {
	key := cacheKeyPfx + id.String()

	if im.cache != nil {
		if b, _, err := im.cache.Get(c, key); err == nil {
			res := &metadata.Resolved{}
			if err := json.Unmarshal(b, res); err == nil {
				return res
			}
		}
	}

	res := im.resolve(c, id)

	if im.cache != nil {
		if b, err := json.Marshal(res); err == nil {
			im.cache.Set(c, key, b, im.cacheTtl)
		}
	}

	return res
}

func (im *impl) resolve(c bCtx.Ctx, id domain.AssetId) *metadata.Resolved {
	txs, err := im.indexer.GetAssetTransactions(c, id, im.noteScanLimit)
	if err != nil {
		// degraded, not an error: the page renders without traits
		c.WithFields(log.Fields{
			"assetId": id,
			"err":     err,
		}).Warn("GetAssetTransactions failed, returning empty metadata")
		return metadata.Empty()
	}

	// newest first, first recognized note wins: latest metadata overwrites
	for _, tx := range txs {
		if tx.Note == "" {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(tx.Note)
		if err != nil {
			continue
		}
		note := &arc69Note{}
		if err := json.Unmarshal(raw, note); err != nil {
			continue
		}
		if note.Standard != arc69Standard || note.Properties == nil {
			continue
		}
		return &metadata.Resolved{
			Traits:      traitsFromProperties(note.Properties),
			Description: note.Description,
		}
	}

	return metadata.Empty()
}

func (im *impl) ResolveImageUrl(rawUrl string) string {
	if rawUrl == "" {
		return im.placeholder
	}
	if strings.HasPrefix(rawUrl, ipfsScheme) {
		return fmt.Sprintf("%s/%s", strings.TrimRight(im.ipfsGateway, "/"), strings.TrimPrefix(rawUrl, ipfsScheme))
	}
	return rawUrl
}

// traitsFromProperties flattens the properties mapping into traits with a
// deterministic order. String values pass through verbatim, anything else
// keeps its JSON encoding.
func traitsFromProperties(props map[string]interface{}) asset.Traits {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	traits := asset.Traits{}
	for _, k := range keys {
		traits = append(traits, asset.Trait{TraitType: k, Value: stringifyTraitValue(props[k])})
	}
	return traits
}

func stringifyTraitValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
