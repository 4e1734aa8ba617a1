package usecase

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
	"github.com/algogallery/goapi/service/cache/provider/primitive"
	"github.com/algogallery/goapi/service/indexer"
	indexerMocks "github.com/algogallery/goapi/service/indexer/mocks"
)

func encodeNote(t *testing.T, raw string) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func TestResolve(t *testing.T) {
	c := bCtx.Background()
	id := domain.AssetId(12345)

	client := &indexerMocks.Client{}
	client.On("GetAssetTransactions", mock.Anything, id, mock.Anything).Return([]indexer.Transaction{
		// newest first, as the indexer returns them
		{Id: "tx3", Note: encodeNote(t, `{"standard":"arc69","description":"third","properties":{"Background":"Blue","Rarity":"Epic"}}`)},
		{Id: "tx2", Note: encodeNote(t, `{"standard":"arc69","properties":{"Background":"Red"}}`)},
		{Id: "tx1", Note: ""},
	}, nil)

	uc := New(&MetadataUseCaseCfg{Indexer: client})
	res := uc.Resolve(c, id)

	require.Equal(t, "third", res.Description)
	require.Equal(t, asset.Traits{
		{TraitType: "Background", Value: "Blue"},
		{TraitType: "Rarity", Value: "Epic"},
	}, res.Traits)
}

func TestResolveSkipsUnrecognizedNotes(t *testing.T) {
	c := bCtx.Background()
	id := domain.AssetId(777)

	client := &indexerMocks.Client{}
	client.On("GetAssetTransactions", mock.Anything, id, mock.Anything).Return([]indexer.Transaction{
		{Id: "tx5", Note: "%%%not-base64%%%"},
		{Id: "tx4", Note: encodeNote(t, `plain text note`)},
		{Id: "tx3", Note: encodeNote(t, `{"standard":"arc3","properties":{"x":"y"}}`)},
		{Id: "tx2", Note: encodeNote(t, `{"standard":"arc69","description":"no properties"}`)},
		{Id: "tx1", Note: encodeNote(t, `{"standard":"arc69","properties":{"Trait":"Found"}}`)},
	}, nil)

	uc := New(&MetadataUseCaseCfg{Indexer: client})
	res := uc.Resolve(c, id)

	require.Equal(t, asset.Traits{{TraitType: "Trait", Value: "Found"}}, res.Traits)
}

func TestResolveNoMatchingNote(t *testing.T) {
	c := bCtx.Background()
	id := domain.AssetId(42)

	client := &indexerMocks.Client{}
	client.On("GetAssetTransactions", mock.Anything, id, mock.Anything).Return([]indexer.Transaction{
		{Id: "tx1", Note: encodeNote(t, `{"standard":"arc3"}`)},
	}, nil)

	uc := New(&MetadataUseCaseCfg{Indexer: client})
	res := uc.Resolve(c, id)

	require.Empty(t, res.Traits)
	require.Empty(t, res.Description)
}

func TestResolveIndexerErrorDegrades(t *testing.T) {
	c := bCtx.Background()
	id := domain.AssetId(99)

	client := &indexerMocks.Client{}
	client.On("GetAssetTransactions", mock.Anything, id, mock.Anything).Return(nil, xerrors.New("boom"))

	uc := New(&MetadataUseCaseCfg{Indexer: client})
	res := uc.Resolve(c, id)

	require.NotNil(t, res)
	require.Empty(t, res.Traits)
}

func TestResolveNonStringTraitValues(t *testing.T) {
	c := bCtx.Background()
	id := domain.AssetId(8)

	client := &indexerMocks.Client{}
	client.On("GetAssetTransactions", mock.Anything, id, mock.Anything).Return([]indexer.Transaction{
		{Id: "tx1", Note: encodeNote(t, `{"standard":"arc69","properties":{"Level":3,"Shiny":true}}`)},
	}, nil)

	uc := New(&MetadataUseCaseCfg{Indexer: client})
	res := uc.Resolve(c, id)

	require.Equal(t, asset.Traits{
		{TraitType: "Level", Value: "3"},
		{TraitType: "Shiny", Value: "true"},
	}, res.Traits)
}

func TestResolveUsesCache(t *testing.T) {
	c := bCtx.Background()
	id := domain.AssetId(555)

	client := &indexerMocks.Client{}
	client.On("GetAssetTransactions", mock.Anything, id, mock.Anything).Return([]indexer.Transaction{
		{Id: "tx1", Note: encodeNote(t, `{"standard":"arc69","properties":{"A":"B"}}`)},
	}, nil).Once()

	uc := New(&MetadataUseCaseCfg{
		Indexer: client,
		Cache:   primitive.NewPrimitive("test", 1),
	})

	first := uc.Resolve(c, id)
	second := uc.Resolve(c, id)

	require.Equal(t, first, second)
	client.AssertNumberOfCalls(t, "GetAssetTransactions", 1)
}

func TestResolveImageUrl(t *testing.T) {
	uc := New(&MetadataUseCaseCfg{Indexer: &indexerMocks.Client{}})

	require.Equal(t, "https://ipfs.io/ipfs/QmXyZ", uc.ResolveImageUrl("ipfs://QmXyZ"))
	require.Equal(t, "https://example.com/a.png", uc.ResolveImageUrl("https://example.com/a.png"))
	require.Equal(t, defaultPlaceholder, uc.ResolveImageUrl(""))
}
