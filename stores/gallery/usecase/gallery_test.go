package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/ptr"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
	"github.com/algogallery/goapi/domain/gallery"
	"github.com/algogallery/goapi/domain/metadata"
	"github.com/algogallery/goapi/domain/mocks"
	"github.com/algogallery/goapi/service/indexer"
	indexerMocks "github.com/algogallery/goapi/service/indexer/mocks"
)

const testAddress = "WGSHC4TYXRIJAGGENJBGHBK3G47NFAUPYBBSFD5ZBEFVL3MZREB62E4TQA"

func newPassthroughMetadata() *mocks.MetadataUsecase {
	md := &mocks.MetadataUsecase{}
	md.On("Resolve", mock.Anything, mock.Anything).Return(metadata.Empty())
	md.On("ResolveImageUrl", mock.Anything).Return(func(raw string) string { return raw })
	return md
}

func newIndifferentFavorites() *mocks.FavoritesUsecase {
	fav := &mocks.FavoritesUsecase{}
	fav.On("IsFavorite", mock.Anything, mock.Anything).Return(false)
	return fav
}

func TestSearchSingleAsset(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	client := &indexerMocks.Client{}
	client.On("GetAsset", mock.Anything, domain.AssetId(12345)).Return(&asset.RawAsset{
		Index: 12345,
		Params: asset.Params{
			Name:    "Goanna #1",
			Url:     "ipfs://QmXyZ",
			Creator: domain.Address(testAddress),
			Total:   1,
		},
	}, nil)

	md := &mocks.MetadataUsecase{}
	md.On("Resolve", mock.Anything, domain.AssetId(12345)).Return(&metadata.Resolved{
		Traits: asset.Traits{
			{TraitType: "Background", Value: "Blue"},
			{TraitType: "Rarity", Value: "Epic"},
		},
		Description: "A goanna",
	})
	md.On("ResolveImageUrl", "ipfs://QmXyZ").Return("https://ipfs.io/ipfs/QmXyZ")

	fav := &mocks.FavoritesUsecase{}
	fav.On("IsFavorite", mock.Anything, domain.AssetId(12345)).Return(true)

	uc := New(&GalleryUseCaseCfg{Indexer: client, Metadata: md, Favorites: fav})
	page, err := uc.Search(c, " 12345 ", nil, "tok-1")
	req.NoError(err)

	req.Equal(gallery.ResultSingle, page.Kind)
	req.Equal("Asset #12345", page.Heading)
	req.Equal("tok-1", page.Token)
	req.Nil(page.Cursor)
	req.False(page.HasMore())

	req.Len(page.Records, 1)
	rec := page.Records[0]
	req.Equal(domain.AssetId(12345), rec.AssetId)
	req.Equal("Goanna #1", rec.Name)
	req.Equal("https://ipfs.io/ipfs/QmXyZ", rec.ImageUrl)
	req.Equal("A goanna", rec.Description)
	req.Len(rec.Traits, 2)
	req.True(rec.IsFavorite)
}

func TestSearchSingleAssetNotFound(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	client := &indexerMocks.Client{}
	client.On("GetAsset", mock.Anything, domain.AssetId(404404)).
		Return(nil, &domain.FetchError{Status: 404, Message: "no assets found for AssetID"})

	uc := New(&GalleryUseCaseCfg{Indexer: client, Metadata: newPassthroughMetadata(), Favorites: newIndifferentFavorites()})
	page, err := uc.Search(c, "404404", nil, "")
	req.Nil(page)
	req.ErrorIs(err, domain.ErrNotFound)
}

func TestSearchByAddress(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	raws := []*asset.RawAsset{
		{Index: 1, Params: asset.Params{Name: "First"}},
		{Index: 2, Params: asset.Params{UnitName: "SECOND"}},
		{Index: 3, Params: asset.Params{}},
	}

	client := &indexerMocks.Client{}
	client.On("GetCreatedAssets", mock.Anything, domain.Address(testAddress), mock.Anything).
		Return(&indexer.CreatedAssetsResp{Assets: raws, NextToken: "cursor-2"}, nil)

	uc := New(&GalleryUseCaseCfg{Indexer: client, Metadata: newPassthroughMetadata(), Favorites: newIndifferentFavorites()})
	page, err := uc.Search(c, testAddress, nil, "")
	req.NoError(err)

	req.Equal(gallery.ResultList, page.Kind)
	req.Equal("Assets by WGSHC4TY...", page.Heading)
	req.True(page.HasMore())
	req.Equal("cursor-2", *page.Cursor)

	// ordering and name fallbacks survive the concurrent merge
	req.Len(page.Records, 3)
	req.Equal("First", page.Records[0].Name)
	req.Equal("SECOND", page.Records[1].Name)
	req.Equal("Asset #3", page.Records[2].Name)
}

func TestSearchLowercaseAddressUppercased(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	client := &indexerMocks.Client{}
	client.On("GetCreatedAssets", mock.Anything, domain.Address(testAddress), mock.Anything).
		Return(&indexer.CreatedAssetsResp{Assets: nil, NextToken: ""}, nil)

	uc := New(&GalleryUseCaseCfg{Indexer: client, Metadata: newPassthroughMetadata(), Favorites: newIndifferentFavorites()})
	page, err := uc.Search(c, "wgshc4tyxrijaggenjbghbk3g47nfaupybbsfd5zbefvl3mzreb62e4tqa", nil, "")
	req.NoError(err)
	req.Empty(page.Records)
	req.Nil(page.Cursor)
	client.AssertExpectations(t)
}

func TestSearchPassesCursor(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	client := &indexerMocks.Client{}
	client.On("GetCreatedAssets", mock.Anything, domain.Address(testAddress), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			opts, err := indexer.ParseGetCreatedAssetsOptions(
				args.Get(2).(indexer.GetCreatedAssetsOptionsFunc),
				args.Get(3).(indexer.GetCreatedAssetsOptionsFunc),
			)
			req.NoError(err)
			req.NotNil(opts.Cursor)
			req.Equal("cursor-2", *opts.Cursor)
			req.NotNil(opts.Limit)
			req.Equal(5, *opts.Limit)
		}).
		Return(&indexer.CreatedAssetsResp{Assets: nil, NextToken: ""}, nil)

	uc := New(&GalleryUseCaseCfg{
		Indexer:   client,
		Metadata:  newPassthroughMetadata(),
		Favorites: newIndifferentFavorites(),
		PageSize:  5,
	})
	_, err := uc.Search(c, testAddress, ptr.String("cursor-2"), "")
	req.NoError(err)
}

func TestSearchEmptyKeyword(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	uc := New(&GalleryUseCaseCfg{Indexer: &indexerMocks.Client{}, Metadata: newPassthroughMetadata(), Favorites: newIndifferentFavorites()})
	page, err := uc.Search(c, "   ", nil, "")
	req.Nil(page)
	req.ErrorIs(err, domain.ErrEmptyInput)
}

func TestSearchIndexerFailureIsAtomic(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	client := &indexerMocks.Client{}
	client.On("GetCreatedAssets", mock.Anything, domain.Address(testAddress), mock.Anything).
		Return(nil, &domain.FetchError{Status: 500, Message: "indexer down"})

	md := newPassthroughMetadata()
	uc := New(&GalleryUseCaseCfg{Indexer: client, Metadata: md, Favorites: newIndifferentFavorites()})

	page, err := uc.Search(c, testAddress, nil, "")
	req.Nil(page)
	fe, ok := domain.AsFetchError(err)
	req.True(ok)
	req.Equal(500, fe.Status)
	// no partial merge happened
	md.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}
