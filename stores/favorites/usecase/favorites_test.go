package usecase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/domain/asset"
	"github.com/algogallery/goapi/domain/favorites"
	"github.com/algogallery/goapi/stores/favorites/repository"
)

type favoritesUseCaseSuite struct {
	suite.Suite

	path string
	im   favorites.Usecase
}

func (s *favoritesUseCaseSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "favorites.json")
	uc, err := New(bCtx.Background(), &FavoritesUseCaseCfg{Repo: repository.NewBlobRepo(s.path)})
	s.Require().NoError(err)
	s.im = uc
}

func (s *favoritesUseCaseSuite) TestToggleAddsThenRemoves() {
	ctx := bCtx.Background()
	rec := &asset.NftRecord{AssetId: 12345, Name: "Goanna #1"}

	fav, err := s.im.Toggle(ctx, rec)
	s.NoError(err)
	s.True(fav)
	s.True(s.im.IsFavorite(ctx, 12345))
	s.Equal(1, s.im.Count(ctx))

	fav, err = s.im.Toggle(ctx, rec)
	s.NoError(err)
	s.False(fav)
	s.False(s.im.IsFavorite(ctx, 12345))
	s.Equal(0, s.im.Count(ctx))
}

func (s *favoritesUseCaseSuite) TestListKeepsInsertionOrder() {
	ctx := bCtx.Background()

	for _, rec := range []*asset.NftRecord{
		{AssetId: 3, Name: "third asset"},
		{AssetId: 1, Name: "first asset"},
		{AssetId: 2, Name: "second asset"},
	} {
		_, err := s.im.Toggle(ctx, rec)
		s.NoError(err)
	}

	list := s.im.List(ctx)
	s.Require().Len(list, 3)
	s.Equal("third asset", list[0].Name)
	s.Equal("first asset", list[1].Name)
	s.Equal("second asset", list[2].Name)
}

func (s *favoritesUseCaseSuite) TestSurvivesRestart() {
	ctx := bCtx.Background()

	_, err := s.im.Toggle(ctx, &asset.NftRecord{AssetId: 7, Name: "keeper"})
	s.NoError(err)
	_, err = s.im.Toggle(ctx, &asset.NftRecord{AssetId: 8, Name: "dropped"})
	s.NoError(err)
	_, err = s.im.Toggle(ctx, &asset.NftRecord{AssetId: 8, Name: "dropped"})
	s.NoError(err)

	// simulate restart: a fresh usecase over the same blob
	reborn, err := New(ctx, &FavoritesUseCaseCfg{Repo: repository.NewBlobRepo(s.path)})
	s.Require().NoError(err)

	s.True(reborn.IsFavorite(ctx, 7))
	s.False(reborn.IsFavorite(ctx, 8))
	list := reborn.List(ctx)
	s.Require().Len(list, 1)
	s.Equal("keeper", list[0].Name)
	s.True(list[0].IsFavorite)
}

func (s *favoritesUseCaseSuite) TestToggleRollsBackOnSaveFailure() {
	ctx := bCtx.Background()

	uc, err := New(ctx, &FavoritesUseCaseCfg{Repo: &failingRepo{}})
	s.Require().NoError(err)

	_, err = uc.Toggle(ctx, &asset.NftRecord{AssetId: 5})
	s.Error(err)
	s.False(uc.IsFavorite(ctx, 5))
	s.Equal(0, uc.Count(ctx))
}

func TestFavoritesUseCaseSuite(t *testing.T) {
	suite.Run(t, new(favoritesUseCaseSuite))
}

type failingRepo struct{}

func (r *failingRepo) Load(c bCtx.Ctx) (favorites.Map, error) {
	return favorites.Map{}, nil
}

func (r *failingRepo) Save(c bCtx.Ctx, m favorites.Map) error {
	return xerrors.New("disk full")
}
