package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/validator"
)

func TestFeatured(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc := New()
	cols := uc.Featured(ctx)

	req.Len(cols, 5)
	req.Equal("Nevermore", cols[0].Name)
	for _, col := range cols {
		req.NotEmpty(col.Name)
		req.NotEmpty(col.Icon)
		req.True(validator.IsValidAddress(string(col.Creator)), col.Name)
	}
}

func TestFeaturedReturnsCopy(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc := New()
	cols := uc.Featured(ctx)
	cols[0] = nil

	again := uc.Featured(ctx)
	req.NotNil(again[0])
}
