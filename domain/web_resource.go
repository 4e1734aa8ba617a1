package domain

import (
	"github.com/algogallery/goapi/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}
