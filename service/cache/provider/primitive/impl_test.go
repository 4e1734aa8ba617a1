package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("", 64).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	r, _, e := ts.im.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r)
}

func (ts *testsuite) TestGetMissing() {
	_, _, e := ts.im.Get(mockCtx, "nope")
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestDel() {
	k := "key"
	ts.NoError(ts.im.Set(mockCtx, k, []byte("value"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, k))
	_, _, e := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
}
