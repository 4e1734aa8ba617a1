package indexer

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/log"
	"github.com/algogallery/goapi/domain"
	"github.com/algogallery/goapi/domain/asset"
)

const maxErrBodyLen = 200

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		baseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		timeout: cfg.Timeout,
	}
}

type client struct {
	client  http.Client
	baseUrl string
	timeout time.Duration
}

func (c *client) GetAsset(ctx bCtx.Ctx, id domain.AssetId) (*asset.RawAsset, error) {
	url := fmt.Sprintf("%s/v2/assets/%s", c.baseUrl, id)
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &AssetResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("decode asset response: %w", domain.ErrInvalidJsonFormat)
	}
	return &resp.Asset, nil
}

func (c *client) GetCreatedAssets(ctx bCtx.Ctx, address domain.Address, opts ...GetCreatedAssetsOptionsFunc) (*CreatedAssetsResp, error) {
	opt, err := ParseGetCreatedAssetsOptions(opts...)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(fmt.Sprintf("%s/v2/accounts/%s/created-assets", c.baseUrl, address))
	if err != nil {
		return nil, err
	}

	params := url.Values{}

	if opt.Cursor != nil {
		params.Add("next", *opt.Cursor)
	}

	if opt.Limit != nil {
		params.Add("limit", strconv.Itoa(*opt.Limit))
	}

	base.RawQuery = params.Encode()
	url := base.String()

	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &CreatedAssetsResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("decode created-assets response: %w", domain.ErrInvalidJsonFormat)
	}
	return resp, nil
}

func (c *client) GetAssetTransactions(ctx bCtx.Ctx, id domain.AssetId, limit int) ([]Transaction, error) {
	url := fmt.Sprintf("%s/v2/assets/%s/transactions?limit=%d", c.baseUrl, id, limit)
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &TransactionsResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("decode transactions response: %w", domain.ErrInvalidJsonFormat)
	}
	return resp.Transactions, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, &domain.FetchError{Status: 0, Message: err.Error()}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, &domain.FetchError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, &domain.FetchError{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode not ok")
		msg := strings.TrimSpace(string(body))
		if len(msg) > maxErrBodyLen {
			msg = msg[:maxErrBodyLen]
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &domain.FetchError{Status: resp.StatusCode, Message: msg}
	}
	return body, nil
}
