package pumpportal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"pump_launch/internal/common"
	"pump_launch/internal/model"
)

var ErrTradeRequest = errors.New("trade-local request failed")

// Client pumpportal trade-local 接口，返回未签名交易
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = common.TRADE_LOCAL_URL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{url: url, httpClient: httpClient}
}

// RequestTransaction 提交单个请求，成功时响应体是原始交易字节
func (c *Client) RequestTransaction(ctx context.Context, req model.TradeRequest) ([]byte, error) {
	data, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrTradeRequest, "API返回的交易数据为空")
	}

	common.Log.WithField("size", len(data)).Info("成功获取未签名交易")
	return data, nil
}

// RequestTransactions 提交请求数组，成功时响应是按请求顺序排列的 base58 交易数组
func (c *Client) RequestTransactions(ctx context.Context, reqs []model.TradeRequest) ([]string, error) {
	data, err := c.post(ctx, reqs)
	if err != nil {
		return nil, err
	}

	var encoded []string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, errors.Wrapf(ErrTradeRequest, "解析交易数组失败: %v", err)
	}
	if len(encoded) != len(reqs) {
		return nil, errors.Wrapf(ErrTradeRequest, "返回交易数量 %d 与请求数量 %d 不一致", len(encoded), len(reqs))
	}

	common.Log.WithField("count", len(encoded)).Info("成功获取未签名交易")
	return encoded, nil
}

func (c *Client) post(ctx context.Context, payload interface{}) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "序列化交易请求失败")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.Wrap(err, "创建交易请求失败")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrTradeRequest, "发送交易请求失败: %v", err)
	}
	defer resp.Body.Close()

	common.Log.WithField("status", resp.StatusCode).Debug("API响应状态码")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrTradeRequest, "读取响应失败: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrTradeRequest, "status %s: %s", resp.Status, truncate(data))
	}
	return data, nil
}

func truncate(data []byte) string {
	const max = 256
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
