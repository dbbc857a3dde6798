package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"pump_launch/internal/common"
)

var ErrRelay = errors.New("jito relay request failed")

type JitoRequestBody struct {
	Jsonrpc string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// JitoResponseBody block engine 的 JSON-RPC 响应
type JitoResponseBody struct {
	Jsonrpc string             `json:"jsonrpc"`
	ID      int                `json:"id"`
	Result  json.RawMessage    `json:"result,omitempty"`
	Error   *JitoErrorResponse `json:"error,omitempty"`
}

type JitoErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JitoClient 向 block engine 提交 bundle
type JitoClient struct {
	url        string
	httpClient *http.Client
}

func NewJitoClient(url string, httpClient *http.Client) *JitoClient {
	if url == "" {
		url = common.BLOCK_ENGINE_URL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &JitoClient{url: url, httpClient: httpClient}
}

// SendBundle 提交按顺序排列的 base58 签名交易，返回 bundle id
func (c *JitoClient) SendBundle(ctx context.Context, encodedTxs []string) (string, error) {
	if len(encodedTxs) == 0 {
		return "", errors.Wrap(ErrRelay, "bundle 为空")
	}

	requestBody := JitoRequestBody{
		Jsonrpc: "2.0",
		ID:      1,
		Method:  "sendBundle",
		Params:  []interface{}{encodedTxs},
	}

	reqBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", errors.Wrap(err, "序列化 bundle 请求失败")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrap(err, "创建 bundle 请求失败")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(ErrRelay, "发送 bundle 失败: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(ErrRelay, "读取响应失败: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(ErrRelay, "status %s: %s", resp.Status, string(data))
	}

	var responseBody JitoResponseBody
	if err := json.Unmarshal(data, &responseBody); err != nil {
		return "", errors.Wrapf(ErrRelay, "解析响应失败: %v", err)
	}
	if responseBody.Error != nil {
		return "", errors.Wrapf(ErrRelay, "code %d: %s", responseBody.Error.Code, responseBody.Error.Message)
	}

	var bundleID string
	if err := json.Unmarshal(responseBody.Result, &bundleID); err != nil || bundleID == "" {
		return "", errors.Wrapf(ErrRelay, "响应缺少 bundle id: %s", string(data))
	}

	common.Log.WithField("bundleId", bundleID).Info("bundle 已提交")
	return bundleID, nil
}
