package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"pump_launch/internal/common"
	"pump_launch/internal/model"
)

var ErrPublishFailure = errors.New("metadata publish failed")

// Asset 待上传的图片文件
type Asset struct {
	Name string
	Data []byte
}

// LoadAsset 读取本地文件
func LoadAsset(path string) (Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, errors.Wrapf(err, "读取文件 %s 失败", path)
	}
	return Asset{Name: filepath.Base(path), Data: data}, nil
}

// ContentType 根据文件内容识别类型，无法识别时按 image/png 处理
func (a Asset) ContentType() string {
	mt := mimetype.Detect(a.Data)
	if mt == nil || mt.Is("application/octet-stream") || mt.Is("text/plain") {
		return common.DEFAULT_MIME_TYPE
	}
	return mt.String()
}

// Publisher 上传代币图片和描述信息，返回元数据 URI
type Publisher interface {
	Publish(ctx context.Context, asset Asset, fields map[string]string) (*model.PublishedMetadata, error)
}

// Client pump.fun IPFS 上传接口
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = common.IPFS_URL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{url: url, httpClient: httpClient}
}

// Publish 以 multipart 表单上传: file 字段、每个元数据字段、以及固定的 showName=true
func (c *Client) Publish(ctx context.Context, asset Asset, fields map[string]string) (*model.PublishedMetadata, error) {
	body, contentType, err := buildForm(asset, fields)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, errors.Wrap(err, "创建上传请求失败")
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrPublishFailure, "请求失败: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrPublishFailure, "读取响应失败: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Wrapf(ErrPublishFailure, "status %s: %s", resp.Status, truncate(data))
	}

	var published model.PublishedMetadata
	if err := json.Unmarshal(data, &published); err != nil {
		return nil, errors.Wrapf(ErrPublishFailure, "解析响应失败: %v", err)
	}
	if published.MetadataUri == "" {
		return nil, errors.Wrap(ErrPublishFailure, "响应缺少 metadataUri")
	}

	common.Log.WithField("uri", published.MetadataUri).Info("元数据上传成功")
	return &published, nil
}

func buildForm(asset Asset, fields map[string]string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	name := asset.Name
	if name == "" {
		name = "blob"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	header.Set("Content-Type", asset.ContentType())
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", errors.Wrap(err, "创建文件字段失败")
	}
	if _, err := part.Write(asset.Data); err != nil {
		return nil, "", errors.Wrap(err, "写入文件字段失败")
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", errors.Wrapf(err, "写入字段 %s 失败", k)
		}
	}
	if err := w.WriteField("showName", "true"); err != nil {
		return nil, "", errors.Wrap(err, "写入字段 showName 失败")
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "关闭表单失败")
	}
	return &buf, w.FormDataContentType(), nil
}

func truncate(data []byte) string {
	const max = 256
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
