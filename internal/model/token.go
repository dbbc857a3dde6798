package model

// TokenMetadata 表示代币的元数据信息
type TokenMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ShowName    bool   `json:"showName"`
	CreatedOn   string `json:"createdOn"`
	Twitter     string `json:"twitter,omitempty"` // Twitter链接字段，可选
	Website     string `json:"website,omitempty"` // 网站链接字段，可选
	Telegram    string `json:"telegram,omitempty"`
}

// PublishedMetadata IPFS 上传接口的返回
type PublishedMetadata struct {
	Metadata    TokenMetadata `json:"metadata"`
	MetadataUri string        `json:"metadataUri"`
}

// TokenInfo 创建代币时交易请求里的 tokenMetadata 字段
type TokenInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Uri    string `json:"uri"`
}

// TokenInfo 从上传结果提取名称、符号和 URI
func (p *PublishedMetadata) TokenInfo() TokenInfo {
	return TokenInfo{
		Name:   p.Metadata.Name,
		Symbol: p.Metadata.Symbol,
		Uri:    p.MetadataUri,
	}
}
