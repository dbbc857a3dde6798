package filters

import (
	"strings"

	"pump_launch/internal/model"
)

// 常见的占位链接
var invalidWebsitePatterns = []string{
	"javascript:",
	"#",
	"about:blank",
	"mailto:",
	"tel:",
	"file:",
	"undefined",
	"null",
}

type WebsiteFilter struct{}

func NewWebsiteFilter() *WebsiteFilter {
	return &WebsiteFilter{}
}

func (f *WebsiteFilter) Name() string {
	return "websiteFilter"
}

func (f *WebsiteFilter) Type() FilterType {
	return WebsiteExist
}

// Filter website 非空、不是占位链接且包含域名
func (f *WebsiteFilter) Filter(metadata *model.TokenMetadata) bool {
	if metadata == nil || metadata.Website == "" {
		return false
	}

	website := strings.ToLower(metadata.Website)
	for _, pattern := range invalidWebsitePatterns {
		if strings.Contains(website, pattern) {
			return false
		}
	}
	return strings.Contains(website, ".")
}
