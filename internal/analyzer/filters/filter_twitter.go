package filters

import (
	"strings"

	"pump_launch/internal/model"
)

type TwitterFilter struct{}

func NewTwitterFilter() *TwitterFilter {
	return &TwitterFilter{}
}

func (f *TwitterFilter) Name() string {
	return "twitterFilter"
}

func (f *TwitterFilter) Type() FilterType {
	return TwitterExist
}

// Filter twitter 字段非空，或 website 指向 twitter/x.com
func (f *TwitterFilter) Filter(metadata *model.TokenMetadata) bool {
	if metadata == nil {
		return false
	}
	if strings.TrimSpace(metadata.Twitter) != "" {
		return true
	}

	website := strings.ToLower(metadata.Website)
	return website != "" && (strings.Contains(website, "twitter.com") || strings.Contains(website, "x.com"))
}
