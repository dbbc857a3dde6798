package filters

import (
	"strings"

	"pump_launch/internal/model"
)

type NameFilter struct{}

func NewNameFilter() *NameFilter {
	return &NameFilter{}
}

func (f *NameFilter) Name() string {
	return "nameFilter"
}

func (f *NameFilter) Type() FilterType {
	return NameExist
}

// Filter 名称和符号都不能为空
func (f *NameFilter) Filter(metadata *model.TokenMetadata) bool {
	if metadata == nil {
		return false
	}
	return strings.TrimSpace(metadata.Name) != "" && strings.TrimSpace(metadata.Symbol) != ""
}
