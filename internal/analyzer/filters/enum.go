package filters

import "pump_launch/internal/model"

type Filter interface {
	// Filter 返回元数据是否通过检查，metadata 为 nil 时不通过
	Filter(metadata *model.TokenMetadata) bool
	Name() string
	Type() FilterType
}

type FilterType int

const (
	TwitterExist FilterType = 1
	WebsiteExist FilterType = 2
	NameExist    FilterType = 3
)
