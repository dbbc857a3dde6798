package analyzer

import (
	"pump_launch/internal/analyzer/filters"
	"pump_launch/internal/model"
)

// Result 元数据检查结果，未通过的检查只作提示
type Result struct {
	Metadata *model.TokenMetadata
	Failed   []string
}

func (r *Result) Passed() bool {
	return len(r.Failed) == 0
}

// Config 检查项配置
type Config struct {
	Filters []filters.Filter
}

// DefaultConfig 默认检查名称符号、Twitter 和网站
func DefaultConfig() *Config {
	return &Config{
		Filters: []filters.Filter{
			filters.NewNameFilter(),
			filters.NewTwitterFilter(),
			filters.NewWebsiteFilter(),
		},
	}
}

// FromFields 把上传表单字段转换为元数据
func FromFields(fields map[string]string) *model.TokenMetadata {
	return &model.TokenMetadata{
		Name:        fields["name"],
		Symbol:      fields["symbol"],
		Description: fields["description"],
		Twitter:     fields["twitter"],
		Website:     fields["website"],
		Telegram:    fields["telegram"],
		ShowName:    true,
	}
}

// Check 依次执行所有检查
func Check(metadata *model.TokenMetadata, config *Config) *Result {
	result := &Result{Metadata: metadata}
	for _, filter := range config.Filters {
		if !filter.Filter(metadata) {
			result.Failed = append(result.Failed, filter.Name())
		}
	}
	return result
}
