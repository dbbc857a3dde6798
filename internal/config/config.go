package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"pump_launch/internal/model"
)

var ErrInvalidConfig = errors.New("invalid config")

const defaultWatchTimeout = 60

// Config config.json 的内容，环境变量可以覆盖其中的部分字段
type Config struct {
	Endpoint           string                 `json:"endpoint"`
	SignerPrivateKey   string                 `json:"signerPrivateKey"`
	MintPrivateKey     string                 `json:"mintPrivateKey"`
	FilePath           string                 `json:"filePath"`
	Metadata           map[string]interface{} `json:"metadata"`
	TransactionOptions model.TradeOptions     `json:"transactionOptions"`
	Jito               bool                   `json:"jito"`
	JitoTip            float64                `json:"jitoTip"`

	// 以下字段可选，为空时使用默认服务地址
	PortalUrl      string `json:"portalUrl,omitempty"`
	IpfsUrl        string `json:"ipfsUrl,omitempty"`
	BlockEngineUrl string `json:"blockEngineUrl,omitempty"`
	DataFeedUrl    string `json:"dataFeedUrl,omitempty"`

	LogLevel            string `json:"logLevel,omitempty"`
	LogFile             string `json:"logFile,omitempty"`
	WatchLaunch         bool   `json:"watchLaunch,omitempty"`
	WatchTimeoutSeconds int    `json:"watchTimeoutSeconds,omitempty"`
}

// Load 先加载 envFile（不存在时跳过），再读取配置文件，最后用环境变量覆盖
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, errors.Wrapf(err, "加载 %s 失败", envFile)
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "读取配置文件 %s 失败", path)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "解析 %s 失败: %v", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := []struct {
		key string
		dst *string
	}{
		{"SOLANA_RPC_URL", &c.Endpoint},
		{"SIGNER_PRIVATE_KEY", &c.SignerPrivateKey},
		{"MINT_PRIVATE_KEY", &c.MintPrivateKey},
		{"JITO_BLOCK_ENGINE_URL", &c.BlockEngineUrl},
		{"LOG_LEVEL", &c.LogLevel},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.dst = v
		}
	}

	if v := os.Getenv("USE_JITO"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "USE_JITO=%q", v)
		}
		c.Jito = b
	}
	if v := os.Getenv("JITO_TIP"); v != "" {
		tip, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "JITO_TIP=%q", v)
		}
		c.JitoTip = tip
	}
	return nil
}

// Validate 检查必填字段
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"endpoint", c.Endpoint},
		{"signerPrivateKey", c.SignerPrivateKey},
		{"mintPrivateKey", c.MintPrivateKey},
		{"filePath", c.FilePath},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Wrapf(ErrInvalidConfig, "缺少 %s", r.name)
		}
	}

	if c.TransactionOptions.Amount() == nil {
		return errors.Wrap(ErrInvalidConfig, "缺少 transactionOptions.amount")
	}
	if c.TransactionOptions.Slippage() == nil {
		return errors.Wrap(ErrInvalidConfig, "缺少 transactionOptions.slippage")
	}
	if c.Jito && c.JitoTip < 0 {
		return errors.Wrapf(ErrInvalidConfig, "jitoTip 不能为负数: %v", c.JitoTip)
	}
	return nil
}

// MetadataFields 元数据字段转为表单值
func (c *Config) MetadataFields() map[string]string {
	fields := make(map[string]string, len(c.Metadata))
	for k, v := range c.Metadata {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			fields[k] = val
		default:
			fields[k] = fmt.Sprint(val)
		}
	}
	return fields
}

func (c *Config) WatchTimeout() time.Duration {
	if c.WatchTimeoutSeconds <= 0 {
		return defaultWatchTimeout * time.Second
	}
	return time.Duration(c.WatchTimeoutSeconds) * time.Second
}
