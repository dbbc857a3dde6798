package launch

import (
	"time"

	"github.com/pkg/errors"

	"pump_launch/internal/config"
	"pump_launch/internal/keys"
	"pump_launch/internal/model"
)

// Launch 一次发行的全部参数，由配置构建后只读
type Launch struct {
	Signer keys.KeyPair
	Mint   keys.KeyPair

	FilePath string
	Metadata map[string]string
	Options  model.TradeOptions
	UseJito  bool
	JitoTip  float64

	Endpoint       string
	PortalUrl      string
	IpfsUrl        string
	BlockEngineUrl string
	DataFeedUrl    string

	Watch        bool
	WatchTimeout time.Duration
}

// New 解析两个私钥并复制配置，私钥无效时在任何网络请求之前返回
func New(cfg *config.Config) (Launch, error) {
	signer, err := keys.Resolve(cfg.SignerPrivateKey)
	if err != nil {
		return Launch{}, errors.WithMessage(err, "signerPrivateKey")
	}
	mint, err := keys.Resolve(cfg.MintPrivateKey)
	if err != nil {
		return Launch{}, errors.WithMessage(err, "mintPrivateKey")
	}

	options := make(model.TradeOptions, len(cfg.TransactionOptions))
	for k, v := range cfg.TransactionOptions {
		options[k] = v
	}

	return Launch{
		Signer:         signer,
		Mint:           mint,
		FilePath:       cfg.FilePath,
		Metadata:       cfg.MetadataFields(),
		Options:        options,
		UseJito:        cfg.Jito,
		JitoTip:        cfg.JitoTip,
		Endpoint:       cfg.Endpoint,
		PortalUrl:      cfg.PortalUrl,
		IpfsUrl:        cfg.IpfsUrl,
		BlockEngineUrl: cfg.BlockEngineUrl,
		DataFeedUrl:    cfg.DataFeedUrl,
		Watch:          cfg.WatchLaunch,
		WatchTimeout:   cfg.WatchTimeout(),
	}, nil
}
