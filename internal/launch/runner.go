package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"pump_launch/internal/analyzer"
	"pump_launch/internal/chainTx"
	"pump_launch/internal/common"
	"pump_launch/internal/metadata"
	"pump_launch/internal/model"
	"pump_launch/internal/pumpportal"
	"pump_launch/internal/rpc"
	"pump_launch/internal/solana"
	"pump_launch/internal/ws"
)

// Watcher 监听新代币推送
type Watcher interface {
	Connect(ctx context.Context) error
	WaitForCreate(ctx context.Context, mint string, timeout time.Duration) (*model.TokenEvent, error)
	Close() error
}

// Runner 按顺序执行: 读取图片, 上传元数据, 提交交易, 输出链接
type Runner struct {
	Launch    Launch
	Publisher metadata.Publisher
	Submitter chainTx.Submitter
	Watcher   Watcher // 为空时不监听
	Out       io.Writer
}

// NewSubmitter 只由 useJito 决定使用哪种提交方式
func NewSubmitter(l Launch) chainTx.Submitter {
	portal := pumpportal.NewClient(l.PortalUrl, nil)
	if l.UseJito {
		return &chainTx.BundleSubmitter{
			Portal: portal,
			Relay:  rpc.NewJitoClient(l.BlockEngineUrl, nil),
		}
	}
	return &chainTx.DirectSubmitter{
		Portal:      portal,
		Broadcaster: solana.New(l.Endpoint),
	}
}

// NewRunner 使用真实服务创建 Runner
func NewRunner(l Launch) *Runner {
	r := &Runner{
		Launch:    l,
		Publisher: metadata.NewClient(l.IpfsUrl, nil),
		Submitter: NewSubmitter(l),
		Out:       os.Stdout,
	}
	if l.Watch {
		r.Watcher = ws.NewWatcher(l.DataFeedUrl)
	}
	return r
}

// Run 执行一次发行，返回浏览器链接。任一步骤失败立即返回，不重试
func (r *Runner) Run(ctx context.Context) (string, error) {
	l := r.Launch
	log := common.Log.WithFields(logrus.Fields{
		"mint":   l.Mint.Address(),
		"signer": l.Signer.Address(),
		"jito":   l.UseJito,
	})

	log.Info("开始创建代币")

	asset, err := metadata.LoadAsset(l.FilePath)
	if err != nil {
		return "", err
	}

	watcher := r.connectWatcher(ctx)
	if watcher != nil {
		defer watcher.Close()
	}

	if res := analyzer.Check(analyzer.FromFields(l.Metadata), analyzer.DefaultConfig()); !res.Passed() {
		log.WithField("failed", res.Failed).Warn("元数据检查未通过，继续上传")
	}

	// 步骤1: 上传图片和元数据
	published, err := r.Publisher.Publish(ctx, asset, l.Metadata)
	if err != nil {
		return "", err
	}

	// 步骤2: 构建、签名并提交交易
	res, err := r.Submitter.Submit(ctx, chainTx.TradeContext{
		Signer:  l.Signer,
		Mint:    l.Mint,
		Token:   published.TokenInfo(),
		Options: l.Options,
		JitoTip: l.JitoTip,
	})
	if err != nil {
		return "", err
	}

	link := chainTx.Report(res)
	fmt.Fprintf(r.out(), "Transaction: %s\n", link)

	if watcher != nil {
		r.awaitCreate(ctx, watcher)
	}
	return link, nil
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

// connectWatcher 连接失败只记录日志
func (r *Runner) connectWatcher(ctx context.Context) Watcher {
	if r.Watcher == nil {
		return nil
	}
	if err := r.Watcher.Connect(ctx); err != nil {
		common.Log.WithError(err).Warn("监听新代币失败，跳过上链确认")
		return nil
	}
	return r.Watcher
}

func (r *Runner) awaitCreate(ctx context.Context, w Watcher) {
	event, err := w.WaitForCreate(ctx, r.Launch.Mint.Address(), r.Launch.WatchTimeout)
	if err != nil {
		common.Log.WithError(err).WithField("mint", r.Launch.Mint.Address()).Warn("未收到代币创建事件")
		return
	}
	common.Log.WithFields(logrus.Fields{
		"mint":         event.Mint,
		"signature":    event.Signature,
		"marketCapSol": event.MarketCapSol,
	}).Info("代币创建事件已确认")
	common.Log.Debug(event.String())
}
