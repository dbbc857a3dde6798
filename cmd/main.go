package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"pump_launch/internal/common"
	"pump_launch/internal/config"
	"pump_launch/internal/launch"
)

// 命令行参数
var (
	configPath string
	envFile    string
	useJito    string
	watch      bool
)

func init() {
	flag.StringVar(&configPath, "config", "./config.json", "配置文件路径")
	flag.StringVar(&envFile, "env", ".env", "环境变量文件，不存在时忽略")
	flag.StringVar(&useJito, "jito", "", "覆盖配置中的 jito (true/false)，为空时使用配置")
	flag.BoolVar(&watch, "watch", false, "提交后等待新代币推送中的创建事件")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		common.Log.WithError(err).Error("创建代币失败")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return err
	}

	if useJito != "" {
		v, err := strconv.ParseBool(useJito)
		if err != nil {
			return fmt.Errorf("无效的 -jito 参数: %q", useJito)
		}
		cfg.Jito = v
	}
	if watch {
		cfg.WatchLaunch = true
	}

	if err := common.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := launch.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = launch.NewRunner(l).Run(ctx)
	return err
}
