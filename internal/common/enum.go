package common

type TradeAction string

type PoolType string

const (
	BUY    TradeAction = "buy"
	SELL   TradeAction = "sell"
	CREATE TradeAction = "create"
)
const (
	AUTO         PoolType = "auto"
	PUMP         PoolType = "pump"
	RAYDIUM      PoolType = "raydium"
	PUMP_AMM     PoolType = "pump-amm"
	LAUNCHLAB    PoolType = "launchlab"
	RAYDIUM_CPMM PoolType = "raydium-cpmm"
	BONK         PoolType = "bonk"
)

// 默认服务地址
const (
	TRADE_LOCAL_URL  = "https://pumpportal.fun/api/trade-local"
	IPFS_URL         = "https://pump.fun/api/ipfs"
	BLOCK_ENGINE_URL = "https://mainnet.block-engine.jito.wtf/api/v1/bundles"
	DATA_FEED_URL    = "wss://pumpportal.fun/api/data"
)

// 浏览器链接前缀
const (
	SOLSCAN_TX_URL    = "https://solscan.io/tx/"
	JITO_BUNDLE_URL   = "https://explorer.jito.wtf/bundle/"
	DEFAULT_MIME_TYPE = "image/png"
)
