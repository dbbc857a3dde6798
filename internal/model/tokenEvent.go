package model

import (
	"fmt"

	"pump_launch/internal/common"
)

// TokenEvent pumpportal 数据推送中的代币事件
type TokenEvent struct {
	Signature             string  `json:"signature"`
	Mint                  string  `json:"mint"`
	TraderPublicKey       string  `json:"traderPublicKey"`
	TxType                string  `json:"txType"`
	InitialBuy            float64 `json:"initialBuy"`
	SolAmount             float64 `json:"solAmount"`
	BondingCurveKey       string  `json:"bondingCurveKey"`
	VTokensInBondingCurve float64 `json:"vTokensInBondingCurve"`
	VSolInBondingCurve    float64 `json:"vSolInBondingCurve"`
	MarketCapSol          float64 `json:"marketCapSol"`
	Name                  string  `json:"name"`
	Symbol                string  `json:"symbol"`
	Uri                   string  `json:"uri"`
	Pool                  string  `json:"pool"`
}

// IsCreateOf 是否为指定 mint 的创建事件
func (e *TokenEvent) IsCreateOf(mint string) bool {
	return e.TxType == string(common.CREATE) && e.Mint == mint
}

// String 格式化显示代币事件信息
func (e *TokenEvent) String() string {
	return fmt.Sprintf(`
		==== 代币事件 ====
		signature: %s
		mint: %s
		traderPublicKey: %s
		txType: %s
		initialBuy: %.8f
		solAmount: %.8f
		marketCapSol: %.8f
		name: %s
		symbol: %s
		uri: %s
		pool: %s
		==================
`,
		e.Signature,
		e.Mint,
		e.TraderPublicKey,
		e.TxType,
		e.InitialBuy,
		e.SolAmount,
		e.MarketCapSol,
		e.Name,
		e.Symbol,
		e.Uri,
		e.Pool,
	)
}
