package model

import (
	"encoding/json"

	"pump_launch/internal/common"
)

// TradeOptions 用户配置的交易参数，除 amount/slippage 外的字段不做校验
type TradeOptions map[string]interface{}

func (o TradeOptions) Amount() interface{} {
	return o["amount"]
}

func (o TradeOptions) Slippage() interface{} {
	return o["slippage"]
}

// TradeRequest trade-local 接口的请求参数
type TradeRequest struct {
	PublicKey        string             `json:"publicKey"`
	Action           common.TradeAction `json:"action"`
	TokenMetadata    TokenInfo          `json:"tokenMetadata"`
	Mint             string             `json:"mint"`
	DenominatedInSol string             `json:"denominatedInSol"`
	Amount           interface{}        `json:"amount,omitempty"`
	Slippage         interface{}        `json:"slippage,omitempty"`
	PriorityFee      *float64           `json:"priorityFee,omitempty"`
	Pool             common.PoolType    `json:"pool"`

	// 直连模式下原样展开到请求体的交易参数
	Options TradeOptions `json:"-"`
}

type tradeRequestFields TradeRequest

// MarshalJSON 带 Options 时按展开合并的顺序输出:
// publicKey, action, tokenMetadata, mint 在前，可被 Options 覆盖；denominatedInSol, pool 在后覆盖 Options
func (r TradeRequest) MarshalJSON() ([]byte, error) {
	if len(r.Options) == 0 {
		return json.Marshal(tradeRequestFields(r))
	}

	body := map[string]interface{}{
		"publicKey":     r.PublicKey,
		"action":        r.Action,
		"tokenMetadata": r.TokenMetadata,
		"mint":          r.Mint,
	}
	if r.Amount != nil {
		body["amount"] = r.Amount
	}
	if r.Slippage != nil {
		body["slippage"] = r.Slippage
	}
	if r.PriorityFee != nil {
		body["priorityFee"] = *r.PriorityFee
	}
	for k, v := range r.Options {
		body[k] = v
	}
	body["denominatedInSol"] = r.DenominatedInSol
	body["pool"] = r.Pool

	return json.Marshal(body)
}
