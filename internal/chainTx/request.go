package chainTx

import (
	"pump_launch/internal/common"
	"pump_launch/internal/keys"
	"pump_launch/internal/model"
)

// TradeContext 一次创建代币所需的全部输入，构建后只读
type TradeContext struct {
	Signer  keys.KeyPair
	Mint    keys.KeyPair
	Token   model.TokenInfo
	Options model.TradeOptions
	JitoTip float64
}

// BuildTradeRequest 构建 create 请求。
// jitoTip 非空时请求结构固定，只取 amount/slippage，priorityFee 使用小费；
// 为空时交易参数原样展开到请求体
func BuildTradeRequest(signer, mint keys.KeyPair, token model.TokenInfo, options model.TradeOptions, jitoTip *float64) model.TradeRequest {
	req := model.TradeRequest{
		PublicKey:        signer.Address(),
		Action:           common.CREATE,
		TokenMetadata:    token,
		Mint:             mint.Address(),
		DenominatedInSol: "true",
		Pool:             common.PUMP,
	}

	if jitoTip != nil {
		tip := *jitoTip
		req.Amount = options.Amount()
		req.Slippage = options.Slippage()
		req.PriorityFee = &tip
		return req
	}

	if len(options) > 0 {
		req.Options = make(model.TradeOptions, len(options))
		for k, v := range options {
			req.Options[k] = v
		}
	}
	return req
}
