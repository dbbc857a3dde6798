package chainTx

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"pump_launch/internal/common"
	"pump_launch/internal/model"
	"pump_launch/internal/pumpportal"
)

// TransactionRequester 获取单笔未签名交易的原始字节
type TransactionRequester interface {
	RequestTransaction(ctx context.Context, req model.TradeRequest) ([]byte, error)
}

// BundleRequester 获取多笔 base58 编码的未签名交易，顺序与请求一致
type BundleRequester interface {
	RequestTransactions(ctx context.Context, reqs []model.TradeRequest) ([]string, error)
}

// Broadcaster 把已签名交易发送到链上
type Broadcaster interface {
	Broadcast(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

// BundleRelay 把已签名交易作为 bundle 提交给中继
type BundleRelay interface {
	SendBundle(ctx context.Context, encodedTxs []string) (string, error)
}

// Submitter 构建、签名并提交交易
type Submitter interface {
	Submit(ctx context.Context, tc TradeContext) (Result, error)
}

// DirectSubmitter 单笔交易直接广播到 RPC 节点
type DirectSubmitter struct {
	Portal      TransactionRequester
	Broadcaster Broadcaster
}

func (s *DirectSubmitter) Submit(ctx context.Context, tc TradeContext) (Result, error) {
	req := BuildTradeRequest(tc.Signer, tc.Mint, tc.Token, tc.Options, nil)

	// 步骤1: 获取未签名交易
	raw, err := s.Portal.RequestTransaction(ctx, req)
	if err != nil {
		return Result{}, err
	}

	// 步骤2: 签名交易
	tx, err := DecodeTransaction(raw)
	if err != nil {
		return Result{}, err
	}
	if err := SignTransaction(tx, tc.Mint, tc.Signer); err != nil {
		return Result{}, err
	}

	// 步骤3: 发送签名后的交易
	sig, err := s.Broadcaster.Broadcast(ctx, tx)
	if err != nil {
		return Result{}, err
	}

	common.Log.WithFields(logrus.Fields{
		"mint":      tc.Mint.Address(),
		"signature": sig.String(),
	}).Info("交易发送成功")
	return Result{Kind: KindDirect, Signature: sig.String()}, nil
}

// BundleSubmitter 通过 Jito block engine 以 bundle 提交
type BundleSubmitter struct {
	Portal BundleRequester
	Relay  BundleRelay
}

func (s *BundleSubmitter) Submit(ctx context.Context, tc TradeContext) (Result, error) {
	tip := tc.JitoTip
	reqs := []model.TradeRequest{
		BuildTradeRequest(tc.Signer, tc.Mint, tc.Token, tc.Options, &tip),
	}

	encoded, err := s.Portal.RequestTransactions(ctx, reqs)
	if err != nil {
		return Result{}, err
	}
	if len(encoded) != len(reqs) {
		return Result{}, errors.Wrapf(pumpportal.ErrTradeRequest, "返回交易数量 %d 与请求数量 %d 不一致", len(encoded), len(reqs))
	}

	signed, err := SignBundle(encoded, tc.Mint, tc.Signer)
	if err != nil {
		return Result{}, err
	}

	bundleID, err := s.Relay.SendBundle(ctx, signed)
	if err != nil {
		return Result{}, err
	}

	common.Log.WithFields(logrus.Fields{
		"mint":     tc.Mint.Address(),
		"bundleId": bundleID,
		"size":     len(signed),
	}).Info("bundle 发送成功")
	return Result{Kind: KindBundle, BundleID: bundleID}, nil
}
