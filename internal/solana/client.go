package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
)

// Client 包装Solana客户端功能
type Client struct {
	rpcClient *rpc.Client
}

// New 创建新的Solana客户端
func New(endpoint string) *Client {
	return &Client{
		rpcClient: rpc.New(endpoint),
	}
}

// Close 关闭客户端连接
func (c *Client) Close() error {
	return c.rpcClient.Close()
}

// Broadcast 发送已签名交易并返回签名，不等待上链确认
func (c *Client) Broadcast(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.rpcClient.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "发送交易失败")
	}
	return sig, nil
}
