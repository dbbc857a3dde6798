package chainTx

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"

	"pump_launch/internal/keys"
)

func newKeyPair(t *testing.T) keys.KeyPair {
	t.Helper()
	priv, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	kp, err := keys.Resolve(priv.String())
	require.NoError(t, err)
	return kp
}

// unsignedTx 构造和 trade-local 返回格式一致的交易: 第一个签名者付费，签名位为零值占位
func unsignedTx(t *testing.T, payer solana.PublicKey, others ...solana.PublicKey) []byte {
	t.Helper()

	recipient := solana.NewWallet().PublicKey()
	instructions := []solana.Instruction{
		system.NewTransferInstruction(1, payer, recipient).Build(),
	}
	for _, other := range others {
		instructions = append(instructions, system.NewTransferInstruction(1, other, recipient).Build())
	}

	tx, err := solana.NewTransaction(instructions, solana.Hash{}, solana.TransactionPayer(payer))
	require.NoError(t, err)

	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)
	raw, err := tx.MarshalBinary()
	require.NoError(t, err)
	return raw
}

func unsignedBase58Tx(t *testing.T, payer solana.PublicKey, others ...solana.PublicKey) string {
	return base58.Encode(unsignedTx(t, payer, others...))
}
