package chainTx

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignTransaction(t *testing.T) {
	signer := newKeyPair(t)
	mint := newKeyPair(t)

	tests := []struct {
		name  string
		payer solana.PublicKey
		other solana.PublicKey
	}{
		{name: "signer付费", payer: signer.PublicKey, other: mint.PublicKey},
		{name: "mint付费", payer: mint.PublicKey, other: signer.PublicKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := DecodeTransaction(unsignedTx(t, tt.payer, tt.other))
			require.NoError(t, err)

			require.NoError(t, SignTransaction(tx, mint, signer))
			require.Len(t, tx.Signatures, 2)
			assert.NoError(t, tx.VerifySignatures())
			assert.ElementsMatch(t, []solana.PublicKey{mint.PublicKey, signer.PublicKey}, tx.Message.AccountKeys[:2])
		})
	}
}

func TestSignTransactionMismatch(t *testing.T) {
	signer := newKeyPair(t)
	mint := newKeyPair(t)
	stranger := newKeyPair(t)

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "只需要signer", raw: unsignedTx(t, signer.PublicKey)},
		{name: "缺少mint多出第三方", raw: unsignedTx(t, signer.PublicKey, stranger.PublicKey)},
		{name: "三个签名者", raw: unsignedTx(t, signer.PublicKey, mint.PublicKey, stranger.PublicKey)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := DecodeTransaction(tt.raw)
			require.NoError(t, err)

			err = SignTransaction(tx, mint, signer)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSignatureMismatch), "got %v", err)
		})
	}
}

func TestSignRoundTrip(t *testing.T) {
	signer := newKeyPair(t)
	mint := newKeyPair(t)

	tx, err := DecodeBase58Transaction(unsignedBase58Tx(t, signer.PublicKey, mint.PublicKey))
	require.NoError(t, err)
	require.NoError(t, SignTransaction(tx, mint, signer))

	encoded, err := EncodeBase58Transaction(tx)
	require.NoError(t, err)

	decoded, err := DecodeBase58Transaction(encoded)
	require.NoError(t, err)
	assert.Equal(t, tx.Signatures, decoded.Signatures)
	assert.NoError(t, decoded.VerifySignatures())

	// 相同密钥重复签名结果不变
	require.NoError(t, SignTransaction(decoded, mint, signer))
	assert.Equal(t, tx.Signatures, decoded.Signatures)

	again, err := EncodeBase58Transaction(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, again)
}

func TestSignBundle(t *testing.T) {
	signer := newKeyPair(t)
	mint := newKeyPair(t)

	var inputs []string
	for i := 0; i < 3; i++ {
		inputs = append(inputs, unsignedBase58Tx(t, signer.PublicKey, mint.PublicKey))
	}

	signed, err := SignBundle(inputs, mint, signer)
	require.NoError(t, err)
	require.Len(t, signed, len(inputs))

	for i := range inputs {
		in, err := DecodeBase58Transaction(inputs[i])
		require.NoError(t, err)
		out, err := DecodeBase58Transaction(signed[i])
		require.NoError(t, err)

		// 每个位置的消息内容保持不变
		inMsg, err := in.Message.MarshalBinary()
		require.NoError(t, err)
		outMsg, err := out.Message.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, inMsg, outMsg, "index %d", i)

		assert.NoError(t, out.VerifySignatures())
		assert.ElementsMatch(t, []solana.PublicKey{mint.PublicKey, signer.PublicKey}, out.Message.AccountKeys[:2])
	}
}

func TestSignBundleErrors(t *testing.T) {
	signer := newKeyPair(t)
	mint := newKeyPair(t)
	stranger := newKeyPair(t)

	_, err := SignBundle([]string{"0OIl"}, mint, signer)
	assert.Error(t, err)

	_, err = SignBundle([]string{
		unsignedBase58Tx(t, signer.PublicKey, mint.PublicKey),
		unsignedBase58Tx(t, stranger.PublicKey, mint.PublicKey),
	}, mint, signer)
	assert.True(t, errors.Is(err, ErrSignatureMismatch), "got %v", err)
}
