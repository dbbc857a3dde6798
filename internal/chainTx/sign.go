package chainTx

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"pump_launch/internal/keys"
)

var ErrSignatureMismatch = errors.New("transaction signers do not match mint and signer keys")

// DecodeTransaction 反序列化 trade-local 返回的交易字节
func DecodeTransaction(raw []byte) (*solana.Transaction, error) {
	tx, err := solana.TransactionFromBytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "解析交易失败")
	}
	return tx, nil
}

// DecodeBase58Transaction 解码 base58 编码的交易
func DecodeBase58Transaction(encoded string) (*solana.Transaction, error) {
	raw, err := base58.Decode(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "base58 解码交易失败")
	}
	return DecodeTransaction(raw)
}

// EncodeBase58Transaction 序列化并以 base58 编码交易
func EncodeBase58Transaction(tx *solana.Transaction) (string, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", errors.Wrap(err, "序列化交易失败")
	}
	return base58.Encode(raw), nil
}

// SignTransaction 用 mint 和 signer 两个密钥签名。
// 交易要求的签名者必须恰好是这两个地址
func SignTransaction(tx *solana.Transaction, mint, signer keys.KeyPair) error {
	required, err := requiredSigners(tx)
	if err != nil {
		return err
	}

	provided := map[solana.PublicKey]bool{
		mint.PublicKey:   true,
		signer.PublicKey: true,
	}
	if len(required) != len(provided) {
		return errors.Wrapf(ErrSignatureMismatch, "交易需要 %d 个签名者: %v", len(required), required)
	}
	for _, key := range required {
		if !provided[key] {
			return errors.Wrapf(ErrSignatureMismatch, "未知签名者 %s", key)
		}
	}

	// trade-local 返回的签名是占位符，重新按签名者顺序填充
	tx.Signatures = nil
	if _, err := tx.Sign(keys.Getter(mint, signer)); err != nil {
		return errors.Wrapf(ErrSignatureMismatch, "签名交易失败: %v", err)
	}
	return nil
}

func requiredSigners(tx *solana.Transaction) ([]solana.PublicKey, error) {
	n := int(tx.Message.Header.NumRequiredSignatures)
	if n == 0 || n > len(tx.Message.AccountKeys) {
		return nil, errors.Wrapf(ErrSignatureMismatch, "交易签名者数量无效: %d", n)
	}
	return tx.Message.AccountKeys[:n], nil
}

// SignBundle 逐笔解码、签名、重新编码，输出顺序与输入一致
func SignBundle(encodedTxs []string, mint, signer keys.KeyPair) ([]string, error) {
	signed := make([]string, 0, len(encodedTxs))
	for i, encoded := range encodedTxs {
		tx, err := DecodeBase58Transaction(encoded)
		if err != nil {
			return nil, errors.Wrapf(err, "第 %d 笔交易", i)
		}
		if err := SignTransaction(tx, mint, signer); err != nil {
			return nil, errors.Wrapf(err, "第 %d 笔交易", i)
		}
		out, err := EncodeBase58Transaction(tx)
		if err != nil {
			return nil, errors.Wrapf(err, "第 %d 笔交易", i)
		}
		signed = append(signed, out)
	}
	return signed, nil
}
