package keys

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var ErrInvalidKeyFormat = errors.New("invalid key format, ensure it is either bs58 or hex encoded")

// KeyPair 解析后的签名密钥对，创建后不可修改
type KeyPair struct {
	PublicKey  solana.PublicKey
	PrivateKey solana.PrivateKey
}

// Address 返回 base58 格式的地址
func (k KeyPair) Address() string {
	return k.PublicKey.String()
}

// Decoder 把文本私钥解码为 64 字节的密钥
type Decoder struct {
	Name   string
	Decode func(text string) ([]byte, error)
}

// DefaultDecoders 按顺序尝试: base58, hex
var DefaultDecoders = []Decoder{
	{Name: "base58", Decode: base58.Decode},
	{Name: "hex", Decode: hex.DecodeString},
}

// Resolve 使用默认解码顺序解析私钥
func Resolve(text string) (KeyPair, error) {
	return ResolveWith(text, DefaultDecoders...)
}

// ResolveWith 依次尝试各个解码器，第一个成功的结果生效
func ResolveWith(text string, decoders ...Decoder) (KeyPair, error) {
	text = strings.TrimSpace(text)

	var failures []string
	for _, d := range decoders {
		raw, err := d.Decode(text)
		if err == nil {
			var kp KeyPair
			kp, err = fromSecretKey(raw)
			if err == nil {
				return kp, nil
			}
		}
		failures = append(failures, fmt.Sprintf("%s: %v", d.Name, err))
	}

	return KeyPair{}, errors.Wrap(ErrInvalidKeyFormat, strings.Join(failures, "; "))
}

// fromSecretKey 校验 64 字节密钥，后 32 字节必须是前 32 字节种子派生的公钥
func fromSecretKey(raw []byte) (KeyPair, error) {
	if len(raw) != ed25519.PrivateKeySize {
		return KeyPair{}, fmt.Errorf("bad secret key size %d", len(raw))
	}

	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return KeyPair{}, errors.New("provided secretKey is invalid")
	}

	priv := solana.PrivateKey(append([]byte(nil), raw...))
	return KeyPair{
		PublicKey:  priv.PublicKey(),
		PrivateKey: priv,
	}, nil
}

// Getter 返回供 Transaction.Sign 使用的私钥查找函数
func Getter(pairs ...KeyPair) func(solana.PublicKey) *solana.PrivateKey {
	return func(pubkey solana.PublicKey) *solana.PrivateKey {
		for i := range pairs {
			if pairs[i].PublicKey.Equals(pubkey) {
				return &pairs[i].PrivateKey
			}
		}
		return nil
	}
}
