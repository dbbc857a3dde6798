package chainTx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pump_launch/internal/model"
)

var testToken = model.TokenInfo{Name: "Pepe Launch", Symbol: "PEPE", Uri: "https://ipfs.io/ipfs/QmTest"}

func marshalRequest(t *testing.T, req model.TradeRequest) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestBuildTradeRequestBundled(t *testing.T) {
	signer := newKeyPair(t)
	mint := newKeyPair(t)
	tip := 0.0005

	options := model.TradeOptions{"amount": 1.5, "slippage": 10, "priorityFee": 0.1, "skipPreflight": "true"}
	req := BuildTradeRequest(signer, mint, testToken, options, &tip)

	body := marshalRequest(t, req)
	assert.Equal(t, map[string]interface{}{
		"publicKey": signer.Address(),
		"action":    "create",
		"tokenMetadata": map[string]interface{}{
			"name":   "Pepe Launch",
			"symbol": "PEPE",
			"uri":    "https://ipfs.io/ipfs/QmTest",
		},
		"mint":             mint.Address(),
		"denominatedInSol": "true",
		"amount":           1.5,
		"slippage":         float64(10),
		"priorityFee":      0.0005,
		"pool":             "pump",
	}, body)

	// 修改原始参数不影响已构建的请求
	tip = 1
	options["amount"] = 99
	assert.Equal(t, 0.0005, *req.PriorityFee)
	assert.Equal(t, 1.5, req.Amount)
}

func TestBuildTradeRequestDirect(t *testing.T) {
	signer := newKeyPair(t)
	mint := newKeyPair(t)

	options := model.TradeOptions{
		"amount":           1,
		"slippage":         10,
		"priorityFee":      0.0005,
		"pool":             "raydium",
		"denominatedInSol": "false",
		"jitoOnly":         "true",
	}
	req := BuildTradeRequest(signer, mint, testToken, options, nil)
	body := marshalRequest(t, req)

	assert.Equal(t, signer.Address(), body["publicKey"])
	assert.Equal(t, mint.Address(), body["mint"])
	assert.Equal(t, "create", body["action"])
	assert.Equal(t, float64(1), body["amount"])
	assert.Equal(t, float64(10), body["slippage"])
	assert.Equal(t, 0.0005, body["priorityFee"])
	assert.Equal(t, "true", body["jitoOnly"])
	// denominatedInSol 和 pool 在展开之后写入，始终生效
	assert.Equal(t, "true", body["denominatedInSol"])
	assert.Equal(t, "pump", body["pool"])

	options["amount"] = 2
	assert.Equal(t, 1, req.Options["amount"])
}

func TestBuildTradeRequestDirectOverridesLeadingFields(t *testing.T) {
	signer := newKeyPair(t)
	mint := newKeyPair(t)

	req := BuildTradeRequest(signer, mint, testToken, model.TradeOptions{"action": "buy", "amount": 1}, nil)
	body := marshalRequest(t, req)
	assert.Equal(t, "buy", body["action"])
	assert.Equal(t, mint.Address(), body["mint"])
}

func TestBuildTradeRequestDirectWithoutOptions(t *testing.T) {
	signer := newKeyPair(t)
	mint := newKeyPair(t)

	body := marshalRequest(t, BuildTradeRequest(signer, mint, testToken, nil, nil))
	assert.NotContains(t, body, "amount")
	assert.NotContains(t, body, "priorityFee")
	assert.Equal(t, "pump", body["pool"])
}
