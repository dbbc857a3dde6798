package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedTransferTx(t *testing.T) *solana.Transaction {
	t.Helper()
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	tx, err := solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(1, payer.PublicKey(), solana.NewWallet().PublicKey()).Build(),
		},
		solana.Hash{},
		solana.TransactionPayer(payer.PublicKey()),
	)
	require.NoError(t, err)

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(payer.PublicKey()) {
			return &payer
		}
		return nil
	})
	require.NoError(t, err)
	return tx
}

func TestClientBroadcast(t *testing.T) {
	tx := signedTransferTx(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage   `json:"id"`
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sendTransaction", req.Method)
		require.NotEmpty(t, req.Params)

		var encoded string
		require.NoError(t, json.Unmarshal(req.Params[0], &encoded))
		raw, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		sent, err := solana.TransactionFromBytes(raw)
		require.NoError(t, err)
		assert.Equal(t, tx.Signatures[0], sent.Signatures[0])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  tx.Signatures[0].String(),
		})
	}))
	defer server.Close()

	client := New(server.URL)
	defer client.Close()

	sig, err := client.Broadcast(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, tx.Signatures[0], sig)
}

func TestClientBroadcastRPCError(t *testing.T) {
	tx := signedTransferTx(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID json.RawMessage `json:"id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]interface{}{"code": -32002, "message": "Transaction simulation failed"},
		})
	}))
	defer server.Close()

	_, err := New(server.URL).Broadcast(context.Background(), tx)
	assert.Error(t, err)
}
