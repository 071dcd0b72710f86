package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	redeemlogicgen "github.com/krazyTry/vyper-go/gen/redeem_logic_farming"
	rlf "github.com/krazyTry/vyper-go/redeem_logic_farming"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("VYPER_CONFIG", "")
	t.Setenv("VYPER_LOG_LEVEL", "error")
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"redeem-logic"}, args...))
	return out.String(), err
}

func TestExecuteFromFlags(t *testing.T) {
	out, err := run(t, "execute",
		"--senior-quantity", "10000", "--junior-quantity", "10000",
		"--old-lp", "2", "--old-ul", "1",
		"--new-lp", "3", "--new-ul", "1",
		"--interest-split", "0.3",
	)
	require.NoError(t, err)
	require.Equal(t, int64(9000), gjson.Get(out, "new_quantity.0").Int())
	require.Equal(t, int64(11000), gjson.Get(out, "new_quantity.1").Int())
	require.Equal(t, int64(0), gjson.Get(out, "fee_quantity").Int())
}

func TestExecuteMissingFairValue(t *testing.T) {
	_, err := run(t, "execute", "--senior-quantity", "1", "--old-lp", "2")
	require.Error(t, err)
}

func TestExecuteFromRequestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"old_quantity": [10000, 10000],
		"old_lp_fair_value": "2", "old_ul_fair_value": "1",
		"new_lp_fair_value": "3", "new_ul_fair_value": "1",
		"interest_split": "0.25"
	}`), 0o600))

	out, err := run(t, "execute", "--request", path)
	require.NoError(t, err)
	require.Equal(t, int64(9166), gjson.Get(out, "new_quantity.0").Int())
	require.Equal(t, int64(10833), gjson.Get(out, "new_quantity.1").Int())
	require.Equal(t, int64(1), gjson.Get(out, "fee_quantity").Int())
}

func TestInstructionUpdate(t *testing.T) {
	config := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()

	out, err := run(t, "instruction",
		"--address", config.String(), "--owner", owner.String(),
		"--interest-split", "0.3",
		"update",
	)
	require.NoError(t, err)

	accounts := gjson.Get(out, "accounts").Array()
	require.Len(t, accounts, 2)
	require.Equal(t, config.String(), accounts[0].Get("pubkey").String())
	require.True(t, accounts[0].Get("writable").Bool())
	require.Equal(t, owner.String(), accounts[1].Get("pubkey").String())
	require.True(t, accounts[1].Get("signer").Bool())

	data, err := base64.StdEncoding.DecodeString(gjson.Get(out, "data").String())
	require.NoError(t, err)
	require.Len(t, data, 8+3*8)
	require.Equal(t, []byte{219, 200, 88, 176, 158, 63, 253, 127}, data[:8])
}

func TestInstructionRejectsBadArgs(t *testing.T) {
	owner := solana.NewWallet().PublicKey().String()

	_, err := run(t, "instruction", "--owner", owner, "--interest-split", "1.5", "update")
	require.Error(t, err)

	_, err = run(t, "instruction", "--owner", owner, "execute")
	require.Error(t, err)
}

// accountsServer answers getMultipleAccounts from accounts.
func accountsServer(t *testing.T, accounts map[string][]byte) string {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		values := []interface{}{}
		for _, address := range gjson.GetBytes(body, "params.0").Array() {
			data, ok := accounts[address.String()]
			if !ok {
				values = append(values, nil)
				continue
			}
			values = append(values, map[string]interface{}{
				"lamports":   1,
				"owner":      redeemlogicgen.ProgramID.String(),
				"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
				"executable": false,
				"rentEpoch":  0,
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      1,
			"result": map[string]interface{}{
				"context": map[string]interface{}{"slot": 1},
				"value":   values,
			},
		})
	}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestConfigCommand(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	accounts := map[string][]byte{}
	var addresses []string
	for _, split := range []float64{0.3, 0.6} {
		cfg, err := rlf.NewRedeemLogicConfig(owner, split, 0, 100)
		require.NoError(t, err)
		data, err := cfg.Encode()
		require.NoError(t, err)
		address := solana.NewWallet().PublicKey().String()
		accounts[address] = data
		addresses = append(addresses, address)
	}
	url := accountsServer(t, accounts)

	out, err := run(t, "--rpc", url, "config", "--address", addresses[0], "--address", addresses[1])
	require.NoError(t, err)
	require.Equal(t, addresses[0], gjson.Get(out, "0.address").String())
	require.Equal(t, "0.3", gjson.Get(out, "0.interest_split").String())
	require.Equal(t, "0.6", gjson.Get(out, "1.interest_split").String())
	require.Equal(t, owner.String(), gjson.Get(out, "1.owner").String())

	_, err = run(t, "--rpc", url, "config", "--address", addresses[0], "--address", solana.NewWallet().PublicKey().String())
	require.Error(t, err)

	_, err = run(t, "--rpc", url, "config")
	require.Error(t, err)
}
