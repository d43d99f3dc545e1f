// Package chain probes the BSC deposit address over JSON-RPC. It does not scan
// blocks for memos; it only verifies the RPC endpoint is reachable and reports
// the current balance alongside the checked memo.
package chain

import (
    "context"
    "fmt"
    "math/big"
    "strings"

    "github.com/shopspring/decimal"

    "nairaquote/internal/httpx"
)

type Config struct {
    RPCURL         string
    DepositAddress string
}

type Client struct {
    cfg    Config
    client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Client {
    if cfg.RPCURL == "" { cfg.RPCURL = "https://bsc-dataseed.binance.org/" }
    return &Client{cfg: cfg, client: hc}
}

// DepositStatus is the probe result for one memo.
type DepositStatus struct {
    Status      string `json:"status"`
    Address     string `json:"address"`
    CheckedMemo string `json:"checked_memo"`
    RPCStatus   string `json:"rpc_status"`
    BalanceBNB  string `json:"balance_check"`
}

type rpcRequest struct {
    JSONRPC string `json:"jsonrpc"`
    ID      int    `json:"id"`
    Method  string `json:"method"`
    Params  []any  `json:"params"`
}

type rpcResponse struct {
    Result string `json:"result"`
    Error  *struct {
        Code    int    `json:"code"`
        Message string `json:"message"`
    } `json:"error"`
}

// CheckDeposit fetches the deposit address balance as a liveness probe for the
// given memo.
func (c *Client) CheckDeposit(ctx context.Context, memo string) (DepositStatus, error) {
    req := rpcRequest{
        JSONRPC: "2.0",
        ID:      1,
        Method:  "eth_getBalance",
        Params:  []any{c.cfg.DepositAddress, "latest"},
    }
    var resp rpcResponse
    if err := c.client.PostJSON(ctx, c.cfg.RPCURL, req, &resp); err != nil {
        return DepositStatus{}, fmt.Errorf("bsc rpc: %w", err)
    }
    if resp.Error != nil {
        return DepositStatus{}, fmt.Errorf("bsc rpc: code=%d msg=%q", resp.Error.Code, resp.Error.Message)
    }
    balance, err := weiToBNB(resp.Result)
    if err != nil {
        return DepositStatus{}, fmt.Errorf("bsc rpc: %w", err)
    }
    return DepositStatus{
        Status:      "active",
        Address:     c.cfg.DepositAddress,
        CheckedMemo: memo,
        RPCStatus:   "connected",
        BalanceBNB:  balance.String(),
    }, nil
}

func weiToBNB(hexWei string) (decimal.Decimal, error) {
    s := strings.TrimPrefix(hexWei, "0x")
    if s == "" {
        return decimal.Decimal{}, fmt.Errorf("empty balance result")
    }
    wei, ok := new(big.Int).SetString(s, 16)
    if !ok {
        return decimal.Decimal{}, fmt.Errorf("bad balance result %q", hexWei)
    }
    return decimal.NewFromBigInt(wei, -18), nil
}
