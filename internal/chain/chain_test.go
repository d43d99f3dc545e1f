package chain

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "nairaquote/internal/httpx"
)

func TestCheckDeposit_ReportsBalance(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        var req rpcRequest
        if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
            t.Errorf("decode rpc request: %v", err)
        }
        if req.Method != "eth_getBalance" {
            t.Errorf("method = %q", req.Method)
        }
        // 1.5 BNB in wei
        w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x14d1120d7b160000"}`))
    }))
    defer srv.Close()

    c := New(Config{RPCURL: srv.URL, DepositAddress: "0xabc"}, httpx.New(2*time.Second))
    st, err := c.CheckDeposit(t.Context(), "123456")
    if err != nil {
        t.Fatalf("CheckDeposit: %v", err)
    }
    if st.Status != "active" || st.CheckedMemo != "123456" || st.Address != "0xabc" {
        t.Fatalf("unexpected status: %+v", st)
    }
    if st.BalanceBNB != "1.5" {
        t.Fatalf("balance = %s", st.BalanceBNB)
    }
}

func TestCheckDeposit_RPCError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"overload"}}`))
    }))
    defer srv.Close()

    c := New(Config{RPCURL: srv.URL, DepositAddress: "0xabc"}, httpx.New(2*time.Second))
    if _, err := c.CheckDeposit(t.Context(), "123456"); err == nil {
        t.Fatal("want rpc error")
    }
}

func TestWeiToBNB_BadInput(t *testing.T) {
    for _, in := range []string{"", "0x", "0xzz"} {
        if _, err := weiToBNB(in); err == nil {
            t.Fatalf("weiToBNB(%q) should fail", in)
        }
    }
}
