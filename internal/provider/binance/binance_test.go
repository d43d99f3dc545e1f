package binance

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/httpx"
)

type fixedFX struct {
    rate decimal.Decimal
    err  error
}

func (f fixedFX) UsdToNgn(context.Context) (decimal.Decimal, error) { return f.rate, f.err }

func TestFetchPrice_SpotTimesFX(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if got := r.URL.Query().Get("symbol"); got != "BTCUSDT" {
            t.Errorf("symbol = %q", got)
        }
        w.Write([]byte(`{"symbol":"BTCUSDT","price":"64000.00"}`))
    }))
    defer srv.Close()

    p := New(Config{Endpoint: srv.URL}, httpx.New(2*time.Second), fixedFX{rate: decimal.NewFromInt(1600)})
    price, err := p.FetchPrice(t.Context(), asset.BTC)
    if err != nil {
        t.Fatalf("FetchPrice: %v", err)
    }
    if want := decimal.NewFromInt(102400000); !price.Equal(want) {
        t.Fatalf("price = %s, want %s", price, want)
    }
}

func TestFetchPrice_USDTShortCircuit(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        t.Error("USDT must not hit the upstream")
    }))
    defer srv.Close()

    p := New(Config{Endpoint: srv.URL}, httpx.New(2*time.Second), fixedFX{rate: decimal.RequireFromString("1652.23")})
    price, err := p.FetchPrice(t.Context(), asset.USDT)
    if err != nil {
        t.Fatalf("FetchPrice: %v", err)
    }
    if price.String() != "1652.23" {
        t.Fatalf("price = %s", price)
    }
}

func TestFetchPrice_FXFailure(t *testing.T) {
    p := New(Config{}, httpx.New(2*time.Second), fixedFX{err: context.DeadlineExceeded})
    if _, err := p.FetchPrice(t.Context(), asset.USDT); err == nil {
        t.Fatal("want error when FX is unavailable")
    }
}

func TestFetchPrice_NonPositivePrice(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"symbol":"BTCUSDT","price":"0"}`))
    }))
    defer srv.Close()

    p := New(Config{Endpoint: srv.URL}, httpx.New(2*time.Second), fixedFX{rate: decimal.NewFromInt(1600)})
    if _, err := p.FetchPrice(t.Context(), asset.BTC); err == nil {
        t.Fatal("want error for zero price")
    }
}
