package pricecache

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
)

type countingProvider struct {
    calls int
    price decimal.Decimal
    err   error
}

func (c *countingProvider) Name() string { return "counting" }
func (c *countingProvider) FetchPrice(context.Context, asset.Symbol) (decimal.Decimal, error) {
    c.calls++
    return c.price, c.err
}

func TestFetchPrice_CachesSuccess(t *testing.T) {
    inner := &countingProvider{price: decimal.NewFromInt(1680)}
    p := New(inner, time.Minute)

    for i := 0; i < 3; i++ {
        price, err := p.FetchPrice(t.Context(), asset.USDT)
        if err != nil {
            t.Fatalf("call %d: %v", i, err)
        }
        if !price.Equal(inner.price) {
            t.Fatalf("price = %s", price)
        }
    }
    if inner.calls != 1 {
        t.Fatalf("underlying called %d times, want 1", inner.calls)
    }
}

func TestFetchPrice_PerAssetKeys(t *testing.T) {
    inner := &countingProvider{price: decimal.NewFromInt(1)}
    p := New(inner, time.Minute)

    p.FetchPrice(t.Context(), asset.USDT)
    p.FetchPrice(t.Context(), asset.BTC)
    if inner.calls != 2 {
        t.Fatalf("underlying called %d times, want 2", inner.calls)
    }
}

func TestFetchPrice_ErrorsNotCached(t *testing.T) {
    inner := &countingProvider{err: errors.New("down")}
    p := New(inner, time.Minute)

    p.FetchPrice(t.Context(), asset.USDT)
    inner.err = nil
    inner.price = decimal.NewFromInt(2)
    if _, err := p.FetchPrice(t.Context(), asset.USDT); err != nil {
        t.Fatalf("second call should retry: %v", err)
    }
    if inner.calls != 2 {
        t.Fatalf("underlying called %d times, want 2", inner.calls)
    }
}
