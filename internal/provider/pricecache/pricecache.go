package pricecache

import (
    "context"
    "time"

    gocache "github.com/patrickmn/go-cache"
    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/provider"
)

// Provider caches successful prices per asset for a TTL. Errors are never
// cached, so a failing upstream is retried on the next aggregation round.
type Provider struct {
    P     provider.Provider
    cache *gocache.Cache
}

func New(p provider.Provider, ttl time.Duration) *Provider {
    return &Provider{P: p, cache: gocache.New(ttl, 2*ttl)}
}

func (c *Provider) Name() string { return c.P.Name() }

func (c *Provider) FetchPrice(ctx context.Context, sym asset.Symbol) (decimal.Decimal, error) {
    if v, ok := c.cache.Get(string(sym)); ok {
        return v.(decimal.Decimal), nil
    }
    price, err := c.P.FetchPrice(ctx, sym)
    if err != nil {
        return decimal.Decimal{}, err
    }
    c.cache.Set(string(sym), price, gocache.DefaultExpiration)
    return price, nil
}
