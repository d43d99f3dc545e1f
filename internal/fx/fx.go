package fx

import (
    "context"
    "fmt"
    "time"

    gocache "github.com/patrickmn/go-cache"
    "github.com/shopspring/decimal"
    "golang.org/x/sync/singleflight"

    "nairaquote/internal/httpx"
)

const cacheKey = "usd_ngn"

// Config controls the FX converter.
type Config struct {
    // Endpoint is the USD base rates endpoint (open.er-api.com shape).
    Endpoint string
    // TTL bounds how long a fetched rate may be reused. <= 0 disables caching.
    TTL time.Duration
}

// Converter resolves the USD→NGN factor shared by USD-denominated providers.
// Concurrent refreshes are coalesced so one aggregation round performs at most
// one upstream fetch; every caller still receives the fetch error independently.
type Converter struct {
    cfg    Config
    client *httpx.Client
    cache  *gocache.Cache
    sf     singleflight.Group
}

func New(cfg Config, hc *httpx.Client) *Converter {
    if cfg.Endpoint == "" { cfg.Endpoint = "https://open.er-api.com/v6/latest/USD" }
    c := &Converter{cfg: cfg, client: hc}
    if cfg.TTL > 0 {
        c.cache = gocache.New(cfg.TTL, 2*cfg.TTL)
    }
    return c
}

type apiResponse struct {
    Rates map[string]decimal.Decimal `json:"rates"`
}

// UsdToNgn returns the current USD→NGN rate, from cache when still fresh.
func (c *Converter) UsdToNgn(ctx context.Context) (decimal.Decimal, error) {
    if c.cache != nil {
        if v, ok := c.cache.Get(cacheKey); ok {
            return v.(decimal.Decimal), nil
        }
    }
    v, err, _ := c.sf.Do(cacheKey, func() (any, error) {
        rate, err := c.fetch(ctx)
        if err != nil { return nil, err }
        if c.cache != nil {
            c.cache.Set(cacheKey, rate, gocache.DefaultExpiration)
        }
        return rate, nil
    })
    if err != nil {
        return decimal.Decimal{}, fmt.Errorf("fx: %w", err)
    }
    return v.(decimal.Decimal), nil
}

func (c *Converter) fetch(ctx context.Context) (decimal.Decimal, error) {
    var api apiResponse
    if err := c.client.GetJSON(ctx, c.cfg.Endpoint, nil, &api); err != nil {
        return decimal.Decimal{}, err
    }
    rate, ok := api.Rates["NGN"]
    if !ok || !rate.IsPositive() {
        return decimal.Decimal{}, fmt.Errorf("missing or non-positive NGN rate in %s response", c.cfg.Endpoint)
    }
    return rate, nil
}
