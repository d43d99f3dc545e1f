package wyre

import (
    "context"
    "fmt"
    "net/url"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/httpx"
    "nairaquote/internal/provider"
)

// Config controls the Wyre provider.
type Config struct {
    Name     string
    Endpoint string
    APIKey   string
}

// Provider quotes the Wyre <SYM>USD rate converted to NGN. The upstream
// returns one flat object keyed by currency pair.
type Provider struct {
    cfg    Config
    client *httpx.Client
    fx     provider.FXSource
}

func New(cfg Config, hc *httpx.Client, fx provider.FXSource) *Provider {
    if cfg.Name == "" { cfg.Name = "Wyre" }
    if cfg.Endpoint == "" { cfg.Endpoint = "https://api.sendwyre.com/v3/rates" }
    return &Provider{cfg: cfg, client: hc, fx: fx}
}

func (p *Provider) Name() string { return p.cfg.Name }

func (p *Provider) FetchPrice(ctx context.Context, sym asset.Symbol) (decimal.Decimal, error) {
    if p.cfg.APIKey == "" {
        return decimal.Decimal{}, fmt.Errorf("wyre: missing API key")
    }
    u := p.cfg.Endpoint + "?apiKey=" + url.QueryEscape(p.cfg.APIKey)
    var pairs map[string]decimal.Decimal
    if err := p.client.GetJSON(ctx, u, nil, &pairs); err != nil {
        return decimal.Decimal{}, fmt.Errorf("wyre: %w", err)
    }
    usd, ok := pairs[string(sym)+"USD"]
    if !ok {
        return decimal.Decimal{}, fmt.Errorf("wyre: no %sUSD pair in response", sym)
    }
    if !usd.IsPositive() {
        return decimal.Decimal{}, fmt.Errorf("wyre: non-positive price %s for %s", usd, sym)
    }
    ngn, err := p.fx.UsdToNgn(ctx)
    if err != nil {
        return decimal.Decimal{}, fmt.Errorf("wyre: %w", err)
    }
    return usd.Mul(ngn), nil
}
