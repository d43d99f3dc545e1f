package banxa

import (
    "context"
    "fmt"
    "net/url"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/httpx"
    "nairaquote/internal/provider"
)

// Config controls the Banxa provider.
type Config struct {
    Name     string
    Endpoint string
    APIKey   string
}

// Provider quotes the Banxa USD price of an asset converted to NGN.
type Provider struct {
    cfg    Config
    client *httpx.Client
    fx     provider.FXSource
}

func New(cfg Config, hc *httpx.Client, fx provider.FXSource) *Provider {
    if cfg.Name == "" { cfg.Name = "Banxa" }
    if cfg.Endpoint == "" { cfg.Endpoint = "https://api.banxa.com/api/price" }
    return &Provider{cfg: cfg, client: hc, fx: fx}
}

func (p *Provider) Name() string { return p.cfg.Name }

type priceResponse struct {
    Data struct {
        Price decimal.Decimal `json:"price"`
    } `json:"data"`
}

func (p *Provider) FetchPrice(ctx context.Context, sym asset.Symbol) (decimal.Decimal, error) {
    if p.cfg.APIKey == "" {
        return decimal.Decimal{}, fmt.Errorf("banxa: missing API key")
    }
    q := url.Values{}
    q.Set("digital_currency", string(sym))
    q.Set("fiat_currency", "USD")
    var resp priceResponse
    headers := map[string]string{"x-api-key": p.cfg.APIKey}
    if err := p.client.GetJSON(ctx, p.cfg.Endpoint+"?"+q.Encode(), headers, &resp); err != nil {
        return decimal.Decimal{}, fmt.Errorf("banxa: %w", err)
    }
    if !resp.Data.Price.IsPositive() {
        return decimal.Decimal{}, fmt.Errorf("banxa: non-positive price %s for %s", resp.Data.Price, sym)
    }
    ngn, err := p.fx.UsdToNgn(ctx)
    if err != nil {
        return decimal.Decimal{}, fmt.Errorf("banxa: %w", err)
    }
    return resp.Data.Price.Mul(ngn), nil
}
