package binance

import (
    "context"
    "fmt"
    "net/url"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/httpx"
    "nairaquote/internal/provider"
)

// Config controls the Binance spot provider.
type Config struct {
    Name     string
    Endpoint string // ticker price endpoint
}

// Provider quotes the Binance spot price of <SYM>USDT converted to NGN.
// USDT itself short-circuits to 1 USD without an upstream call.
type Provider struct {
    cfg    Config
    client *httpx.Client
    fx     provider.FXSource
}

func New(cfg Config, hc *httpx.Client, fx provider.FXSource) *Provider {
    if cfg.Name == "" { cfg.Name = "Binance" }
    if cfg.Endpoint == "" { cfg.Endpoint = "https://api.binance.com/api/v3/ticker/price" }
    return &Provider{cfg: cfg, client: hc, fx: fx}
}

func (p *Provider) Name() string { return p.cfg.Name }

type tickerResponse struct {
    Symbol string          `json:"symbol"`
    Price  decimal.Decimal `json:"price"`
}

func (p *Provider) FetchPrice(ctx context.Context, sym asset.Symbol) (decimal.Decimal, error) {
    usd := decimal.NewFromInt(1)
    if sym != asset.USDT {
        u := p.cfg.Endpoint + "?symbol=" + url.QueryEscape(string(sym)+"USDT")
        var tick tickerResponse
        if err := p.client.GetJSON(ctx, u, nil, &tick); err != nil {
            return decimal.Decimal{}, fmt.Errorf("binance: %w", err)
        }
        if !tick.Price.IsPositive() {
            return decimal.Decimal{}, fmt.Errorf("binance: non-positive price %s for %s", tick.Price, sym)
        }
        usd = tick.Price
    }
    ngn, err := p.fx.UsdToNgn(ctx)
    if err != nil {
        return decimal.Decimal{}, fmt.Errorf("binance: %w", err)
    }
    return usd.Mul(ngn), nil
}
