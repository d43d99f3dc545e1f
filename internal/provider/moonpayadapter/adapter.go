package moonpayadapter

import (
    "context"
    "fmt"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/provider"
    "nairaquote/internal/provider/moonpay"
)

type Config struct {
    Name string // display name, default: MoonPay
}

// Adapter exposes the MoonPay API client as a price provider: the listed USD
// price of the asset converted to NGN.
type Adapter struct {
    cfg    Config
    client *moonpay.MoonPayAPIClient
    fx     provider.FXSource
}

func New(cfg Config, client *moonpay.MoonPayAPIClient, fx provider.FXSource) *Adapter {
    if cfg.Name == "" { cfg.Name = "MoonPay" }
    return &Adapter{cfg: cfg, client: client, fx: fx}
}

func (a *Adapter) Name() string { return a.cfg.Name }

func (a *Adapter) FetchPrice(ctx context.Context, sym asset.Symbol) (decimal.Decimal, error) {
    currency, err := a.client.GetCurrency(ctx, sym.Lower())
    if err != nil {
        return decimal.Decimal{}, fmt.Errorf("moonpay: %w", err)
    }
    if !currency.Price.IsPositive() {
        return decimal.Decimal{}, fmt.Errorf("moonpay: non-positive price %s for %s", currency.Price, sym)
    }
    ngn, err := a.fx.UsdToNgn(ctx)
    if err != nil {
        return decimal.Decimal{}, fmt.Errorf("moonpay: %w", err)
    }
    return currency.Price.Mul(ngn), nil
}
