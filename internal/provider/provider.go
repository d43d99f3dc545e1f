package provider

import (
    "context"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
)

// Provider fetches the NGN-per-unit price of an asset from one upstream.
// A failed or unusable fetch is reported as an error; the aggregator recovers
// it by excluding the provider from that round.
type Provider interface {
    Name() string
    FetchPrice(ctx context.Context, sym asset.Symbol) (decimal.Decimal, error)
}

// FXSource resolves the USD→NGN factor shared by USD-denominated providers.
type FXSource interface {
    UsdToNgn(ctx context.Context) (decimal.Decimal, error)
}
