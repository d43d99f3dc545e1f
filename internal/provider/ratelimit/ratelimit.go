package ratelimit

import (
    "context"

    "github.com/shopspring/decimal"
    "golang.org/x/time/rate"

    "nairaquote/internal/asset"
    "nairaquote/internal/provider"
)

// Provider wraps a provider and gates calls through a token-bucket limiter.
// Callers block until a token is available or the context is canceled.
type Provider struct {
    P       provider.Provider
    Limiter *rate.Limiter
}

// New builds a limited provider allowing maxPerMinute calls with the given burst.
func New(p provider.Provider, maxPerMinute, burst int) *Provider {
    if burst <= 0 { burst = 1 }
    return &Provider{P: p, Limiter: rate.NewLimiter(rate.Limit(float64(maxPerMinute)/60.0), burst)}
}

func (p *Provider) Name() string { return p.P.Name() }

func (p *Provider) FetchPrice(ctx context.Context, sym asset.Symbol) (decimal.Decimal, error) {
    if p.Limiter != nil {
        if err := p.Limiter.Wait(ctx); err != nil {
            return decimal.Decimal{}, err
        }
    }
    return p.P.FetchPrice(ctx, sym)
}
