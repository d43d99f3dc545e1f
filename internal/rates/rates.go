package rates

import (
    "context"
    "errors"
    "log"
    "sync"
    "time"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/metrics"
    "nairaquote/internal/provider"
)

// ErrNoProviders is returned when no provider produced a usable price.
var ErrNoProviders = errors.New("no usable rate from any provider")

// ProviderPrice is one provider's NGN-per-unit price for the requested asset.
type ProviderPrice struct {
    Provider string
    Price    decimal.Decimal
}

// Rates holds usable provider prices in configured provider order, so that
// downstream tie-breaks are deterministic.
type Rates []ProviderPrice

// Map returns the provider -> price mapping.
func (rs Rates) Map() map[string]decimal.Decimal {
    m := make(map[string]decimal.Decimal, len(rs))
    for _, r := range rs { m[r.Provider] = r.Price }
    return m
}

// Aggregator fans out one fetch per configured provider and joins all of them.
type Aggregator struct {
    Providers []provider.Provider
    // Timeout bounds each provider call so one slow upstream cannot stall the
    // whole round. <= 0 means no per-call bound beyond the parent context.
    Timeout time.Duration
}

// Aggregate queries every provider concurrently for sym and collects the
// prices that came back usable. All providers are awaited; a failed, slow, or
// non-positive result only excludes that provider from the round. An empty
// result yields ErrNoProviders.
func (a *Aggregator) Aggregate(ctx context.Context, sym asset.Symbol) (Rates, error) {
    type result struct {
        price decimal.Decimal
        err   error
    }
    results := make([]result, len(a.Providers))

    var wg sync.WaitGroup
    for i, p := range a.Providers {
        wg.Add(1)
        go func(i int, p provider.Provider) {
            defer wg.Done()
            cctx := ctx
            if a.Timeout > 0 {
                var cancel context.CancelFunc
                cctx, cancel = context.WithTimeout(ctx, a.Timeout)
                defer cancel()
            }
            start := time.Now()
            price, err := p.FetchPrice(cctx, sym)
            metrics.ProviderFetchSeconds.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())
            results[i] = result{price: price, err: err}
        }(i, p)
    }
    wg.Wait()

    out := make(Rates, 0, len(a.Providers))
    for i, p := range a.Providers {
        r := results[i]
        if r.err != nil {
            metrics.ProviderFailuresTotal.WithLabelValues(p.Name()).Inc()
            log.Printf("provider %s: %v", p.Name(), r.err)
            continue
        }
        if !r.price.IsPositive() {
            metrics.ProviderFailuresTotal.WithLabelValues(p.Name()).Inc()
            log.Printf("provider %s: discarding non-positive price %s", p.Name(), r.price)
            continue
        }
        out = append(out, ProviderPrice{Provider: p.Name(), Price: r.price})
    }
    if len(out) == 0 {
        return nil, ErrNoProviders
    }
    return out, nil
}
