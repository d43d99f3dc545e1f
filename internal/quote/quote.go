package quote

import (
    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/rates"
)

// PlatformFeeRate is the fixed 0.9% deduction applied to the gross NGN value.
var PlatformFeeRate = decimal.New(9, -3)

// Quote is the full payout breakdown for one request. Monetary fields carry
// full precision; rounding to 2 decimals happens at the presentation boundary.
type Quote struct {
    Asset        asset.Symbol
    Amount       decimal.Decimal
    Rates        rates.Rates
    BestProvider string
    Rate         decimal.Decimal
    GrossNgn     decimal.Decimal
    Fee          decimal.Decimal
    NetNgn       decimal.Decimal
    Memo         string
}

// Best returns the provider with the strictly highest price. Exact ties keep
// the first-seen entry, so results are deterministic for ordered rates.
// rs must be non-empty.
func Best(rs rates.Rates) (string, decimal.Decimal) {
    best := rs[0]
    for _, r := range rs[1:] {
        if r.Price.GreaterThan(best.Price) {
            best = r
        }
    }
    return best.Provider, best.Price
}

// Build derives the payout quote from the aggregated rates. amount <= 0 is
// accepted and yields a zero-valued quote.
func Build(sym asset.Symbol, amount decimal.Decimal, rs rates.Rates, memo string) Quote {
    bestProvider, rate := Best(rs)
    gross := amount.Mul(rate)
    if amount.Sign() <= 0 {
        gross = decimal.Zero
    }
    fee := gross.Mul(PlatformFeeRate)
    return Quote{
        Asset:        sym,
        Amount:       amount,
        Rates:        rs,
        BestProvider: bestProvider,
        Rate:         rate,
        GrossNgn:     gross,
        Fee:          fee,
        NetNgn:       gross.Sub(fee),
        Memo:         memo,
    }
}

// Round2 rounds a monetary value to 2 decimals, half up.
func Round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
