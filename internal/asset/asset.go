package asset

import (
    "fmt"
    "strings"
)

// Symbol is a supported cryptocurrency ticker in canonical upper-case form.
type Symbol string

const (
    USDT Symbol = "USDT"
    BTC  Symbol = "BTC"
    ETH  Symbol = "ETH"
    BNB  Symbol = "BNB"
    TRX  Symbol = "TRX"
    DOGE Symbol = "DOGE"
)

var supported = map[Symbol]struct{}{
    USDT: {}, BTC: {}, ETH: {}, BNB: {}, TRX: {}, DOGE: {},
}

// Parse validates s against the supported set. Input is case-insensitive.
func Parse(s string) (Symbol, error) {
    sym := Symbol(strings.ToUpper(strings.TrimSpace(s)))
    if _, ok := supported[sym]; !ok {
        return "", fmt.Errorf("unsupported cryptocurrency symbol: %q", s)
    }
    return sym, nil
}

func (s Symbol) String() string { return string(s) }

// Lower returns the symbol in the lower-case form some upstreams expect.
func (s Symbol) Lower() string { return strings.ToLower(string(s)) }
