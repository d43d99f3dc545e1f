package quote

import (
    "testing"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/rates"
)

func rs(pairs ...string) rates.Rates {
    out := make(rates.Rates, 0, len(pairs)/2)
    for i := 0; i < len(pairs); i += 2 {
        out = append(out, rates.ProviderPrice{Provider: pairs[i], Price: decimal.RequireFromString(pairs[i+1])})
    }
    return out
}

func TestBest_HighestWins(t *testing.T) {
    name, price := Best(rs("Binance", "1680.00", "MoonPay", "1675.00", "Wyre", "1690.25"))
    if name != "Wyre" || price.String() != "1690.25" {
        t.Fatalf("best = %s %s", name, price)
    }
}

func TestBest_TieKeepsFirstSeen(t *testing.T) {
    name, _ := Best(rs("MoonPay", "1680.00", "Binance", "1680.00"))
    if name != "MoonPay" {
        t.Fatalf("best = %s, want first-seen MoonPay", name)
    }
}

func TestBuild_EndToEndExample(t *testing.T) {
    q := Build(asset.USDT, decimal.NewFromInt(100), rs("Binance", "1680.00", "MoonPay", "1675.00"), "123456")
    if q.BestProvider != "Binance" {
        t.Fatalf("bestProvider = %s", q.BestProvider)
    }
    for _, tc := range []struct {
        name string
        got  decimal.Decimal
        want string
    }{
        {"rate", Round2(q.Rate), "1680"},
        {"gross", Round2(q.GrossNgn), "168000"},
        {"fee", Round2(q.Fee), "1512"},
        {"net", Round2(q.NetNgn), "166488"},
    } {
        if tc.got.String() != tc.want {
            t.Fatalf("%s = %s, want %s", tc.name, tc.got, tc.want)
        }
    }
    if q.Memo != "123456" {
        t.Fatalf("memo = %q", q.Memo)
    }
}

func TestBuild_FeePlusNetEqualsGross(t *testing.T) {
    amounts := []string{"0.00000001", "0.5", "1", "3.337", "100", "99999.99"}
    prices := []string{"0.01", "1652.23", "1680.5", "104000000.77"}
    cent := decimal.RequireFromString("0.01")
    for _, a := range amounts {
        for _, p := range prices {
            q := Build(asset.BTC, decimal.RequireFromString(a), rs("Binance", p), "111111")
            gross, fee, net := Round2(q.GrossNgn), Round2(q.Fee), Round2(q.NetNgn)
            if diff := fee.Add(net).Sub(gross).Abs(); diff.GreaterThan(cent) {
                t.Fatalf("amount=%s price=%s: fee %s + net %s vs gross %s (diff %s)", a, p, fee, net, gross, diff)
            }
            if !q.GrossNgn.Equal(q.Amount.Mul(q.Rate)) {
                t.Fatalf("gross drifted from amount*rate")
            }
        }
    }
}

func TestBuild_NonPositiveAmountYieldsZeroQuote(t *testing.T) {
    for _, a := range []string{"0", "-5"} {
        q := Build(asset.USDT, decimal.RequireFromString(a), rs("Binance", "1680.00"), "222222")
        if !q.GrossNgn.IsZero() || !q.Fee.IsZero() || !q.NetNgn.IsZero() {
            t.Fatalf("amount %s: non-zero quote %+v", a, q)
        }
        if q.BestProvider != "Binance" || q.Rate.String() != "1680" {
            t.Fatalf("rate info missing for zero amount: %+v", q)
        }
    }
}

func TestRound2_HalfUp(t *testing.T) {
    cases := map[string]string{
        "1.005":  "1.01",
        "1.004":  "1",
        "2.675":  "2.68",
        "166488": "166488",
    }
    for in, want := range cases {
        if got := Round2(decimal.RequireFromString(in)).String(); got != want {
            t.Fatalf("Round2(%s) = %s, want %s", in, got, want)
        }
    }
}
