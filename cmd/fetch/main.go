package main

import (
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "log"
    "os"
    "time"

    "github.com/joho/godotenv"
    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/config"
    "nairaquote/internal/fx"
    "nairaquote/internal/httpx"
    "nairaquote/internal/memo"
    "nairaquote/internal/provider"
    "nairaquote/internal/provider/banxa"
    "nairaquote/internal/provider/binance"
    "nairaquote/internal/provider/moonpay"
    "nairaquote/internal/provider/moonpayadapter"
    "nairaquote/internal/provider/wyre"
    "nairaquote/internal/quote"
    "nairaquote/internal/rates"
)

func main() {
    var symRaw string
    var amountRaw string
    var timeout int
    var configPath string

    flag.StringVar(&symRaw, "asset", getenv("ASSET", "USDT"), "crypto asset symbol (USDT, BTC, ETH, BNB, TRX, DOGE)")
    flag.StringVar(&amountRaw, "amount", getenv("AMOUNT", "100"), "crypto amount to quote")
    flag.IntVar(&timeout, "timeout", getenvInt("REQUEST_TIMEOUT_SEC", 15), "request timeout seconds")
    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
    flag.Parse()

    _ = godotenv.Load()

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }
    if timeout != 0 { cfg.Server.RequestTimeoutSec = timeout }

    sym, err := asset.Parse(symRaw)
    if err != nil { log.Fatalf("asset: %v", err) }
    amount, err := decimal.NewFromString(amountRaw)
    if err != nil { log.Fatalf("amount: %v", err) }

    httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

    fxc := fx.New(fx.Config{
        Endpoint: cfg.FX.Endpoint,
        TTL:      time.Duration(cfg.FX.CacheTTLSeconds) * time.Second,
    }, httpClient)

    providers := make([]provider.Provider, 0, 4)
    if cfg.Binance.Enabled {
        providers = append(providers, binance.New(binance.Config{Endpoint: cfg.Binance.Endpoint}, httpClient, fxc))
    }
    if cfg.MoonPay.Enabled && cfg.MoonPay.APIKey != "" {
        opts := []moonpay.MoonPayAPIClientOption{moonpay.WithHTTPClient(httpClient.HTTP)}
        if cfg.MoonPay.Endpoint != "" { opts = append(opts, moonpay.WithBaseURL(cfg.MoonPay.Endpoint)) }
        mpClient, err := moonpay.NewMoonPayAPIClient(cfg.MoonPay.APIKey, opts...)
        if err != nil { log.Fatalf("moonpay client: %v", err) }
        providers = append(providers, moonpayadapter.New(moonpayadapter.Config{}, mpClient, fxc))
    }
    if cfg.Banxa.Enabled && cfg.Banxa.APIKey != "" {
        providers = append(providers, banxa.New(banxa.Config{Endpoint: cfg.Banxa.Endpoint, APIKey: cfg.Banxa.APIKey}, httpClient, fxc))
    }
    if cfg.Wyre.Enabled && cfg.Wyre.APIKey != "" {
        providers = append(providers, wyre.New(wyre.Config{Endpoint: cfg.Wyre.Endpoint, APIKey: cfg.Wyre.APIKey}, httpClient, fxc))
    }
    if len(providers) == 0 {
        log.Fatal("no providers configured; set config.json API keys or env overrides")
    }

    agg := &rates.Aggregator{
        Providers: providers,
        Timeout:   time.Duration(cfg.Server.ProviderTimeoutSec) * time.Second,
    }

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.RequestTimeoutSec)*time.Second)
    defer cancel()

    rs, err := agg.Aggregate(ctx, sym)
    if err != nil { log.Fatalf("aggregate: %v", err) }
    for _, r := range rs {
        log.Printf("%s: %s NGN", r.Provider, r.Price.StringFixed(2))
    }

    q := quote.Build(sym, amount, rs, memo.New())
    b, _ := json.MarshalIndent(q, "", "  ")
    fmt.Println(string(b))
}

func getenv(key, def string) string { if v := os.Getenv(key); v != "" { return v }; return def }
func getenvInt(key string, def int) int {
    if v := os.Getenv(key); v != "" {
        var x int
        _, _ = fmt.Sscanf(v, "%d", &x)
        if x != 0 { return x }
    }
    return def
}
