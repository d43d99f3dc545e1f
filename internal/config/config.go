package config

import (
    "errors"
    "fmt"
    "os"

    "github.com/ilyakaznacheev/cleanenv"
)

type Server struct {
    Port               string `json:"port" env:"PORT"`
    RequestTimeoutSec  int    `json:"request_timeout_sec" env:"REQUEST_TIMEOUT_SEC"`
    ProviderTimeoutSec int    `json:"provider_timeout_sec" env:"PROVIDER_TIMEOUT_SEC"`
}

type FX struct {
    Endpoint        string `json:"endpoint" env:"FX_ENDPOINT"`
    CacheTTLSeconds int    `json:"cache_ttl_sec" env:"FX_CACHE_TTL_SEC"`
}

type Binance struct {
    Enabled              bool   `json:"enabled" env:"BINANCE_ENABLED"`
    Endpoint             string `json:"endpoint" env:"BINANCE_ENDPOINT"`
    MaxRequestsPerMinute int    `json:"max_requests_per_minute" env:"BINANCE_MAX_RPM"`
    Burst                int    `json:"burst" env:"BINANCE_BURST"`
    CacheTTLSeconds      int    `json:"cache_ttl_sec" env:"BINANCE_CACHE_TTL_SEC"`
}

type MoonPay struct {
    Enabled              bool   `json:"enabled" env:"MOONPAY_ENABLED"`
    APIKey               string `json:"api_key" env:"MOONPAY_API_KEY"`
    Endpoint             string `json:"endpoint" env:"MOONPAY_ENDPOINT"`
    MaxRequestsPerMinute int    `json:"max_requests_per_minute" env:"MOONPAY_MAX_RPM"`
    Burst                int    `json:"burst" env:"MOONPAY_BURST"`
    CacheTTLSeconds      int    `json:"cache_ttl_sec" env:"MOONPAY_CACHE_TTL_SEC"`
}

type Banxa struct {
    Enabled              bool   `json:"enabled" env:"BANXA_ENABLED"`
    APIKey               string `json:"api_key" env:"BANXA_API_KEY"`
    Endpoint             string `json:"endpoint" env:"BANXA_ENDPOINT"`
    MaxRequestsPerMinute int    `json:"max_requests_per_minute" env:"BANXA_MAX_RPM"`
    Burst                int    `json:"burst" env:"BANXA_BURST"`
    CacheTTLSeconds      int    `json:"cache_ttl_sec" env:"BANXA_CACHE_TTL_SEC"`
}

type Wyre struct {
    Enabled              bool   `json:"enabled" env:"WYRE_ENABLED"`
    APIKey               string `json:"api_key" env:"WYRE_API_KEY"`
    Endpoint             string `json:"endpoint" env:"WYRE_ENDPOINT"`
    MaxRequestsPerMinute int    `json:"max_requests_per_minute" env:"WYRE_MAX_RPM"`
    Burst                int    `json:"burst" env:"WYRE_BURST"`
    CacheTTLSeconds      int    `json:"cache_ttl_sec" env:"WYRE_CACHE_TTL_SEC"`
}

type Ledger struct {
    DSN string `json:"dsn" env:"LEDGER_DSN"`
}

type Chain struct {
    RPCURL         string `json:"rpc_url" env:"BSC_RPC_URL"`
    DepositAddress string `json:"deposit_address" env:"DEPOSIT_ADDRESS"`
}

type Config struct {
    Server  Server  `json:"server"`
    FX      FX      `json:"fx"`
    Binance Binance `json:"binance"`
    MoonPay MoonPay `json:"moonpay"`
    Banxa   Banxa   `json:"banxa"`
    Wyre    Wyre    `json:"wyre"`
    Ledger  Ledger  `json:"ledger"`
    Chain   Chain   `json:"chain"`
}

func Default() Config {
    return Config{
        Server: Server{Port: "8080", RequestTimeoutSec: 10, ProviderTimeoutSec: 5},
        FX: FX{
            Endpoint:        "https://open.er-api.com/v6/latest/USD",
            CacheTTLSeconds: 60,
        },
        Binance: Binance{
            Enabled:  true,
            Endpoint: "https://api.binance.com/api/v3/ticker/price",
            Burst:    1,
        },
        MoonPay: MoonPay{
            Enabled:  true,
            Endpoint: "https://api.moonpay.com",
            Burst:    1,
        },
        Banxa: Banxa{
            Enabled:  true,
            Endpoint: "https://api.banxa.com/api/price",
            Burst:    1,
        },
        Wyre: Wyre{
            Enabled:  true,
            Endpoint: "https://api.sendwyre.com/v3/rates",
            Burst:    1,
        },
        Chain: Chain{
            RPCURL:         "https://bsc-dataseed.binance.org/",
            DepositAddress: "0x72fb93c58ab7afadbf75e982a5b6d2cb6134247b",
        },
    }
}

// Load starts from defaults, merges JSON config from path when present, then
// applies environment overrides. If path is empty, config.json is used when it
// exists; otherwise defaults plus environment only.
func Load(path string) (Config, error) {
    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        err := cleanenv.ReadConfig(path, &cfg)
        if err == nil {
            return cfg, nil
        }
        if !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
    }
    if err := cleanenv.ReadEnv(&cfg); err != nil {
        return cfg, fmt.Errorf("read env: %w", err)
    }
    return cfg, nil
}
