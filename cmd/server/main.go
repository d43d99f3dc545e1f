package main

import (
    "compress/gzip"
    "context"
    "io"
    "log"
    "net/http"
    "os"
    "os/signal"
    "strings"
    "sync"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/prometheus/client_golang/prometheus/promhttp"

    "nairaquote/internal/chain"
    "nairaquote/internal/config"
    "nairaquote/internal/fx"
    "nairaquote/internal/httpx"
    "nairaquote/internal/ledger"
    "nairaquote/internal/provider"
    "nairaquote/internal/provider/banxa"
    "nairaquote/internal/provider/binance"
    "nairaquote/internal/provider/moonpay"
    "nairaquote/internal/provider/moonpayadapter"
    "nairaquote/internal/provider/pricecache"
    "nairaquote/internal/provider/ratelimit"
    "nairaquote/internal/provider/wyre"
    "nairaquote/internal/rates"
)

func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("no .env file loaded")
    }
    cfgPath := os.Getenv("CONFIG_FILE")
    cfg, err := config.Load(cfgPath)
    if err != nil { log.Fatalf("config: %v", err) }

    httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

    fxc := fx.New(fx.Config{
        Endpoint: cfg.FX.Endpoint,
        TTL:      time.Duration(cfg.FX.CacheTTLSeconds) * time.Second,
    }, httpClient)

    providers := buildProviders(cfg, httpClient, fxc)
    if len(providers) == 0 {
        log.Println("warning: no providers enabled; every quote will return 503")
    }
    agg := &rates.Aggregator{
        Providers: providers,
        Timeout:   time.Duration(cfg.Server.ProviderTimeoutSec) * time.Second,
    }

    var repo ledger.Repository
    if cfg.Ledger.DSN != "" {
        pg, err := ledger.NewPostgresRepository(cfg.Ledger.DSN)
        if err != nil { log.Fatalf("ledger: %v", err) }
        repo = pg
    } else {
        log.Println("warning: LEDGER_DSN not set; using in-memory ledger")
        repo = ledger.NewMemoryRepository()
    }

    probe := chain.New(chain.Config{
        RPCURL:         cfg.Chain.RPCURL,
        DepositAddress: cfg.Chain.DepositAddress,
    }, httpClient)

    mux := http.NewServeMux()
    mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    })
    mux.HandleFunc("/quote", func(w http.ResponseWriter, r *http.Request) {
        if r.Method != http.MethodGet {
            writeError(w, http.StatusMethodNotAllowed, "method not allowed")
            return
        }
        q := r.URL.Query()
        sym := q.Get("asset")
        if sym == "" { sym = q.Get("crypto") } // legacy param name
        writeQuote(w, r.Context(), agg, sym, q.Get("amount"))
    })
    mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
        handleTransactions(w, r, repo)
    })
    mux.HandleFunc("/api/resolve", handleResolve)
    mux.HandleFunc("/api/deposit", func(w http.ResponseWriter, r *http.Request) {
        handleDeposit(w, r, probe)
    })

    root := http.NewServeMux()
    root.Handle("/metrics", promhttp.Handler())
    root.Handle("/", withJSONHeaders(withGzip(recoverPanic(limitBody(mux)))))

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           root,
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      20 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    go func() {
        log.Printf("server listening on :%s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("server: %v", err)
        }
    }()

    // graceful shutdown
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = srv.Shutdown(shutdownCtx)
}

func buildProviders(cfg config.Config, hc *httpx.Client, fxc provider.FXSource) []provider.Provider {
    var providers []provider.Provider
    if cfg.Binance.Enabled {
        p := wrapProvider(
            binance.New(binance.Config{Endpoint: cfg.Binance.Endpoint}, hc, fxc),
            cfg.Binance.MaxRequestsPerMinute, cfg.Binance.Burst, cfg.Binance.CacheTTLSeconds)
        providers = append(providers, p)
    }
    if cfg.MoonPay.Enabled {
        if cfg.MoonPay.APIKey == "" {
            log.Println("warning: moonpay.enabled=true but MOONPAY_API_KEY not set; skipping")
        } else {
            opts := []moonpay.MoonPayAPIClientOption{moonpay.WithHTTPClient(hc.HTTP)}
            if cfg.MoonPay.Endpoint != "" {
                opts = append(opts, moonpay.WithBaseURL(cfg.MoonPay.Endpoint))
            }
            mpClient, err := moonpay.NewMoonPayAPIClient(cfg.MoonPay.APIKey, opts...)
            if err != nil {
                log.Printf("moonpay client error: %v", err)
            } else {
                p := wrapProvider(
                    moonpayadapter.New(moonpayadapter.Config{}, mpClient, fxc),
                    cfg.MoonPay.MaxRequestsPerMinute, cfg.MoonPay.Burst, cfg.MoonPay.CacheTTLSeconds)
                providers = append(providers, p)
            }
        }
    }
    if cfg.Banxa.Enabled {
        if cfg.Banxa.APIKey == "" {
            log.Println("warning: banxa.enabled=true but BANXA_API_KEY not set; skipping")
        } else {
            p := wrapProvider(
                banxa.New(banxa.Config{Endpoint: cfg.Banxa.Endpoint, APIKey: cfg.Banxa.APIKey}, hc, fxc),
                cfg.Banxa.MaxRequestsPerMinute, cfg.Banxa.Burst, cfg.Banxa.CacheTTLSeconds)
            providers = append(providers, p)
        }
    }
    if cfg.Wyre.Enabled {
        if cfg.Wyre.APIKey == "" {
            log.Println("warning: wyre.enabled=true but WYRE_API_KEY not set; skipping")
        } else {
            p := wrapProvider(
                wyre.New(wyre.Config{Endpoint: cfg.Wyre.Endpoint, APIKey: cfg.Wyre.APIKey}, hc, fxc),
                cfg.Wyre.MaxRequestsPerMinute, cfg.Wyre.Burst, cfg.Wyre.CacheTTLSeconds)
            providers = append(providers, p)
        }
    }
    return providers
}

func wrapProvider(p provider.Provider, rpm, burst, cacheTTLSec int) provider.Provider {
    if rpm > 0 {
        p = ratelimit.New(p, rpm, burst)
    }
    if cacheTTLSec > 0 {
        p = pricecache.New(p, time.Duration(cacheTTLSec)*time.Second)
    }
    return p
}

func withJSONHeaders(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json; charset=utf-8")
        // Basic CORS for browser usage; adjust as needed.
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
        w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
        if r.Method == http.MethodOptions {
            w.WriteHeader(http.StatusNoContent)
            return
        }
        next.ServeHTTP(w, r)
    })
}

// withGzip compresses response when client supports gzip.
func withGzip(next http.Handler) http.Handler {
    var gzPool = sync.Pool{New: func() any {
        w, _ := gzip.NewWriterLevel(io.Discard, gzip.BestSpeed)
        return w
    }}
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
            next.ServeHTTP(w, r)
            return
        }
        gz := gzPool.Get().(*gzip.Writer)
        gz.Reset(w)
        defer func() {
            _ = gz.Close()
            gz.Reset(io.Discard)
            gzPool.Put(gz)
        }()
        w.Header().Set("Content-Encoding", "gzip")
        w.Header().Add("Vary", "Accept-Encoding")
        gw := gzipResponseWriter{ResponseWriter: w, Writer: gz}
        next.ServeHTTP(gw, r)
    })
}

type gzipResponseWriter struct {
    http.ResponseWriter
    Writer io.Writer
}

func (g gzipResponseWriter) Write(b []byte) (int, error) {
    return g.Writer.Write(b)
}

// limitBody caps request body size to avoid memory abuse.
func limitBody(next http.Handler) http.Handler {
    const maxBody = 1 << 20 // 1MB
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.Method == http.MethodPost && r.Body != nil {
            r.Body = http.MaxBytesReader(w, r.Body, maxBody)
        }
        next.ServeHTTP(w, r)
    })
}

// recoverPanic protects handlers from panics.
func recoverPanic(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        defer func() {
            if rec := recover(); rec != nil {
                log.Printf("panic serving %s: %v", r.URL.Path, rec)
                writeError(w, http.StatusInternalServerError, "internal server error")
            }
        }()
        next.ServeHTTP(w, r)
    })
}
