package metrics

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    // QuotesTotal counts successfully served quotes per asset.
    QuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
        Namespace: "nairaquote",
        Name:      "quotes_total",
        Help:      "Quotes served, by asset.",
    }, []string{"asset"})

    // ProviderFailuresTotal counts provider fetches excluded from a round.
    ProviderFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
        Namespace: "nairaquote",
        Name:      "provider_failures_total",
        Help:      "Provider fetches that failed or returned an unusable price.",
    }, []string{"provider"})

    // ProviderFetchSeconds observes per-provider fetch latency.
    ProviderFetchSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
        Namespace: "nairaquote",
        Name:      "provider_fetch_seconds",
        Help:      "Provider fetch duration in seconds.",
        Buckets:   prometheus.DefBuckets,
    }, []string{"provider"})
)
