package main

import (
    "context"
    "encoding/json"
    "errors"
    "log"
    "net/http"

    "github.com/shopspring/decimal"

    "nairaquote/internal/asset"
    "nairaquote/internal/chain"
    "nairaquote/internal/ledger"
    "nairaquote/internal/memo"
    "nairaquote/internal/metrics"
    "nairaquote/internal/quote"
    "nairaquote/internal/rates"
)

type quoteResponse struct {
    Providers    map[string]float64 `json:"providers"`
    BestProvider string             `json:"bestProvider"`
    Rate         float64            `json:"rate"`
    GrossNgn     float64            `json:"grossNgn"`
    Fee          float64            `json:"fee"`
    NetNgn       float64            `json:"netNgn"`
    Memo         string             `json:"memo"`
}

type errorResponse struct {
    Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.WriteHeader(status)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    _ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
    writeJSON(w, status, errorResponse{Error: msg})
}

// writeQuote validates input, aggregates provider rates, and writes the payout
// quote. Symbol validation happens before any provider is invoked.
func writeQuote(w http.ResponseWriter, ctx context.Context, agg *rates.Aggregator, symRaw, amountRaw string) {
    if symRaw == "" { symRaw = string(asset.USDT) }
    sym, err := asset.Parse(symRaw)
    if err != nil {
        writeError(w, http.StatusBadRequest, err.Error())
        return
    }
    if amountRaw == "" { amountRaw = "0" }
    amount, err := decimal.NewFromString(amountRaw)
    if err != nil {
        writeError(w, http.StatusBadRequest, "invalid amount")
        return
    }

    rs, err := agg.Aggregate(ctx, sym)
    if err != nil {
        if errors.Is(err, rates.ErrNoProviders) {
            writeError(w, http.StatusServiceUnavailable, "failed to fetch any rates from providers")
            return
        }
        writeError(w, http.StatusInternalServerError, "internal server error")
        return
    }

    q := quote.Build(sym, amount, rs, memo.New())
    metrics.QuotesTotal.WithLabelValues(string(sym)).Inc()

    resp := quoteResponse{
        Providers:    make(map[string]float64, len(q.Rates)),
        BestProvider: q.BestProvider,
        Rate:         quote.Round2(q.Rate).InexactFloat64(),
        GrossNgn:     quote.Round2(q.GrossNgn).InexactFloat64(),
        Fee:          quote.Round2(q.Fee).InexactFloat64(),
        NetNgn:       quote.Round2(q.NetNgn).InexactFloat64(),
        Memo:         q.Memo,
    }
    for _, r := range q.Rates {
        resp.Providers[r.Provider] = quote.Round2(r.Price).InexactFloat64()
    }
    writeJSON(w, http.StatusOK, resp)
}

func handleTransactions(w http.ResponseWriter, r *http.Request, repo ledger.Repository) {
    switch r.Method {
    case http.MethodGet:
        userID := r.URL.Query().Get("userId")
        if userID == "" {
            writeError(w, http.StatusBadRequest, "User ID required")
            return
        }
        txs, err := repo.ListByUser(r.Context(), userID)
        if err != nil {
            log.Printf("ledger list: %v", err)
            writeError(w, http.StatusInternalServerError, "internal server error")
            return
        }
        writeJSON(w, http.StatusOK, txs)
    case http.MethodPost:
        var tx ledger.Transaction
        dec := json.NewDecoder(r.Body)
        dec.DisallowUnknownFields()
        if err := dec.Decode(&tx); err != nil {
            writeError(w, http.StatusBadRequest, "invalid JSON body")
            return
        }
        if tx.UserID == "" || tx.Type == "" {
            writeError(w, http.StatusBadRequest, "userId and type are required")
            return
        }
        if tx.Memo == "" {
            m, err := ledger.UniqueMemo(r.Context(), repo, 10)
            if err != nil {
                log.Printf("ledger memo: %v", err)
                writeError(w, http.StatusInternalServerError, "internal server error")
                return
            }
            tx.Memo = m
        }
        if err := repo.Save(r.Context(), &tx); err != nil {
            log.Printf("ledger save: %v", err)
            writeError(w, http.StatusInternalServerError, "internal server error")
            return
        }
        writeJSON(w, http.StatusOK, tx)
    default:
        writeError(w, http.StatusMethodNotAllowed, "method not allowed")
    }
}

type resolveRequest struct {
    AccountNumber string `json:"account_number"`
    BankCode      string `json:"bank_code"`
}

type resolveResponse struct {
    Status      bool   `json:"status"`
    AccountName string `json:"account_name,omitempty"`
    Message     string `json:"message,omitempty"`
}

// handleResolve is a stand-in for a bank account lookup; it accepts any
// 10-digit account number.
func handleResolve(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        writeError(w, http.StatusMethodNotAllowed, "method not allowed")
        return
    }
    var req resolveRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid JSON body")
        return
    }
    if len(req.AccountNumber) != 10 {
        writeJSON(w, http.StatusBadRequest, resolveResponse{Status: false, Message: "Invalid account"})
        return
    }
    writeJSON(w, http.StatusOK, resolveResponse{Status: true, AccountName: "MOCK USER NAME"})
}

func handleDeposit(w http.ResponseWriter, r *http.Request, probe *chain.Client) {
    m := r.URL.Query().Get("memo")
    if m == "" {
        writeJSON(w, http.StatusOK, map[string]string{"status": "pending", "message": "No memo provided"})
        return
    }
    st, err := probe.CheckDeposit(r.Context(), m)
    if err != nil {
        log.Printf("deposit probe: %v", err)
        writeError(w, http.StatusInternalServerError, "internal server error")
        return
    }
    writeJSON(w, http.StatusOK, st)
}
