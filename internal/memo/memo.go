// Package memo issues the short deposit-tracking tokens a sender must include
// with an on-chain transfer so the deposit can be matched to a quote.
package memo

import (
    "math/rand/v2"
    "strconv"
)

// New returns a 6-digit token drawn uniformly from [100000, 999999].
// Tokens are not unique across calls; callers that need uniqueness must check
// against pending deposits before assigning one.
func New() string {
    return strconv.Itoa(100000 + rand.IntN(900000))
}
