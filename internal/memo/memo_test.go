package memo

import (
    "strconv"
    "testing"
)

func TestNew_SixDigitRange(t *testing.T) {
    for i := 0; i < 10000; i++ {
        m := New()
        if len(m) != 6 {
            t.Fatalf("memo %q is not 6 digits", m)
        }
        n, err := strconv.Atoi(m)
        if err != nil {
            t.Fatalf("memo %q is not numeric: %v", m, err)
        }
        if n < 100000 || n > 999999 {
            t.Fatalf("memo %d out of range", n)
        }
    }
}
