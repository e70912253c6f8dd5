package services

import (
	"fmt"
	"math/rand"
)

// NewCashTransactionID issues a fresh CASH-nnnnnn identifier. Regenerating
// simply replaces the previous value; no uniqueness is enforced here.
func NewCashTransactionID() string {
	return fmt.Sprintf("CASH-%d", 100000+rand.Intn(900000))
}
