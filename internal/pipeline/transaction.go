package pipeline

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenGenerator generates unique tokens for transaction control handles.
// Implemented by UUIDv7Generator (production) and by fixed-sequence
// generators in tests.
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 transaction tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, making tokens
// sortable by creation time, which helps when correlating transaction
// handles with engine logs.
//
// Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// TxOutcome is the observed outcome of a transactional execution.
type TxOutcome int

const (
	// TxPending means the transaction has not been resolved yet.
	TxPending TxOutcome = iota

	// TxCommitted means the transaction was committed.
	TxCommitted

	// TxAborted means the transaction was aborted.
	TxAborted
)

// String returns "pending", "committed" or "aborted".
func (o TxOutcome) String() string {
	switch o {
	case TxPending:
		return "pending"
	case TxCommitted:
		return "committed"
	case TxAborted:
		return "aborted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// TransactionControl is the handle returned by EnableTransactionSupport.
//
// The caller owns the handle after creation; neither the context nor the
// harness retains a reference. Resolving the handle (commit or abort)
// records the outcome on the handle only - it never touches pipeline or
// stage state.
type TransactionControl struct {
	token   string
	outcome TxOutcome
}

func newTransactionControl(token string) *TransactionControl {
	return &TransactionControl{token: token, outcome: TxPending}
}

// Token returns the unique token identifying this transaction.
func (t *TransactionControl) Token() string {
	return t.token
}

// Outcome returns the transaction's current outcome.
func (t *TransactionControl) Outcome() TxOutcome {
	return t.outcome
}

// Commit resolves the transaction as committed.
// Returns an error if the transaction was already resolved.
func (t *TransactionControl) Commit() error {
	if t.outcome != TxPending {
		return fmt.Errorf("transaction %s already resolved: %s", t.token, t.outcome)
	}
	t.outcome = TxCommitted
	return nil
}

// Abort resolves the transaction as aborted.
// Returns an error if the transaction was already resolved.
func (t *TransactionControl) Abort() error {
	if t.outcome != TxPending {
		return fmt.Errorf("transaction %s already resolved: %s", t.token, t.outcome)
	}
	t.outcome = TxAborted
	return nil
}
