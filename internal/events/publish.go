// Package events turns a ledger's transaction log into TransactionRecorded
// events and hands them to an EventPublisher.
package events

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/single-account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/single-account-ledger/internal/ledger"
	eventmodels "github.com/sheikh-saqib/single-account-ledger/internal/models/events"
)

// FromAccount maps every recorded transaction to an event, oldest first.
// Each call assigns fresh event IDs.
func FromAccount(a *ledger.Account) []eventmodels.TransactionRecorded {
	txs := a.Transactions()
	out := make([]eventmodels.TransactionRecorded, 0, len(txs))
	for _, tx := range txs {
		out = append(out, eventmodels.TransactionRecorded{
			EventID:       uuid.NewString(),
			TransactionID: tx.ID.String(),
			AccountID:     a.ID(),
			Kind:          tx.Kind.String(),
			Amount:        tx.Amount.Decimal(),
			Delta:         tx.Delta(),
			Balance:       tx.Balance.Decimal(),
			OccurredAt:    tx.CreatedAt,
		})
	}
	return out
}

// PublishAll sends the account's events in order, keyed by account ID.
// It stops at the first failure.
func PublishAll(ctx context.Context, pub interfaces.EventPublisher, topic string, a *ledger.Account) (int, error) {
	sent := 0
	for _, ev := range FromAccount(a) {
		if err := pub.Publish(ctx, topic, ev.AccountID, ev); err != nil {
			return sent, fmt.Errorf("publish transaction %s: %w", ev.TransactionID, err)
		}
		sent++
	}
	return sent, nil
}
