package events

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNopPublisher(t *testing.T) {
	if err := (NopPublisher{}).Publish(context.Background(), LedgerEventsStream, TransactionCreated, nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestPublisherReportsUnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	p := NewPublisher(client, 100)
	err := p.Publish(context.Background(), LedgerEventsStream, BalanceUpdated, BalanceUpdatedEvent{
		AccountID:  "acc-1",
		NewBalance: "10",
		Change:     "10",
	})
	if err == nil {
		t.Fatal("expected an error when redis is unreachable")
	}
	if !strings.Contains(err.Error(), "failed to publish event") {
		t.Errorf("unexpected error: %v", err)
	}
}
