package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"

	"ruleset/internal/shared/events"
)

func TestJournalRecordFillsDefaults(t *testing.T) {
	journal := NewJournal("ruleset-test", 4, nil)

	journal.RecordEvent("order.created", "order", "ord_1", map[string]any{"amount": 49.5})

	select {
	case envelope := <-journal.Events():
		if envelope.EventID == "" || envelope.OccurredAtUTC.IsZero() {
			t.Fatalf("expected generated id and timestamp: %+v", envelope)
		}
		if envelope.SourceService != "ruleset-test" {
			t.Fatalf("expected source service stamped, got %q", envelope.SourceService)
		}
		if envelope.EventType != "order.created" || envelope.EntityID != "ord_1" {
			t.Fatalf("unexpected envelope: %+v", envelope)
		}
	default:
		t.Fatalf("expected a buffered envelope")
	}
}

func TestJournalDropsWhenFullWithoutBlocking(t *testing.T) {
	journal := NewJournal("ruleset-test", 2, nil)

	for i := 0; i < 10; i++ {
		journal.RecordEvent("product.like", "listing", "lst_1", nil)
	}

	if got := len(journal.buffer); got != 2 {
		t.Fatalf("expected buffer capped at 2, got %d", got)
	}
}

func TestNilJournalIsNoOp(t *testing.T) {
	var journal *Journal
	journal.RecordEvent("auth.login", "user", "usr_1", nil)
	journal.RecordScore("product_efficiency", "listing", "lst_1", 92.4, nil)
}

type captureSink struct {
	mu   sync.Mutex
	rows []events.Envelope
}

func (s *captureSink) Append(_ context.Context, envelope events.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, envelope)
	return nil
}

func TestRelayDrainsJournalIntoSink(t *testing.T) {
	journal := NewJournal("ruleset-test", 8, nil)
	sink := &captureSink{}
	relay := Relay{Journal: journal, Sink: sink}

	journal.RecordScore("seller_business_health", "seller", "seller_1", 88.2, nil)
	journal.RecordEvent("message.sent", "message", "msg_1", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		sink.mu.Lock()
		count := len(sink.rows)
		sink.mu.Unlock()
		if count == 2 {
			break
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("relay did not drain journal, got %d rows", count)
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.rows[0].EventType != "score.seller_business_health" {
		t.Fatalf("unexpected first event: %+v", sink.rows[0])
	}
	if sink.rows[1].EventType != "message.sent" {
		t.Fatalf("unexpected second event: %+v", sink.rows[1])
	}
}
