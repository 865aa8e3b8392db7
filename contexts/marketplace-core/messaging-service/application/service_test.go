package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"ruleset/contexts/marketplace-core/messaging-service/adapters/memory"
	domainerrors "ruleset/contexts/marketplace-core/messaging-service/domain/errors"
)

func TestSendMessageRoutesToPrimarySellerUser(t *testing.T) {
	store := memory.NewStore()
	service := Service{
		Messages:  store,
		Directory: fakeDirectory{"seller_1": "user_seller_1"},
		Clock:     store,
		IDGen:     store,
	}

	message, err := service.SendMessage(context.Background(), SendMessageInput{
		ListingID:  "lst_1",
		FromUserID: "user_buyer",
		ToSellerID: "seller_1",
		Body:       "Does this workflow support retries?",
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if message.RecipientUserID != "user_seller_1" {
		t.Fatalf("expected routing to primary seller user, got %s", message.RecipientUserID)
	}
	if message.MessageID == "" || message.SentAt.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", message)
	}
}

func TestSendMessageWithoutSellerContactFails(t *testing.T) {
	store := memory.NewStore()
	service := Service{Messages: store, Directory: fakeDirectory{}, Clock: store, IDGen: store}

	_, err := service.SendMessage(context.Background(), SendMessageInput{
		ListingID:  "lst_1",
		FromUserID: "user_buyer",
		ToSellerID: "seller_missing",
		Body:       "hello",
	})
	if !errors.Is(err, domainerrors.ErrSellerContactUnavailable) {
		t.Fatalf("expected seller contact unavailable, got %v", err)
	}
}

func TestSendMessageRejectsEmptyBody(t *testing.T) {
	store := memory.NewStore()
	service := Service{
		Messages:  store,
		Directory: fakeDirectory{"seller_1": "user_seller_1"},
		Clock:     store,
		IDGen:     store,
	}

	_, err := service.SendMessage(context.Background(), SendMessageInput{
		ListingID:  "lst_1",
		FromUserID: "user_buyer",
		ToSellerID: "seller_1",
		Body:       "   ",
	})
	if !errors.Is(err, domainerrors.ErrInvalidMessageInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestThreadIsChronologicalAndScoped(t *testing.T) {
	store := memory.NewStore()
	service := Service{
		Messages:  store,
		Directory: fakeDirectory{"seller_1": "user_seller_1"},
		Clock:     store,
		IDGen:     store,
	}

	if _, err := service.SendMessage(context.Background(), SendMessageInput{
		ListingID: "lst_1", FromUserID: "user_buyer", ToSellerID: "seller_1", Body: "first",
	}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := service.SendReply(context.Background(), SendReplyInput{
		ListingID: "lst_1", FromSellerUserID: "user_seller_1", ToUserID: "user_buyer", Body: "second",
	}); err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	// Different listing must stay out of the thread.
	if _, err := service.SendMessage(context.Background(), SendMessageInput{
		ListingID: "lst_2", FromUserID: "user_buyer", ToSellerID: "seller_1", Body: "other",
	}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	thread, err := service.Thread(context.Background(), "lst_1", "user_buyer", "user_seller_1")
	if err != nil {
		t.Fatalf("thread failed: %v", err)
	}
	if len(thread) != 2 || thread[0].Body != "first" || thread[1].Body != "second" {
		t.Fatalf("unexpected thread: %+v", thread)
	}
}

func TestSellerSLAOverStoredHistory(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.April, 2, 8, 0, 0, 0, time.UTC)
	clock := &steppingClock{now: now, step: 6 * time.Hour}
	service := Service{
		Messages:  store,
		Directory: fakeDirectory{"seller_1": "user_seller_1"},
		Clock:     clock,
		IDGen:     store,
	}

	if _, err := service.SendMessage(context.Background(), SendMessageInput{
		ListingID: "lst_1", FromUserID: "user_buyer", ToSellerID: "seller_1", Body: "question",
	}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := service.SendReply(context.Background(), SendReplyInput{
		ListingID: "lst_1", FromSellerUserID: "user_seller_1", ToUserID: "user_buyer", Body: "answer",
	}); err != nil {
		t.Fatalf("reply failed: %v", err)
	}

	stat, err := service.SellerSLA(context.Background(), "user_seller_1")
	if err != nil {
		t.Fatalf("sla failed: %v", err)
	}
	if stat.Conversations != 1 || stat.AvgFirstResponseHours != 6 || stat.OnTimeRatePercent != 100 {
		t.Fatalf("unexpected sla stat: %+v", stat)
	}
}

type fakeDirectory map[string]string

func (f fakeDirectory) PrimarySellerUserID(_ context.Context, sellerID string) (string, bool, error) {
	userID, found := f[sellerID]
	return userID, found, nil
}

type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	current := c.now
	c.now = c.now.Add(c.step)
	return current
}
