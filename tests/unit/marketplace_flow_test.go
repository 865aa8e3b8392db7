package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	billingservice "ruleset/contexts/finance-core/billing-service"
	billingcatalog "ruleset/contexts/finance-core/billing-service/adapters/catalog"
	billingpromotion "ruleset/contexts/finance-core/billing-service/adapters/promotion"
	billingerrors "ruleset/contexts/finance-core/billing-service/domain/errors"
	billinghttp "ruleset/contexts/finance-core/billing-service/transport/http"
	accountservice "ruleset/contexts/identity-access/account-service"
	accountcatalog "ruleset/contexts/identity-access/account-service/adapters/catalog"
	accounthttp "ruleset/contexts/identity-access/account-service/transport/http"
	catalogservice "ruleset/contexts/marketplace-core/catalog-service"
	catalogentities "ruleset/contexts/marketplace-core/catalog-service/domain/entities"
	messagingservice "ruleset/contexts/marketplace-core/messaging-service"
	messagingaccounts "ruleset/contexts/marketplace-core/messaging-service/adapters/accounts"
	messaginghttp "ruleset/contexts/marketplace-core/messaging-service/transport/http"
	promotionservice "ruleset/contexts/marketplace-core/promotion-service"
	promotioncatalog "ruleset/contexts/marketplace-core/promotion-service/adapters/catalog"
	promotionerrors "ruleset/contexts/marketplace-core/promotion-service/domain/errors"
	promotionhttp "ruleset/contexts/marketplace-core/promotion-service/transport/http"
)

func newCatalogModule() catalogservice.Module {
	sellers := []catalogentities.Seller{
		{SellerID: "seller_1", Name: "Orbit Labs", Bio: "Automation studio for review rules.", Verified: true},
		{SellerID: "seller_2", Name: "FluxOps", Bio: "Indie workflow templates shop.", Verified: false},
	}
	listings := []catalogentities.Listing{
		{
			ListingID:   "lst_1",
			SellerID:    "seller_1",
			Title:       "Strict PR Review Rule Pack",
			Description: "Pull request review ruleset enforcing coverage, changelog and security gates.",
			Type:        catalogentities.AssetTypeRule,
			PriceUSD:    49.5,
			Tags:        []string{"code-review", "ci"},
			CreatedAt:   time.Date(2025, 11, 4, 9, 30, 0, 0, time.UTC),
			Likes:       128,
			Metrics: catalogentities.ListingMetrics{
				SuccessRate:      96.5,
				AvgSetupMinutes:  12,
				ReuseRate:        82,
				SupportScore:     91,
				RefundRate:       1.2,
				Adoption30d:      640,
				IssuesPer100Runs: 0.8,
			},
		},
		{
			ListingID:   "lst_2",
			SellerID:    "seller_1",
			Title:       "Incident Triage Rule Bundle",
			Description: "Routes production alerts by severity and escalates stale incidents automatically.",
			Type:        catalogentities.AssetTypeRule,
			PriceUSD:    79,
			Tags:        []string{"incident", "oncall"},
			CreatedAt:   time.Date(2025, 12, 18, 14, 0, 0, 0, time.UTC),
			Likes:       96,
			Metrics: catalogentities.ListingMetrics{
				SuccessRate:      93.2,
				AvgSetupMinutes:  25,
				ReuseRate:        74,
				SupportScore:     88,
				RefundRate:       2.1,
				Adoption30d:      410,
				IssuesPer100Runs: 1.4,
			},
		},
		{
			ListingID:   "lst_3",
			SellerID:    "seller_2",
			Title:       "Invoice Chasing Workflow",
			Description: "Watches unpaid invoices and sends escalating reminders to finance channels.",
			Type:        catalogentities.AssetTypeWorkflow,
			PriceUSD:    39,
			Tags:        []string{"finance", "invoicing"},
			CreatedAt:   time.Date(2025, 12, 1, 7, 50, 0, 0, time.UTC),
			Likes:       88,
			Metrics: catalogentities.ListingMetrics{
				SuccessRate:      92.1,
				AvgSetupMinutes:  18,
				ReuseRate:        76,
				SupportScore:     72,
				RefundRate:       2.9,
				Adoption30d:      270,
				IssuesPer100Runs: 2.4,
			},
		},
	}
	return catalogservice.NewInMemoryModule(sellers, listings, nil)
}

func TestSponsoredCampaignLifecycleThroughFeed(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalogModule()
	source := promotioncatalog.NewSource(catalog.Service)
	promo := promotionservice.NewInMemoryModule(source, source, nil)

	created, err := promo.Handler.CreateCampaignHandler(ctx, "seller_1", promotionhttp.CreateCampaignRequest{
		ListingID:      "lst_1",
		BidCPMUSD:      6,
		DailyBudgetUSD: 30,
	})
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if created.Campaign.Status != "active" {
		t.Fatalf("expected active campaign, got %s", created.Campaign.Status)
	}

	feed, err := promo.Handler.DiscoveryFeedHandler(ctx, "", "", 8)
	if err != nil {
		t.Fatalf("feed build failed: %v", err)
	}
	if feed.Slots == 0 {
		t.Fatalf("expected feed rows, got none")
	}
	var sponsored *promotionhttp.FeedRowDTO
	seen := map[string]int{}
	for i := range feed.Items {
		row := feed.Items[i]
		seen[row.Listing.ListingID]++
		if row.Placement == "sponsored" {
			sponsored = &feed.Items[i]
		}
	}
	if sponsored == nil {
		t.Fatalf("expected a sponsored placement in the feed")
	}
	if sponsored.Sponsored == nil || sponsored.Sponsored.CampaignID != created.Campaign.CampaignID {
		t.Fatalf("sponsored row not attributed to the campaign: %+v", sponsored)
	}
	for listingID, count := range seen {
		if count > 1 {
			t.Fatalf("listing %s appears %d times in the feed", listingID, count)
		}
	}

	list, err := promo.Handler.ListCampaignsHandler(ctx, "seller_1")
	if err != nil {
		t.Fatalf("list campaigns failed: %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("expected one campaign, got %d", len(list.Items))
	}
	if list.Items[0].Impressions < 1 || list.Items[0].SpentUSD != 0.006 {
		t.Fatalf("expected one 0.006 impression charge, got %+v", list.Items[0])
	}
	if list.Items[0].ListingTitle != "Strict PR Review Rule Pack" {
		t.Fatalf("unexpected listing title: %s", list.Items[0].ListingTitle)
	}

	clicked, err := promo.Handler.RegisterClickHandler(ctx, created.Campaign.CampaignID)
	if err != nil {
		t.Fatalf("register click failed: %v", err)
	}
	if clicked.Campaign.Clicks != 1 {
		t.Fatalf("expected one click, got %d", clicked.Campaign.Clicks)
	}
	if clicked.Campaign.SpentUSD != 0.006 {
		t.Fatalf("clicks must not consume budget, got spend %v", clicked.Campaign.SpentUSD)
	}

	paused, err := promo.Handler.SetStatusHandler(ctx, "seller_1", created.Campaign.CampaignID, promotionhttp.SetStatusRequest{Status: "paused"})
	if err != nil {
		t.Fatalf("pause failed: %v", err)
	}
	if paused.Campaign.Status != "paused" {
		t.Fatalf("expected paused campaign, got %s", paused.Campaign.Status)
	}
}

func TestUnverifiedSellerCannotPromote(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalogModule()
	source := promotioncatalog.NewSource(catalog.Service)
	promo := promotionservice.NewInMemoryModule(source, source, nil)

	_, err := promo.Handler.CreateCampaignHandler(ctx, "seller_2", promotionhttp.CreateCampaignRequest{
		ListingID:      "lst_3",
		BidCPMUSD:      6,
		DailyBudgetUSD: 30,
	})
	if !errors.Is(err, promotionerrors.ErrListingNotEligible) {
		t.Fatalf("expected eligibility rejection, got %v", err)
	}
}

func TestOrderFinancePayoutFlow(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalogModule()
	source := promotioncatalog.NewSource(catalog.Service)
	promo := promotionservice.NewInMemoryModule(source, source, nil)
	billing := billingservice.NewInMemoryModule(
		billingcatalog.NewSource(catalog.Service),
		billingpromotion.NewSource(promo.Store),
		nil,
	)

	order, err := billing.Handler.CreateOrderHandler(ctx, "user_buyer", billinghttp.CreateOrderRequest{ListingID: "lst_1"})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Order.AmountUSD != 49.5 || order.Order.PlatformFeeUSD != 5.94 || order.Order.PayoutUSD != 43.56 {
		t.Fatalf("unexpected order split: %+v", order.Order)
	}

	finance, err := billing.Handler.SellerFinanceHandler(ctx, "seller_1")
	if err != nil {
		t.Fatalf("seller finance failed: %v", err)
	}
	if finance.GrossRevenueUSD != 49.5 || finance.AvailablePayoutUSD != 43.56 {
		t.Fatalf("unexpected finance summary: %+v", finance)
	}

	payout, err := billing.Handler.RequestPayoutHandler(ctx, "seller_1", "user_seller")
	if err != nil {
		t.Fatalf("request payout failed: %v", err)
	}
	if payout.Payout.AmountUSD != 43.56 || payout.Payout.Status != "pending" {
		t.Fatalf("unexpected payout: %+v", payout.Payout)
	}

	pending, err := billing.Handler.ListPendingPayoutsHandler(ctx)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending.Items) != 1 {
		t.Fatalf("expected one pending payout, got %d", len(pending.Items))
	}

	paid, err := billing.Handler.MarkPayoutPaidHandler(ctx, payout.Payout.PayoutID)
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if paid.Payout.Status != "paid" {
		t.Fatalf("expected paid status, got %s", paid.Payout.Status)
	}

	if _, err := billing.Handler.RequestPayoutHandler(ctx, "seller_1", "user_seller"); !errors.Is(err, billingerrors.ErrNoPayoutAvailable) {
		t.Fatalf("expected exhausted availability, got %v", err)
	}
}

func TestDemoIdentityMessagingFlow(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalogModule()
	accounts := accountservice.NewInMemoryModule(
		accountcatalog.NewDirectory(catalog.Store),
		[]byte("test-secret"),
		nil,
	)
	if err := accounts.Service.BootstrapDemoUsers(ctx); err != nil {
		t.Fatalf("bootstrap demo users failed: %v", err)
	}

	buyer, err := accounts.Handler.LoginHandler(ctx, accounthttp.LoginRequest{Email: "buyer@demo.local", Password: "demo1234"})
	if err != nil {
		t.Fatalf("buyer login failed: %v", err)
	}
	seller, err := accounts.Handler.LoginHandler(ctx, accounthttp.LoginRequest{Email: "orbitlabs@demo.local", Password: "demo1234"})
	if err != nil {
		t.Fatalf("seller login failed: %v", err)
	}
	if seller.User.Role != "seller" || seller.User.SellerID != "seller_1" {
		t.Fatalf("unexpected seller identity: %+v", seller.User)
	}

	claims, err := accounts.Service.VerifyToken(seller.Token)
	if err != nil {
		t.Fatalf("token verify failed: %v", err)
	}
	if claims.Subject != seller.User.UserID || claims.SellerID != "seller_1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	messaging := messagingservice.NewInMemoryModule(
		messagingaccounts.NewDirectory(accounts.Service),
		nil,
	)

	sent, err := messaging.Handler.SendMessageHandler(ctx, buyer.User.UserID, messaginghttp.SendMessageRequest{
		ListingID:  "lst_1",
		ToSellerID: "seller_1",
		Body:       "Does this pack support monorepos?",
	})
	if err != nil {
		t.Fatalf("send message failed: %v", err)
	}
	if sent.Message.RecipientUserID != seller.User.UserID {
		t.Fatalf("message routed to %s, want %s", sent.Message.RecipientUserID, seller.User.UserID)
	}

	if _, err := messaging.Handler.SendReplyHandler(ctx, seller.User.UserID, messaginghttp.SendReplyRequest{
		ListingID: "lst_1",
		ToUserID:  buyer.User.UserID,
		Body:      "Yes, with per-package rule scoping.",
	}); err != nil {
		t.Fatalf("send reply failed: %v", err)
	}

	thread, err := messaging.Handler.ThreadHandler(ctx, "lst_1", buyer.User.UserID, seller.User.UserID)
	if err != nil {
		t.Fatalf("thread failed: %v", err)
	}
	if len(thread.Items) != 2 {
		t.Fatalf("expected two messages in thread, got %d", len(thread.Items))
	}

	sla, err := messaging.Handler.SellerSLAHandler(ctx, seller.User.UserID)
	if err != nil {
		t.Fatalf("seller sla failed: %v", err)
	}
	if sla.Conversations != 1 || sla.OnTimeRatePercent != 100 {
		t.Fatalf("unexpected sla: %+v", sla)
	}
}
