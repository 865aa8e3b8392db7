package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"ruleset/contexts/identity-access/account-service/adapters/memory"
	"ruleset/contexts/identity-access/account-service/domain/entities"
	domainerrors "ruleset/contexts/identity-access/account-service/domain/errors"
	"ruleset/contexts/identity-access/account-service/ports"
)

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	service := newService(t)

	user, token, err := service.Register(context.Background(), RegisterInput{
		Email:    "Buyer@Example.com",
		Password: "supersecret",
		Name:     "Buyer One",
		Role:     "buyer",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "buyer@example.com" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	claims, err := service.VerifyToken(token)
	if err != nil {
		t.Fatalf("token verification failed: %v", err)
	}
	if claims.Subject != user.UserID || claims.Role != "buyer" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	loggedIn, _, err := service.Login(context.Background(), "buyer@example.com", "supersecret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.UserID != user.UserID {
		t.Fatalf("expected same user on login, got %s vs %s", loggedIn.UserID, user.UserID)
	}

	if _, _, err := service.Login(context.Background(), "buyer@example.com", "wrongpass"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestRegisterSellerRequiresKnownProfile(t *testing.T) {
	service := newService(t)

	_, _, err := service.Register(context.Background(), RegisterInput{
		Email:    "seller@example.com",
		Password: "supersecret",
		Name:     "Seller One",
		Role:     "seller",
		SellerID: "seller_unknown",
	})
	if !errors.Is(err, domainerrors.ErrSellerProfileRequired) {
		t.Fatalf("expected seller profile required, got %v", err)
	}

	user, _, err := service.Register(context.Background(), RegisterInput{
		Email:    "seller@example.com",
		Password: "supersecret",
		Name:     "Seller One",
		Role:     "seller",
		SellerID: "seller_1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.SellerID != "seller_1" {
		t.Fatalf("expected linked seller id, got %s", user.SellerID)
	}
}

func TestRegisterRejectsDuplicateEmailAndShortPassword(t *testing.T) {
	service := newService(t)

	if _, _, err := service.Register(context.Background(), RegisterInput{
		Email: "dup@example.com", Password: "supersecret", Name: "First", Role: "buyer",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, _, err := service.Register(context.Background(), RegisterInput{
		Email: "dup@example.com", Password: "supersecret", Name: "Second", Role: "buyer",
	})
	if !errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}

	_, _, err = service.Register(context.Background(), RegisterInput{
		Email: "short@example.com", Password: "short", Name: "Short", Role: "buyer",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRegistration) {
		t.Fatalf("expected invalid registration for short password, got %v", err)
	}
}

func TestBootstrapDemoUsersIsIdempotent(t *testing.T) {
	service := newService(t)

	if err := service.BootstrapDemoUsers(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	// buyer + two sellers + admin
	count, err := service.Users.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 demo users, got %d", count)
	}

	if err := service.BootstrapDemoUsers(context.Background()); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	count, err = service.Users.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 4 {
		t.Fatalf("bootstrap must not reseed a populated store, got %d", count)
	}

	user, _, err := service.Login(context.Background(), "orbitlabs@demo.local", "demo1234")
	if err != nil {
		t.Fatalf("demo seller login failed: %v", err)
	}
	if user.Role != entities.RoleSeller || user.SellerID != "seller_1" {
		t.Fatalf("unexpected demo seller account: %+v", user)
	}

	userID, found, err := service.PrimarySellerUserID(context.Background(), "seller_1")
	if err != nil || !found {
		t.Fatalf("expected primary seller user, found=%v err=%v", found, err)
	}
	if userID != user.UserID {
		t.Fatalf("expected primary seller user %s, got %s", user.UserID, userID)
	}
}

func newService(t *testing.T) Service {
	t.Helper()
	store := memory.NewStore()
	return Service{
		Users: store,
		Sellers: fakeSellers{
			{SellerID: "seller_1", Name: "Orbit Labs"},
			{SellerID: "seller_2", Name: "Studio Nine"},
		},
		Tokens: TokenIssuer{Secret: []byte("test-secret"), TTL: time.Hour},
		Clock:  store,
		IDGen:  store,
	}
}

type fakeSellers []ports.SellerRef

func (f fakeSellers) GetSeller(_ context.Context, sellerID string) (ports.SellerRef, bool, error) {
	for _, seller := range f {
		if seller.SellerID == sellerID {
			return seller, true, nil
		}
	}
	return ports.SellerRef{}, false, nil
}

func (f fakeSellers) ListSellers(_ context.Context) ([]ports.SellerRef, error) {
	return f, nil
}
