package accountsadapter

import (
	"context"

	accountapp "ruleset/contexts/identity-access/account-service/application"
)

// Directory resolves seller profiles to their primary account user through
// the account context.
type Directory struct {
	Accounts accountapp.Service
}

func NewDirectory(accounts accountapp.Service) Directory {
	return Directory{Accounts: accounts}
}

func (d Directory) PrimarySellerUserID(ctx context.Context, sellerID string) (string, bool, error) {
	return d.Accounts.PrimarySellerUserID(ctx, sellerID)
}
