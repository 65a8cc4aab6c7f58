package api

import (
	"context"

	"moneta/internal/core"
)

// Ports consumed by the refresh and report layers. The concrete *Client
// implements all of them; tests substitute fakes.
type (
	TransactionLister interface {
		ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error)
	}

	AccountLister interface {
		ListAccounts(ctx context.Context, userID string) ([]core.Account, error)
	}

	CategoryLister interface {
		ListCategories(ctx context.Context, userID string) ([]core.Category, error)
	}

	// Backend is the full read surface of the remote API.
	Backend interface {
		TransactionLister
		AccountLister
		CategoryLister
	}
)
