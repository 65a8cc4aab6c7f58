package core

import (
	"errors"
	"strings"
	"time"
)

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
	TypeUnknown  TransactionType = ""
)

const (
	ViewDaily   ViewMode = "daily"
	ViewWeekly  ViewMode = "weekly"
	ViewMonthly ViewMode = "monthly"
	ViewUnknown ViewMode = ""
)

type (
	// TransactionType is the normalized kind of a transaction. The remote
	// backend is inconsistent about casing and also uses the legacy synonyms
	// "debit" and "credit"; ParseTransactionType folds all of them.
	TransactionType string

	// ViewMode is the aggregation granularity selected by the user.
	ViewMode string

	Transaction struct {
		ID          string
		UserID      string
		Title       string
		Description string
		// Date is the transaction timestamp. A zero Date marks a record whose
		// upstream date string did not parse; such records never match a time
		// window and are silently dropped by filtering.
		Date      time.Time
		Amount    float64
		Currency  string
		Account   string
		ToAccount string // destination account, transfers only
		Category  string
		Type      TransactionType
		Split     bool
	}

	Account struct {
		ID      string
		UserID  string
		Name    string
		Balance float64
		Icon    string
		Ignored bool
	}

	// BudgetLimit is a category-scoped spending cap for one (month, year) pair.
	BudgetLimit struct {
		Month int // 1-12
		Year  int
		Limit float64
	}

	Category struct {
		ID       string
		UserID   string
		Type     TransactionType // income or expense
		Name     string
		Icon     string
		Ignored  bool
		Budgeted bool
		Limits   []BudgetLimit
	}
)

var (
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyAccount  = errors.New("empty account")
	ErrEmptyCategory = errors.New("empty category")
	ErrEmptyUserID   = errors.New("empty user id")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidMonth  = errors.New("invalid month")
)

// ParseTransactionType normalizes a raw transaction type string from the
// backend into a TransactionType. Comparison is case-insensitive and the
// legacy synonyms debit/credit map to expense/income. Anything else yields
// TypeUnknown; aggregation treats unknown-typed records as contributing
// nothing rather than failing.
func ParseTransactionType(s string) TransactionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense", "debit":
		return TypeExpense
	case "income", "credit":
		return TypeIncome
	case "transfer":
		return TypeTransfer
	default:
		return TypeUnknown
	}
}

// ParseViewMode normalizes a raw view mode string. Unknown input yields
// ViewUnknown, which filtering treats as "no filtering" rather than an error.
func ParseViewMode(s string) ViewMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return ViewDaily
	case "weekly":
		return ViewWeekly
	case "monthly":
		return ViewMonthly
	default:
		return ViewUnknown
	}
}

func (tt TransactionType) Valid() bool {
	switch tt {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	default:
		return false
	}
}

func (vm ViewMode) Valid() bool {
	switch vm {
	case ViewDaily, ViewWeekly, ViewMonthly:
		return true
	default:
		return false
	}
}

func (bl BudgetLimit) Validate() error {
	if bl.Month < 1 || bl.Month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// Validate checks a transaction before it is sent to the backend. Records
// coming back from the backend are never validated; malformed fields degrade
// to zero values instead (see ParseAmount and Transaction.Date).
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.UserID) == "" {
		return ErrEmptyUserID
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.Account) == "" {
		return ErrEmptyAccount
	}
	if t.Type != TypeTransfer && strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Type == TypeTransfer && strings.TrimSpace(t.ToAccount) == "" {
		return errors.New("transfer requires a destination account")
	}
	return nil
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.UserID) == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if c.Type != TypeIncome && c.Type != TypeExpense {
		return ErrInvalidType
	}
	for _, bl := range c.Limits {
		if err := bl.Validate(); err != nil {
			return err
		}
	}
	return nil
}
