package api

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"moneta/internal/core"
)

// Wire DTOs. The backend is loose about types: amounts arrive as numbers or
// decimal strings, dates as a handful of timestamp layouts, transaction types
// in whatever casing the writing client used. All of that is normalized here,
// at the boundary, so the core only ever sees clean values.

type transactionDTO struct {
	ID          string     `json:"id,omitempty"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date"`
	Amount      flexAmount `json:"transactionAmount"`
	Currency    string     `json:"currency,omitempty"`
	Account     string     `json:"account"`
	ToAccount   string     `json:"toAccount,omitempty"`
	Category    string     `json:"category,omitempty"`
	Type        string     `json:"transactionType"`
	Split       bool       `json:"isSplitTransaction"`
}

type accountDTO struct {
	ID      string     `json:"id,omitempty"`
	UserID  string     `json:"userId"`
	Name    string     `json:"name"`
	Balance flexAmount `json:"balance"`
	Icon    string     `json:"icon,omitempty"`
	Ignored bool       `json:"isIgnored"`
}

type budgetLimitDTO struct {
	Month int        `json:"month"`
	Year  int        `json:"year"`
	Limit flexAmount `json:"limit"`
}

type categoryDTO struct {
	ID       string           `json:"id,omitempty"`
	UserID   string           `json:"userId"`
	Type     string           `json:"transactionType"`
	Name     string           `json:"name"`
	Icon     string           `json:"icon,omitempty"`
	Ignored  bool             `json:"isIgnored"`
	Budgeted bool             `json:"isBudgeted"`
	Limits   []budgetLimitDTO `json:"budgetLimits,omitempty"`
}

// flexAmount decodes a JSON number or a decimal string; anything malformed
// degrades to 0 instead of failing the whole payload.
type flexAmount float64

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			*a = 0
			return nil
		}
		*a = flexAmount(core.ParseAmount(raw))
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = flexAmount(v)
	return nil
}

func (a flexAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// dateLayouts are tried in order when decoding backend timestamps.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate returns the zero time for anything unparseable. Downstream
// filtering drops zero-dated records from every window, matching the
// backend's historical behavior for garbage dates.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (d transactionDTO) toCore() core.Transaction {
	return core.Transaction{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Date:        parseDate(d.Date),
		Amount:      float64(d.Amount),
		Currency:    d.Currency,
		Account:     d.Account,
		ToAccount:   d.ToAccount,
		Category:    d.Category,
		Type:        core.ParseTransactionType(d.Type),
		Split:       d.Split,
	}
}

func transactionToDTO(t core.Transaction) transactionDTO {
	return transactionDTO{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date.Format(time.RFC3339),
		Amount:      flexAmount(t.Amount),
		Currency:    t.Currency,
		Account:     t.Account,
		ToAccount:   t.ToAccount,
		Category:    t.Category,
		Type:        string(t.Type),
		Split:       t.Split,
	}
}

func (d accountDTO) toCore() core.Account {
	return core.Account{
		ID:      d.ID,
		UserID:  d.UserID,
		Name:    d.Name,
		Balance: float64(d.Balance),
		Icon:    d.Icon,
		Ignored: d.Ignored,
	}
}

func accountToDTO(a core.Account) accountDTO {
	return accountDTO{
		ID:      a.ID,
		UserID:  a.UserID,
		Name:    a.Name,
		Balance: flexAmount(a.Balance),
		Icon:    a.Icon,
		Ignored: a.Ignored,
	}
}

func (d categoryDTO) toCore() core.Category {
	c := core.Category{
		ID:       d.ID,
		UserID:   d.UserID,
		Type:     core.ParseTransactionType(d.Type),
		Name:     d.Name,
		Icon:     d.Icon,
		Ignored:  d.Ignored,
		Budgeted: d.Budgeted,
	}
	for _, bl := range d.Limits {
		c.Limits = append(c.Limits, core.BudgetLimit{Month: bl.Month, Year: bl.Year, Limit: float64(bl.Limit)})
	}
	return c
}

func categoryToDTO(c core.Category) categoryDTO {
	d := categoryDTO{
		ID:       c.ID,
		UserID:   c.UserID,
		Type:     string(c.Type),
		Name:     c.Name,
		Icon:     c.Icon,
		Ignored:  c.Ignored,
		Budgeted: c.Budgeted,
	}
	for _, bl := range c.Limits {
		d.Limits = append(d.Limits, budgetLimitDTO{Month: bl.Month, Year: bl.Year, Limit: flexAmount(bl.Limit)})
	}
	return d
}
