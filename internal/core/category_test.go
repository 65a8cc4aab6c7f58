package core

import (
	"math"
	"testing"
)

func TestAggregateByCategoryInsertionOrder(t *testing.T) {
	txns := []Transaction{
		{Type: TypeExpense, Category: "Food", Amount: 10},
		{Type: TypeExpense, Category: "Rent", Amount: 70},
		{Type: TypeIncome, Category: "Salary", Amount: 1000},
		{Type: TypeExpense, Category: "Food", Amount: 20},
	}
	b := AggregateByCategory(txns, TypeExpense)
	if len(b.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(b.Entries))
	}
	if b.Entries[0].Name != "Food" || b.Entries[1].Name != "Rent" {
		t.Fatalf("order got [%s %s], want [Food Rent]", b.Entries[0].Name, b.Entries[1].Name)
	}
	if b.Entries[0].Amount != 30 || b.Entries[1].Amount != 70 {
		t.Fatalf("amounts got [%v %v], want [30 70]", b.Entries[0].Amount, b.Entries[1].Amount)
	}
	if b.Total != 100 {
		t.Fatalf("total = %v, want 100", b.Total)
	}
	if b.Entries[0].Percent != 30 || b.Entries[1].Percent != 70 {
		t.Fatalf("percents got [%v %v], want [30 70]", b.Entries[0].Percent, b.Entries[1].Percent)
	}
}

func TestAggregateByCategoryPercentsSumTo100(t *testing.T) {
	txns := []Transaction{
		{Type: TypeExpense, Category: "A", Amount: 1},
		{Type: TypeExpense, Category: "B", Amount: 1},
		{Type: TypeExpense, Category: "C", Amount: 1},
	}
	b := AggregateByCategory(txns, TypeExpense)
	var sum float64
	for _, e := range b.Entries {
		sum += e.Percent
	}
	if math.Abs(sum-100) > 0.01 {
		t.Fatalf("percent sum = %v, want 100 (±0.01)", sum)
	}
}

func TestAggregateByCategoryZeroTotal(t *testing.T) {
	txns := []Transaction{
		{Type: TypeExpense, Category: "A", Amount: 0},
		{Type: TypeExpense, Category: "B", Amount: 0},
	}
	b := AggregateByCategory(txns, TypeExpense)
	if b.Total != 0 {
		t.Fatalf("total = %v, want 0", b.Total)
	}
	for i, e := range b.Entries {
		if e.Percent != 0 {
			t.Fatalf("entry %d: percent must stay 0 when total is 0, got %v", i, e.Percent)
		}
	}
}

func TestAggregateByCategoryRawStringGrouping(t *testing.T) {
	// Category names are grouped on the raw string; casing difference means
	// different slices.
	txns := []Transaction{
		{Type: TypeExpense, Category: "Food", Amount: 5},
		{Type: TypeExpense, Category: "food", Amount: 5},
	}
	b := AggregateByCategory(txns, TypeExpense)
	if len(b.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(b.Entries))
	}
}

func TestAggregateByCategoryPercentRounding(t *testing.T) {
	txns := []Transaction{
		{Type: TypeExpense, Category: "A", Amount: 1},
		{Type: TypeExpense, Category: "B", Amount: 2},
	}
	b := AggregateByCategory(txns, TypeExpense)
	if b.Entries[0].Percent != 33.33 {
		t.Fatalf("A percent = %v, want 33.33", b.Entries[0].Percent)
	}
	if b.Entries[1].Percent != 66.67 {
		t.Fatalf("B percent = %v, want 66.67", b.Entries[1].Percent)
	}
}
