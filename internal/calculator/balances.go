// Package calculator computes group balances and personal ledger summaries.
// All functions are pure: they read a snapshot and return derived values,
// never mutating their inputs.
package calculator

import (
	"math"

	"github.com/smartfin/smartfin/internal/models"
)

// SettleEpsilon is the tolerance under which a balance counts as settled.
// Balances are plain binary floats, so comparisons against zero must use
// this epsilon rather than exact equality.
const SettleEpsilon = 0.01

// IsSettled reports whether a balance is within rounding tolerance of zero.
func IsSettled(balance float64) bool {
	return math.Abs(balance) < SettleEpsilon
}

// ComputeBalances returns each current member's net position:
//
//	balance(m) = Σ(amount paid by m) − Σ(share owed by m)
//
// where each transaction's share is amount / len(splitBetweenIds). The
// result covers exactly the current member set; contributions attributed to
// removed members are dropped, so the output sums to zero only when every
// referenced id still resolves (see the models package doc on soft
// references).
func ComputeBalances(g *models.Group) map[string]float64 {
	balances := make(map[string]float64, len(g.Members))
	for _, m := range g.Members {
		balances[m.ID] = 0
	}

	for _, t := range g.Transactions {
		if len(t.SplitBetweenIDs) == 0 {
			continue
		}
		share := t.Amount / float64(len(t.SplitBetweenIDs))
		for _, id := range t.SplitBetweenIDs {
			if _, ok := balances[id]; ok {
				balances[id] -= share
			}
		}
		if _, ok := balances[t.PaidByID]; ok {
			balances[t.PaidByID] += t.Amount
		}
	}
	return balances
}

// UserBalance returns the net position of the member marked IsUser, as shown
// on the groups list. Zero if no member carries the flag.
func UserBalance(g *models.Group) float64 {
	balances := ComputeBalances(g)
	for _, m := range g.Members {
		if m.IsUser {
			return balances[m.ID]
		}
	}
	return 0
}

// DebtEdge is a suggested payment from one member to another.
type DebtEdge struct {
	FromID string  // member who owes
	ToID   string  // member who is owed
	Amount float64
}

// SimplifyDebts turns net balances into a short list of settling payments.
// Debtors and creditors are matched greedily in member order, so the result
// is deterministic for a given group snapshot. Edges under the settlement
// epsilon are dropped as floating point noise.
func SimplifyDebts(g *models.Group) []DebtEdge {
	balances := ComputeBalances(g)

	// Walk members in declared order rather than map order.
	var debtors, creditors []string
	owed := make(map[string]float64, len(g.Members))
	for _, m := range g.Members {
		bal := balances[m.ID]
		switch {
		case bal <= -SettleEpsilon:
			debtors = append(debtors, m.ID)
			owed[m.ID] = -bal
		case bal >= SettleEpsilon:
			creditors = append(creditors, m.ID)
			owed[m.ID] = bal
		}
	}

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := debtors[i], creditors[j]
		amount := math.Min(owed[debtor], owed[creditor])
		if amount >= SettleEpsilon {
			edges = append(edges, DebtEdge{FromID: debtor, ToID: creditor, Amount: amount})
		}
		owed[debtor] -= amount
		owed[creditor] -= amount
		if owed[debtor] < SettleEpsilon {
			i++
		}
		if owed[creditor] < SettleEpsilon {
			j++
		}
	}
	return edges
}

// PerPersonShare returns one participant's even share of an amount, rounded
// to two decimals for display. The stored amount stays unrounded to avoid
// cumulative drift.
func PerPersonShare(amount float64, participants int) float64 {
	if participants <= 0 {
		return 0
	}
	return math.Round(amount/float64(participants)*100) / 100
}
