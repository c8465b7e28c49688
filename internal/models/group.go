package models

import "time"

// Member is a participant in a group.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	// For members joined via invite redemption this is the user's account id.
	ID string `json:"id"`

	// Name is the display name of the member.
	Name string `json:"name"`

	// Contact is the member's email or phone. Invite redemption matches on
	// this field to keep joining idempotent.
	Contact string `json:"contact"`

	// IsUser marks the local account holder. Balance signs are read from
	// this member's point of view in the UI; the engine itself is symmetric.
	IsUser bool `json:"isUser"`
}

// GroupTransaction is a shared expense split evenly among a subset of members.
type GroupTransaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// GroupID is the group this expense belongs to.
	GroupID string `json:"groupId"`

	// Description is the human-readable label for the expense.
	Description string `json:"description"`

	// Amount is the full expense amount, always positive. The stored value
	// is never rounded; per-person shares are rounded for display only.
	Amount float64 `json:"amount"`

	// PaidByID is the member who paid. This is a soft reference: the member
	// may have been removed since, in which case it no longer resolves.
	PaidByID string `json:"paidById"`

	// SplitBetweenIDs are the members sharing the expense evenly.
	// Non-empty, no duplicates. Entries are soft references like PaidByID.
	SplitBetweenIDs []string `json:"splitBetweenIds"`

	// Date is when the expense was recorded. Preserved across edits.
	Date time.Time `json:"date"`

	// Category is the expense category, "Other" unless set explicitly.
	Category string `json:"category"`
}

// Group is a shared ledger of evenly-split expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g. "Goa Trip", "Flat Rent").
	Name string `json:"name"`

	// Description says what the group is for.
	Description string `json:"description"`

	// InviteCode is the shareable join token, immutable for the group's
	// lifetime. Format: "SMART-" plus a short random alphanumeric suffix.
	InviteCode string `json:"inviteCode"`

	// CreatedAt is when the group was created.
	CreatedAt time.Time `json:"createdAt"`

	// Members are the current participants. Removing a member does not
	// touch Transactions; see the package doc on soft references.
	Members []Member `json:"members"`

	// Transactions is the expense history, newest first.
	Transactions []GroupTransaction `json:"transactions"`
}

// Clone returns a deep copy of the group. Mutating operations work on a
// clone so callers holding the previous snapshot never see partial updates.
func (g *Group) Clone() *Group {
	out := *g
	out.Members = append([]Member(nil), g.Members...)
	out.Transactions = make([]GroupTransaction, len(g.Transactions))
	for i, t := range g.Transactions {
		t.SplitBetweenIDs = append([]string(nil), t.SplitBetweenIDs...)
		out.Transactions[i] = t
	}
	return &out
}

// MemberByID returns the current member with the given id, or nil if the id
// no longer resolves (removed member).
func (g *Group) MemberByID(id string) *Member {
	for i := range g.Members {
		if g.Members[i].ID == id {
			return &g.Members[i]
		}
	}
	return nil
}

// MemberName resolves a member id for display. Ids that no longer resolve
// render as "Deleted Member" rather than failing.
func (g *Group) MemberName(id string) string {
	if m := g.MemberByID(id); m != nil {
		return m.Name
	}
	return "Deleted Member"
}

// HasHistory reports whether the member appears in any transaction, as payer
// or as a split participant.
func (g *Group) HasHistory(memberID string) bool {
	for _, t := range g.Transactions {
		if t.PaidByID == memberID {
			return true
		}
		for _, id := range t.SplitBetweenIDs {
			if id == memberID {
				return true
			}
		}
	}
	return false
}
