package models

import (
	"strings"
	"testing"
	"time"
)

func TestDocumentRoundTrip(t *testing.T) {
	doc := DefaultDocument()
	doc.Transactions = []Transaction{
		{ID: "t1", Amount: 100.0, Category: "Food", Type: Expense, Date: time.Now().UTC()},
	}
	doc.Goals = []Goal{
		{ID: "g1", Name: "Vacation", TargetAmount: 1000, CurrentAmount: 250},
	}
	doc.Groups = []Group{
		{
			ID:         "grp1",
			Name:       "Trip",
			InviteCode: "SMART-AB12",
			Members:    []Member{{ID: "m1", Name: "Alice", IsUser: true}},
			Transactions: []GroupTransaction{
				{ID: "gt1", GroupID: "grp1", Amount: 30.0, PaidByID: "m1", SplitBetweenIDs: []string{"m1"}},
			},
		},
	}
	doc.Branding = Branding{Name: "MyMoney", LogoURL: "https://example.com/logo.png"}

	payload, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded := DecodeDocument(payload)
	if len(decoded.Transactions) != 1 || decoded.Transactions[0].ID != "t1" {
		t.Errorf("transactions = %+v", decoded.Transactions)
	}
	if len(decoded.Goals) != 1 || decoded.Goals[0].CurrentAmount != 250 {
		t.Errorf("goals = %+v", decoded.Goals)
	}
	if len(decoded.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(decoded.Groups))
	}
	group := decoded.Groups[0]
	if group.InviteCode != "SMART-AB12" || len(group.Members) != 1 || len(group.Transactions) != 1 {
		t.Errorf("group = %+v", group)
	}
	if decoded.Branding.Name != "MyMoney" {
		t.Errorf("branding = %+v", decoded.Branding)
	}
}

func TestDocumentJSONFieldNames(t *testing.T) {
	doc := DefaultDocument()
	doc.Groups = []Group{{
		ID: "g1",
		Transactions: []GroupTransaction{
			{ID: "t1", PaidByID: "m1", SplitBetweenIDs: []string{"m1"}},
		},
	}}

	payload, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// The wire format is fixed; stored documents from older versions must
	// keep decoding.
	for _, key := range []string{`"paidById"`, `"splitBetweenIds"`, `"inviteCode"`, `"isUser"`, `"branding"`} {
		if !strings.Contains(string(payload), key) {
			t.Errorf("encoded document missing %s", key)
		}
	}
}

func TestDecodeDocumentTolerance(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		validateFunc func(t *testing.T, doc *Document)
	}{
		{
			name:    "not json at all",
			payload: "garbage",
			validateFunc: func(t *testing.T, doc *Document) {
				if doc.Branding.Name != DefaultBrandName {
					t.Errorf("branding = %+v, want default", doc.Branding)
				}
				if doc.Transactions == nil || len(doc.Transactions) != 0 {
					t.Errorf("transactions = %+v, want empty", doc.Transactions)
				}
			},
		},
		{
			name:    "one corrupt field keeps the rest",
			payload: `{"transactions":"not-a-list","goals":[{"id":"g1","name":"Vacation","targetAmount":100}]}`,
			validateFunc: func(t *testing.T, doc *Document) {
				if len(doc.Transactions) != 0 {
					t.Errorf("transactions = %+v, want default empty", doc.Transactions)
				}
				if len(doc.Goals) != 1 || doc.Goals[0].Name != "Vacation" {
					t.Errorf("goals = %+v, want the valid goal", doc.Goals)
				}
			},
		},
		{
			name:    "missing fields fall back to defaults",
			payload: `{"budgets":[{"id":"b1","category":"Food","limit":500}]}`,
			validateFunc: func(t *testing.T, doc *Document) {
				if len(doc.Budgets) != 1 {
					t.Errorf("budgets = %+v", doc.Budgets)
				}
				if doc.Branding.Name != DefaultBrandName {
					t.Errorf("branding = %+v, want default", doc.Branding)
				}
				if doc.Groups == nil {
					t.Error("groups is nil, want empty slice")
				}
			},
		},
		{
			name:    "empty branding name keeps default",
			payload: `{"branding":{"name":""}}`,
			validateFunc: func(t *testing.T, doc *Document) {
				if doc.Branding.Name != DefaultBrandName {
					t.Errorf("branding = %q, want %q", doc.Branding.Name, DefaultBrandName)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, DecodeDocument([]byte(tt.payload)))
		})
	}
}

func TestGroupClone(t *testing.T) {
	original := &Group{
		ID:      "g1",
		Members: []Member{{ID: "m1", Name: "Alice"}},
		Transactions: []GroupTransaction{
			{ID: "t1", SplitBetweenIDs: []string{"m1"}},
		},
	}

	clone := original.Clone()
	clone.Members[0].Name = "Changed"
	clone.Transactions[0].SplitBetweenIDs[0] = "changed"
	clone.Transactions = append(clone.Transactions, GroupTransaction{ID: "t2"})

	if original.Members[0].Name != "Alice" {
		t.Error("clone shares member backing array with original")
	}
	if original.Transactions[0].SplitBetweenIDs[0] != "m1" {
		t.Error("clone shares split id slice with original")
	}
	if len(original.Transactions) != 1 {
		t.Error("clone shares transaction slice with original")
	}
}

func TestMemberName(t *testing.T) {
	group := &Group{Members: []Member{{ID: "m1", Name: "Alice"}}}

	if got := group.MemberName("m1"); got != "Alice" {
		t.Errorf("MemberName = %q, want Alice", got)
	}
	if got := group.MemberName("gone"); got != "Deleted Member" {
		t.Errorf("MemberName = %q, want Deleted Member", got)
	}
}

func TestHasHistory(t *testing.T) {
	group := &Group{
		Transactions: []GroupTransaction{
			{ID: "t1", PaidByID: "payer", SplitBetweenIDs: []string{"sharer"}},
		},
	}

	if !group.HasHistory("payer") {
		t.Error("payer should have history")
	}
	if !group.HasHistory("sharer") {
		t.Error("split participant should have history")
	}
	if group.HasHistory("bystander") {
		t.Error("uninvolved member should have no history")
	}
}

func TestReplaceGroup(t *testing.T) {
	doc := DefaultDocument()
	doc.Groups = []Group{{ID: "g1", Name: "Old"}}

	if ok := doc.ReplaceGroup(&Group{ID: "g1", Name: "New"}); !ok {
		t.Fatal("ReplaceGroup returned false for existing group")
	}
	if doc.Groups[0].Name != "New" {
		t.Errorf("group name = %q, want New", doc.Groups[0].Name)
	}

	if ok := doc.ReplaceGroup(&Group{ID: "missing"}); ok {
		t.Error("ReplaceGroup returned true for unknown group")
	}
}
