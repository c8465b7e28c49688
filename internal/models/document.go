package models

import "encoding/json"

// Branding is the customizable product identity shown in the shell.
type Branding struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// Document is the complete data set for one user, persisted as a single JSON
// payload and replaced wholesale on every change.
type Document struct {
	Transactions []Transaction `json:"transactions"`
	EMIs         []EMI         `json:"emis"`
	Budgets      []Budget      `json:"budgets"`
	Goals        []Goal        `json:"goals"`
	Investments  []Investment  `json:"investments"`
	Groups       []Group       `json:"groups"`
	Branding     Branding      `json:"branding"`
}

// DefaultBrandName is used until the user customizes branding.
const DefaultBrandName = "SmartFin"

// DefaultDocument returns an empty document with default branding.
func DefaultDocument() *Document {
	return &Document{
		Transactions: []Transaction{},
		EMIs:         []EMI{},
		Budgets:      []Budget{},
		Goals:        []Goal{},
		Investments:  []Investment{},
		Groups:       []Group{},
		Branding:     Branding{Name: DefaultBrandName},
	}
}

// Encode serializes the document to JSON.
func (d *Document) Encode() ([]byte, error) {
	return json.Marshal(d)
}

// DecodeDocument deserializes a stored document. Decoding is field-tolerant:
// each collection unmarshals independently, and a missing or malformed field
// falls back to its default without invalidating the rest of the document.
// A payload that is not a JSON object at all yields the default document.
func DecodeDocument(data []byte) *Document {
	doc := DefaultDocument()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return doc
	}

	decode := func(key string, dst any) {
		raw, ok := fields[key]
		if !ok {
			return
		}
		// Keep the default on a malformed field; json.Unmarshal may leave
		// dst partially filled, so decode into a scratch value first.
		switch v := dst.(type) {
		case *[]Transaction:
			var out []Transaction
			if json.Unmarshal(raw, &out) == nil && out != nil {
				*v = out
			}
		case *[]EMI:
			var out []EMI
			if json.Unmarshal(raw, &out) == nil && out != nil {
				*v = out
			}
		case *[]Budget:
			var out []Budget
			if json.Unmarshal(raw, &out) == nil && out != nil {
				*v = out
			}
		case *[]Goal:
			var out []Goal
			if json.Unmarshal(raw, &out) == nil && out != nil {
				*v = out
			}
		case *[]Investment:
			var out []Investment
			if json.Unmarshal(raw, &out) == nil && out != nil {
				*v = out
			}
		case *[]Group:
			var out []Group
			if json.Unmarshal(raw, &out) == nil && out != nil {
				*v = out
			}
		case *Branding:
			var out Branding
			if json.Unmarshal(raw, &out) == nil && out.Name != "" {
				*v = out
			}
		}
	}

	decode("transactions", &doc.Transactions)
	decode("emis", &doc.EMIs)
	decode("budgets", &doc.Budgets)
	decode("goals", &doc.Goals)
	decode("investments", &doc.Investments)
	decode("groups", &doc.Groups)
	decode("branding", &doc.Branding)
	return doc
}

// GroupByID returns the group with the given id, or nil.
func (d *Document) GroupByID(id string) *Group {
	for i := range d.Groups {
		if d.Groups[i].ID == id {
			return &d.Groups[i]
		}
	}
	return nil
}

// ReplaceGroup swaps the stored group with the same id for the given one.
// Returns false if no group with that id exists.
func (d *Document) ReplaceGroup(g *Group) bool {
	for i := range d.Groups {
		if d.Groups[i].ID == g.ID {
			d.Groups[i] = *g
			return true
		}
	}
	return false
}
