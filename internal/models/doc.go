// Package models defines the core domain models for SmartFin.
//
// # Document-oriented storage
//
// All of a user's data lives in a single [Document]: personal transactions,
// EMIs, budgets, goals, investments, groups, and branding. The document is
// persisted as one JSON payload per user and replaced wholesale on every
// change, so a reader always observes either the previous snapshot or the
// fully updated one.
//
// # Soft references
//
// Group transactions reference members by id only. A member may be removed
// from a group while transactions still carry their id; those ids no longer
// resolve and are rendered as "Deleted Member". Historical transactions are
// never rewritten when membership changes.
//
// # Design Principles
//
//  1. Avoid circular references: relationships are id strings, not pointers
//  2. Models carry no behavior beyond cloning and small derived values;
//     all ledger math lives in the calculator package
//  3. Monetary amounts are float64 in display units, compared against the
//     0.01 settlement epsilon rather than for exact equality
package models
