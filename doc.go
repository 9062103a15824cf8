// Package invoice models the line items of an invoice-style document and the
// amounts derived from them.
//
// The core types are:
//   - Item: one billable line with a description, a quantity, a unit price
//     and a discount percentage.
//   - Number: the result of coercing user input. Input that is not a number
//     is kept as an invalid Number instead of failing.
//   - Ledger: an immutable, ordered snapshot of items. Add, Update and Remove
//     return the next snapshot; operations on unknown ids are no-ops.
//   - Totals: subtotal, tax (21%) and total computed exactly from a Ledger.
//     An invalid item makes the totals invalid.
//   - Session: the state container holding the current snapshot of one
//     editing session, fed with Operations.
//
// Amounts are exact decimals in a single currency (EUR) and are displayed with
// a fixed rule, e.g. "1.336,99 €".
//
// This package is the foundation of the `inv` command-line tool and of its
// web form.
package invoice
