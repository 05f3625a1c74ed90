// Package snapshot turns the raw inventory export into canonical stock
// records.
//
// The export is an Excel workbook produced by the warehouse system. The first
// row of the first sheet is a header row; every following row describes one
// stock line. Two columns matter:
//
//   - a composite "Code & Description" column whose leading token is the SKU
//   - a numeric "Balance" column holding the quantity delta to apply
//
// Both column names are configurable. Rows without a usable SKU (missing
// column, empty token, or the spreadsheet's "nan" placeholder) are non-product
// rows and are dropped silently. A missing or unparsable balance normalizes to
// a delta of 0 rather than dropping the row.
//
// Parsing is all-or-nothing: a corrupt or non-tabular payload fails the load
// with transfer.ErrTransfer, never with a partial row set.
package snapshot
