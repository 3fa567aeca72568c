// Package report exports the store to an XLSX workbook.
package report
