// Package utils provides common utility functions for the trade-ledger application.
// It includes lenient type conversion helpers used when reading exported trade
// tables and query parameters.
package utils
