// Package utils provides small helpers shared across packages, such as
// converting loosely typed spreadsheet cells to strings.
package utils
