// Package format renders parse results for human and machine consumption:
// ASCII derivation trees, the chart discovery table, and JSON.
package format
