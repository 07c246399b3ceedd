// Package tables holds the quarter-sine lookup tables used by the
// transform engine, one per supported transform size.
package tables
