// Package mapsink writes the index→name mapping file, either in one
// pass at end of run or incrementally as features are discovered.
// Lines have the form "INDEX NAME", one per interned feature, in
// ascending assignment order.
package mapsink
