// Package intern maintains the authoritative feature-name → index
// table for one conversion run. Indices are assigned densely from 1 in
// first-occurrence order and are never reassigned. The reserved qid
// token is excluded from the table entirely.
package intern
