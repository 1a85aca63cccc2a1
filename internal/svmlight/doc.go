// Package svmlight implements the svmlight line format used by the
// converter: parsing of data lines into records, serialization back to
// text, and the FeatureRef variant that identifies a feature by name,
// by assigned index, or as the reserved qid token.
//
// Line grammar:
//
//	<line> .=. <target> <feature>:<value> ... <feature>:<value> [#<info>]
//
// Parsing is deliberately permissive: tokens without a colon are
// dropped, values are kept verbatim and never interpreted as numbers,
// and the target is whatever the first token happens to be. Stricter
// validation, if ever needed, belongs in a layer above this package.
package svmlight
