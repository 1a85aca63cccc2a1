// Package convert drives end-to-end conversion of a named-feature
// svmlight file into an indexed one, plus the optional index→name
// mapping output.
//
// Two modes exist. Streaming mode processes one line at a time,
// preserves comment/data interleaving exactly, and emits mapping
// entries live as features are discovered; it is the primary mode.
// Batch mode loads the whole file, groups all comments before the
// data, and writes the mapping in one pass at the end, mirroring the
// classic whole-file converters.
package convert
