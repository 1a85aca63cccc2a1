package svmlight

import "strings"

// CommentPrefix marks a comment line. Comment lines are passed through
// verbatim and never reach ParseLine.
const CommentPrefix = "#"

// IsComment reports whether a trimmed line is a comment line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, CommentPrefix)
}

// ParseLine parses one data line into a Record. The line is trimmed
// first; ok is false for lines that are empty after trimming (the
// caller skips them). Comment lines must be routed to the comment path
// before calling ParseLine.
//
// The info segment starts at the first '#' and is kept verbatim,
// including the '#'. The remainder splits on single spaces: the first
// token is the target, every later token containing a ':' splits on
// the first ':' into a feature/value pair, and tokens without a ':'
// are dropped.
func ParseLine(line string) (rec Record, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, false
	}

	if i := strings.Index(line, CommentPrefix); i >= 0 {
		rec.Info = line[i:]
		line = strings.TrimRight(line[:i], " ")
	}

	tokens := strings.Split(line, " ")
	rec.Target = tokens[0]

	for _, tok := range tokens[1:] {
		name, value, found := strings.Cut(tok, ":")
		if !found {
			continue
		}

		rec.Features = append(rec.Features, Feature{Ref: NameRef(name), Value: value})
	}

	return rec, true
}

// FormatLine renders a record as an output line, newline included.
// The layout is TARGET F:V F:V ... INFO; a single space always
// precedes the info field, so lines with empty info end in a trailing
// space before the newline.
func FormatLine(rec Record) string {
	var sb strings.Builder

	sb.WriteString(rec.Target)
	sb.WriteByte(' ')

	for i, f := range rec.Features {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(f.Ref.String())
		sb.WriteByte(':')
		sb.WriteString(f.Value)
	}

	sb.WriteByte(' ')
	sb.WriteString(rec.Info)
	sb.WriteByte('\n')

	return sb.String()
}
