package scs

import (
	"strings"
)

// Source renders the table back to script text. The output round-trips
// through the parser: keys keep their order, strings their quotes, numbers
// their original lexemes.
func (t *Table) Source() string {
	var sb strings.Builder
	t.write(&sb, 0)
	return sb.String()
}

func (t *Table) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("\t", depth)
	for _, kv := range t.Entries {
		sb.WriteString(indent)
		sb.WriteString(kv.Key)
		for i := range kv.Values {
			sb.WriteByte(' ')
			sb.WriteString(kv.Values[i].Source())
		}
		if kv.Sub != nil {
			sb.WriteString("\n")
			sb.WriteString(indent)
			sb.WriteString("{\n")
			kv.Sub.write(sb, depth+1)
			sb.WriteString(indent)
			sb.WriteString("}")
		}
		sb.WriteString("\n")
	}
}
