package earley

import "bytes"

func dumpState(S *StateSet, stateno int) {
	tracer().Debugf("--- State %04d ------------------------------------", stateno)
	n := 1
	S.items.IterateOnce()
	for S.items.Next() {
		item := S.items.Item().(*Item)
		tracer().Debugf("[%2d] %s", n, item)
		n++
	}
}

func itemSetString(S *StateSet) string {
	var b bytes.Buffer
	b.WriteString("{")
	S.items.IterateOnce()
	first := true
	for S.items.Next() {
		item := S.items.Item().(*Item)
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}
