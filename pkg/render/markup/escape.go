package markup

import (
	"bytes"
	"strings"
)

// htmlReplacer escapes the characters that could close an element or an
// attribute value. Single quotes use the numeric form so output stays valid
// in HTML4 and XHTML.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape returns s with &, <, >, " and ' replaced by HTML entities. The result
// is safe both as element text and inside a double-quoted attribute value.
func Escape(s string) string {
	return htmlReplacer.Replace(s)
}

func writeEscaped(buf *bytes.Buffer, s string) {
	htmlReplacer.WriteString(buf, s)
}
