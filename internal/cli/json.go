package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
)

// jsonToken matches object keys (with their colon), string values,
// true/false/null and numbers.
var jsonToken = regexp.MustCompile(`("(\\u[a-zA-Z0-9]{4}|\\[^u]|[^\\"])*"(\s*:)?|\b(true|false|null)\b|-?\d+(?:\.\d*)?(?:[eE][+\-]?\d+)?)`)

type tokenKind int

const (
	kindKey tokenKind = iota
	kindString
	kindBool
	kindNull
	kindNumber
)

var palette = map[tokenKind]string{
	kindKey:    Blue,
	kindString: Green,
	kindBool:   Yellow,
	kindNull:   DimCode,
	kindNumber: Purple,
}

func classify(token string) tokenKind {
	switch {
	case strings.HasSuffix(token, ":"):
		return kindKey
	case strings.HasPrefix(token, `"`):
		return kindString
	case token == "true", token == "false":
		return kindBool
	case token == "null":
		return kindNull
	default:
		return kindNumber
	}
}

// HighlightJSON colors a JSON document for the terminal. Layout is left
// untouched, so it works on compact log fields and indented CLI output alike.
func HighlightJSON(doc string) string {
	if !Enabled() {
		return doc
	}

	return jsonToken.ReplaceAllStringFunc(doc, func(token string) string {
		kind := classify(token)
		if kind == kindKey {
			// color the key, not the colon
			return Stylize(strings.TrimSuffix(token, ":"), palette[kind]) + ":"
		}
		return Stylize(token, palette[kind])
	})
}

// PrettyPrint writes v to w as indented, highlighted JSON followed by a
// newline. Registry responses are the only values printed this way.
func PrettyPrint(w io.Writer, v interface{}) error {
	doc, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, HighlightJSON(string(doc)))
	return err
}
