package service

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// plainText removes markup from a value that is stored and compared as plain
// text. bluemonday escapes the text it keeps, so the result is unescaped to
// give back the characters the client sent. Unescaping can expose new markup
// ("&lt;b&gt;"), so passes repeat while the value keeps shrinking.
func plainText(policy *bluemonday.Policy, s string) string {
	for {
		out := html.UnescapeString(policy.Sanitize(s))
		if len(out) >= len(s) {
			return out
		}
		s = out
	}
}
