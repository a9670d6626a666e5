package wordpress

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// ExtractExcerpt はHTML断片からテキストのみを抽出し、maxLen文字に切り詰める。
// maxLenが負の場合は切り詰めない。script/style要素の中身は含めない。
func ExtractExcerpt(htmlFragment string, maxLen int) string {
	if htmlFragment == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(htmlFragment))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text := strings.Join(strings.Fields(b.String()), " ")
	if maxLen < 0 || utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	cut := runes[:maxLen]
	// 単語の途中で切らない
	if idx := strings.LastIndex(string(cut), " "); idx > 0 {
		cut = []rune(string(cut)[:idx])
	}
	return strings.TrimSpace(string(cut)) + "…"
}
