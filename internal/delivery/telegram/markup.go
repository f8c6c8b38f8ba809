package telegram

import (
	"strings"

	"golang.org/x/net/html"
)

// toTelegramHTML pipeline markupini Telegram qo'llaydigan HTML to'plamiga o'giradi:
// sarlavhalar qalin, daromad qatori kursiv, paragraflar alohida qator.
// Teg bo'lmagan matn (masalan xato xabari) escape qilinib qaytadi.
func toTelegramHTML(markup string) string {
	var b strings.Builder
	italic := false
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(collapseBlankLines(b.String()))
		case html.TextToken:
			b.WriteString(escapeHTML(string(z.Text())))
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "div":
				// bloklar ichma-ich keladi, ajratuvchi ochilishda qo'yiladi
				if b.Len() > 0 {
					b.WriteString("\n")
				}
			case "h3":
				b.WriteString("<b>")
			case "p":
				if hasAttr && isIncomeParagraph(z) {
					b.WriteString("<i>")
					italic = true
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "h3":
				b.WriteString("</b>\n")
			case "p":
				if italic {
					b.WriteString("</i>")
					italic = false
				}
				b.WriteString("\n")
			}
		}
	}
}

// isIncomeParagraph class='income-range' atributini tekshiradi
func isIncomeParagraph(z *html.Tokenizer) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "class" && strings.Contains(string(val), "income-range") {
			return true
		}
		if !more {
			return false
		}
	}
}

// collapseBlankLines ketma-ket ikkitadan ortiq yangi qatorni bittasiga qisqartiradi
func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
