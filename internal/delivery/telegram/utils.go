package telegram

import "strings"

// Telegram HTML rejimi faqat &lt; &gt; &amp; &quot; nomli entitylarini qabul qiladi
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
