package usecase

import (
	"html"
	"strconv"
	"strings"
)

// listMarkers tavsiya blokini boshlovchi raqamlar
var listMarkers = []string{"1.", "2.", "3.", "4.", "5.", "6.", "7.", "8."}

// incomeMarkers daromad qatorini aniqlash (kichik harfda taqqoslanadi)
var incomeMarkers = []string{"dólares", "dollars", "dollari", "usd"}

const (
	blockOpen  = "<div class='career-suggestion'>"
	blockClose = "</div>"
)

// suggestionWriter bir marta o'tuvchi klassifikator. Bloklar ichma-ich ochiladi,
// yopuvchi teg faqat finish da, bir marta yoziladi.
type suggestionWriter struct {
	b       strings.Builder
	inBlock bool
	count   int
}

func (w *suggestionWriter) heading(name string) {
	w.count++
	w.b.WriteString(blockOpen)
	w.b.WriteString("<h3>")
	w.b.WriteString(strconv.Itoa(w.count))
	w.b.WriteString(". <span style='font-size: 1.2em; font-weight: bold;'>")
	w.b.WriteString(html.EscapeString(name))
	w.b.WriteString("</span></h3>")
	w.inBlock = true
}

func (w *suggestionWriter) income(line string) {
	w.b.WriteString("<p class='income-range' style='color: #4CAF50 !important;'>")
	w.b.WriteString(html.EscapeString(line))
	w.b.WriteString("</p>")
}

func (w *suggestionWriter) paragraph(line string) {
	w.b.WriteString("<p>")
	w.b.WriteString(html.EscapeString(line))
	w.b.WriteString("</p>")
}

// finish har doim aynan bitta yopuvchi teg qo'shadi, blok ochilmagan bo'lsa ham
func (w *suggestionWriter) finish() string {
	w.b.WriteString(blockClose)
	w.inBlock = false
	return w.b.String()
}

// FormatSuggestions converts a plain-text reply into career-suggestion markup.
func FormatSuggestions(reply string) string {
	w := &suggestionWriter{}
	for _, raw := range strings.Split(reply, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case isListItem(line):
			_, name, _ := strings.Cut(line, ".")
			w.heading(strings.TrimSpace(name))
		case isIncomeLine(line):
			w.income(line)
		default:
			w.paragraph(line)
		}
	}
	return w.finish()
}

func isListItem(line string) bool {
	for _, m := range listMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

func isIncomeLine(line string) bool {
	lower := strings.ToLower(line)
	for _, m := range incomeMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
