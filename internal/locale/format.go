package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tag returns the BCP 47 tag used for number formatting.
func Tag(l Lang) language.Tag {
	switch l {
	case English:
		return language.AmericanEnglish
	case Chinese:
		return language.SimplifiedChinese
	default:
		return language.Korean
	}
}

// FormatDate renders a long-form date the way each audience reads it.
func FormatDate(t time.Time, l Lang) string {
	if t.IsZero() {
		return ""
	}
	switch l {
	case English:
		return t.Format("January 2, 2006")
	case Chinese:
		return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
	default:
		return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
	}
}

// FormatCount renders n with locale digit grouping.
func FormatCount(n int, l Lang) string {
	return message.NewPrinter(Tag(l)).Sprintf("%d", n)
}

// Truncate shortens text to max runes, appending "..." when it cuts.
func Truncate(text string, max int) string {
	r := []rune(text)
	if max < 0 || len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
