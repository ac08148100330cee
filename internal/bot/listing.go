package bot

import (
	"fmt"
	"strings"

	"arzbot/internal/numeric"
	"arzbot/models"
)

var sectionTitles = map[string]string{
	models.SectionMainCurrencies:  "💵 ارزهای اصلی",
	models.SectionMinorCurrencies: "💱 ارزهای فرعی",
	models.SectionGold:            "🥇 طلا و سکه",
}

// RenderListing renders one page of a snapshot section. ok is false when
// the snapshot is missing, the section is empty, or the page is out of
// range. Pages count from zero.
func RenderListing(snap *models.PriceSnapshot, section string, page, pageSize int) (string, bool) {
	quotes := snap.Section(section)
	if len(quotes) == 0 || pageSize <= 0 {
		return "", false
	}

	pages := (len(quotes) + pageSize - 1) / pageSize
	if page < 0 || page >= pages {
		return "", false
	}

	start := page * pageSize
	end := start + pageSize
	if end > len(quotes) {
		end = len(quotes)
	}

	title := sectionTitles[section]
	if title == "" {
		title = section
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	for _, q := range quotes[start:end] {
		fmt.Fprintf(&b, "%s: <b>%s ت</b>", q.Name, numeric.FormatString(q.LivePrice))
		if change := numeric.FormatChange(q.Change); change != "" && change != q.Change {
			fmt.Fprintf(&b, "  %s", change)
		}
		b.WriteByte('\n')
	}

	if pages > 1 {
		fmt.Fprintf(&b, "\nصفحه %d از %d", page+1, pages)
	}
	fmt.Fprintf(&b, "\n⏱ آخرین بروزرسانی: %s", snap.LastUpdate)
	return b.String(), true
}

// PageCount returns how many pages a section spans.
func PageCount(snap *models.PriceSnapshot, section string, pageSize int) int {
	n := len(snap.Section(section))
	if n == 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}
