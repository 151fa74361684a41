package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Commentary blocks shown above each tab's table, written in markdown and
// rendered server-side.
const (
	introMarkdown = `This dashboard explores the Titanic passenger manifest.
It covers three views:

- **Survival Patterns** — survival by class, sex, and age group.
- **Family Groups** — family sizes, ticket fares, and surnames.
- **Age Division** — age relative to the class median and survival outcome.

Use the tabs below to switch between views.`

	demographicsMarkdown = `This table shows the number of passengers, number of survivors,
and survival rate grouped by **class, sex, and age group**.

*Research question: did women in first class have a significantly higher survival
rate compared to men across other classes?* The chi-square tests below quantify
how strongly survival depends on class and on sex.`

	familiesMarkdown = `This table summarizes passengers by **family size and class**,
showing the average, minimum, and maximum ticket fares.

Repeated surnames back up the family-size column: if many passengers share a
surname, they likely traveled together. The surname table lists families
(family size > 1) with their survival rates.

*Research question: did larger families in 3rd class pay higher fares on average
compared to smaller families?*`

	ageDivisionMarkdown = `Each passenger with a known age is labeled **older_passenger**:
` + "`true`" + ` when they are older than the median age of their class, ` + "`false`" + ` otherwise
(a passenger exactly at the median is not older).

*Research question: did younger passengers in each class survive at higher rates
compared to older passengers?*`
)

// renderMarkdown converts a markdown commentary block to embeddable HTML.
// Parser instances are single-use, so each call builds a fresh one.
func renderMarkdown(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(src), p, renderer))
}
