package markdown

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

var tablePattern = regexp.MustCompile(`(?is)<table\b[^>]*>.*?</table>`)

// FromHTML converts an HTML fragment to markdown. Tables are pre-converted
// to markdown tables because the converter would otherwise flatten them.
func FromHTML(html string) (string, error) {
	converter := md.NewConverter("", true, nil)

	out, err := converter.ConvertString(convertTables(html))
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	return out, nil
}

// convertTables replaces every <table> in the HTML with a markdown table.
func convertTables(html string) string {
	return tablePattern.ReplaceAllStringFunc(html, convertTable)
}

func convertTable(tableHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		return tableHTML
	}

	var builder strings.Builder

	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		headers := []string{}
		headerRow := table.Find("thead tr").First()
		if headerRow.Length() == 0 {
			headerRow = table.Find("tr").First()
		}
		headerRow.Find("th, td").Each(func(j int, header *goquery.Selection) {
			headers = append(headers, strings.TrimSpace(header.Text()))
		})

		if len(headers) < 1 {
			return
		}

		builder.WriteString("| " + strings.Join(headers, " | ") + " |\n")

		builder.WriteString("|")
		for range headers {
			builder.WriteString(" --- |")
		}
		builder.WriteString("\n")

		dataRows := table.Find("tbody tr")
		if dataRows.Length() == 0 {
			// No tbody: take every tr but the header row.
			dataRows = table.Find("tr").Slice(1, goquery.ToEnd)
		}

		dataRows.Each(func(j int, row *goquery.Selection) {
			cells := []string{}
			row.Find("td, th").Each(func(k int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) >= 1 {
				builder.WriteString("| " + strings.Join(cells, " | ") + " |\n")
			}
		})

		builder.WriteString("\n")
	})

	if builder.Len() == 0 {
		return tableHTML
	}
	return builder.String()
}
