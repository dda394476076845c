package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxSpecValueLength = 180
const minSpecTableRows = 3

// extractTableSpecs reads key/value pairs from tables with at least three
// rows: first cell is the key, second cell is the value.
func extractTableSpecs(doc *goquery.Document) map[string]string {
	specs := map[string]string{}

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr")
		if rows.Length() < minSpecTableRows {
			return
		}

		rows.Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th")
			if cells.Length() < 2 {
				return
			}
			key := cleanSpecKey(cells.Eq(0).Text())
			value := strings.TrimSpace(cells.Eq(1).Text())
			if key == "" || value == "" || len(value) > maxSpecValueLength {
				return
			}
			if _, exists := specs[key]; !exists {
				specs[key] = value
			}
		})
	})

	return specs
}

// extractDefinitionListSpecs reads key/value pairs out of <dl> elements:
// each <dt> pairs with the next <dd>.
func extractDefinitionListSpecs(doc *goquery.Document) map[string]string {
	specs := map[string]string{}

	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		var pendingKey string
		dl.Find("dt, dd").Each(func(_ int, el *goquery.Selection) {
			if goquery.NodeName(el) == "dt" {
				pendingKey = cleanSpecKey(el.Text())
				return
			}
			if pendingKey == "" {
				return
			}
			value := strings.TrimSpace(el.Text())
			if value != "" && len(value) <= maxSpecValueLength {
				if _, exists := specs[pendingKey]; !exists {
					specs[pendingKey] = value
				}
			}
			pendingKey = ""
		})
	})

	return specs
}

func cleanSpecKey(raw string) string {
	key := strings.TrimSpace(raw)
	key = strings.TrimSuffix(key, ":")
	return strings.TrimSpace(key)
}
