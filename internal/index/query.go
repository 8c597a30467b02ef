package index

import (
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// buildQuery layers exact, analyzed, prefix and fuzzy matching over the
// name and display name, with the body as a low-boost catch-all. Boosts
// rank exact name matches first without excluding anything.
func buildQuery(text string) query.Query {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	q := bleve.NewBooleanQuery()

	nameExact := bleve.NewTermQuery(lower)
	nameExact.SetField(fieldName)
	nameExact.SetBoost(10.0)
	q.AddShould(nameExact)

	displayExact := bleve.NewTermQuery(lower)
	displayExact.SetField(fieldDisplayName)
	displayExact.SetBoost(9.0)
	q.AddShould(displayExact)

	nameMatch := bleve.NewMatchQuery(text)
	nameMatch.SetField(fieldName)
	nameMatch.SetBoost(7.0)
	q.AddShould(nameMatch)

	displayMatch := bleve.NewMatchQuery(text)
	displayMatch.SetField(fieldDisplayName)
	displayMatch.SetBoost(6.5)
	q.AddShould(displayMatch)

	namePrefix := bleve.NewPrefixQuery(lower)
	namePrefix.SetField(fieldName)
	namePrefix.SetBoost(6.0)
	q.AddShould(namePrefix)

	displayPrefix := bleve.NewPrefixQuery(lower)
	displayPrefix.SetField(fieldDisplayName)
	displayPrefix.SetBoost(5.5)
	q.AddShould(displayPrefix)

	nameFuzzy := bleve.NewFuzzyQuery(lower)
	nameFuzzy.SetField(fieldName)
	nameFuzzy.SetFuzziness(1)
	nameFuzzy.SetBoost(4.0)
	q.AddShould(nameFuzzy)

	bodyMatch := bleve.NewMatchQuery(text)
	bodyMatch.SetField(fieldBody)
	bodyMatch.SetBoost(2.0)
	q.AddShould(bodyMatch)

	return q
}
