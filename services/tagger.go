package services

import (
	"strings"

	"journal-brief/models"
)

// maxTopics begrenzt die Anzahl der Labels pro Artikel.
const maxTopics = 5

// Tagger ordnet Freitext die Labels der Themen-Taxonomie zu.
type Tagger struct {
	taxonomy models.Taxonomy
}

// NewTagger erstellt einen Tagger für die gegebene Taxonomie.
func NewTagger(taxonomy models.Taxonomy) *Tagger {
	return &Tagger{taxonomy: taxonomy}
}

// Topics extrahiert bis zu fünf Labels aus Titel und Abstract. Der Text wird
// kleingeschrieben; ein Label wird vergeben, sobald eines seiner Synonyme als
// Substring vorkommt. Die Reihenfolge der Labels entspricht der Taxonomie,
// jedes Label erscheint höchstens einmal. Gleiche Eingabe liefert immer
// dieselbe Ausgabe.
func (t *Tagger) Topics(title, abstract string) []string {
	text := strings.ToLower(title + " " + abstract)

	var found []string
	for _, topic := range t.taxonomy {
		if len(found) == maxTopics {
			break
		}
		for _, synonym := range topic.Synonyms {
			if strings.Contains(text, synonym) {
				found = append(found, topic.Label)
				break
			}
		}
	}
	return found
}
