package models

// Topic ist ein Eintrag der Themen-Taxonomie: ein Label plus die
// Synonym-Substrings, über die das Label im Text erkannt wird.
type Topic struct {
	Label    string   `json:"label" yaml:"label"`
	Synonyms []string `json:"synonyms" yaml:"synonyms"`
}

// Taxonomy ist die geordnete Liste aller Topics. Die Deklarationsreihenfolge
// bestimmt die Reihenfolge der vergebenen Labels.
type Taxonomy []Topic

// Labels gibt alle Labels in Deklarationsreihenfolge zurück.
func (t Taxonomy) Labels() []string {
	out := make([]string, 0, len(t))
	for _, topic := range t {
		out = append(out, topic.Label)
	}
	return out
}

// Contains prüft, ob ein Label Teil der Taxonomie ist.
func (t Taxonomy) Contains(label string) bool {
	for _, topic := range t {
		if topic.Label == label {
			return true
		}
	}
	return false
}
