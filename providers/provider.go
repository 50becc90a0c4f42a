package providers

// AbstractProvider ist das Interface für Dienste, die Abstracts anhand einer
// DOI nachliefern (z.B. Semantic Scholar).
type AbstractProvider interface {
	// AbstractByDOI holt das Abstract zu einer DOI. Ein leerer String ohne
	// Fehler bedeutet: Dienst erreichbar, aber kein Abstract vorhanden.
	AbstractByDOI(doi string) (string, error)

	// Name gibt den eindeutigen Namen des Providers zurück (z.B. "semanticscholar").
	Name() string
}
