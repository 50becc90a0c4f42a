package models

// Journal repräsentiert eine konfigurierte Fachzeitschrift inklusive
// ISSN für die CrossRef-Abfrage und Anzeigefarbe für das Briefing.
type Journal struct {
	Name      string `json:"name" yaml:"name"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher"`
	ISSN      string `json:"issn" yaml:"issn"`
	Color     string `json:"color" yaml:"color"`
}
