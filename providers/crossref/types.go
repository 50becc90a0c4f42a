package crossref

import "time"

// WorksResponse ist die Top-Level-Struktur der CrossRef-Works-Antwort.
type WorksResponse struct {
	Status  string `json:"status"`
	Message struct {
		Items []Work `json:"items"`
	} `json:"message"`
}

// Work repräsentiert einen einzelnen Rohdatensatz in der API-Antwort.
type Work struct {
	DOI             string       `json:"DOI"`
	Title           []string     `json:"title"`
	Author          []Author     `json:"author"`
	PublishedOnline *PartedDate  `json:"published-online"`
	Published       *PartedDate  `json:"published"`
	PublishedPrint  *PartedDate  `json:"published-print"`
	Abstract        string       `json:"abstract"`
	License         []License    `json:"license"`
	Link            []ContentURL `json:"link"`
	URL             string       `json:"URL"`
}

// Author ist ein Autoreneintrag mit Vor- und Nachname.
type Author struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

// PartedDate ist das CrossRef-Datumsformat: verschachtelte date-parts
// als [[Jahr, Monat, Tag]], wobei Monat und Tag fehlen können.
type PartedDate struct {
	DateParts [][]int `json:"date-parts"`
}

// License ist ein Lizenzeintrag eines Works.
type License struct {
	URL            string `json:"URL"`
	ContentVersion string `json:"content-version"`
}

// ContentURL ist ein Volltext-Link-Eintrag eines Works.
type ContentURL struct {
	URL                 string `json:"URL"`
	ContentType         string `json:"content-type"`
	IntendedApplication string `json:"intended-application"`
}

// Date konvertiert die erste date-parts-Gruppe in ein Kalenderdatum (UTC).
// Fehlende Monats- und Tagesangaben werden auf 1 gesetzt.
func (d *PartedDate) Date() *time.Time {
	if d == nil || len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return nil
	}
	parts := d.DateParts[0]
	year := parts[0]
	month, day := 1, 1
	if len(parts) > 1 {
		month = parts[1]
	}
	if len(parts) > 2 {
		day = parts[2]
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}
