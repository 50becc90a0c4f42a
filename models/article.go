package models

import "time"

// Article repräsentiert einen normalisierten Zeitschriftenartikel.
// Instanzen werden einmal beim Normalisieren erzeugt und danach nicht
// mehr verändert.
type Article struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Authors  string `json:"authors,omitempty"`
	Abstract string `json:"abstract,omitempty"`

	// Date ist das Publikationsdatum (UTC), nil wenn unbekannt. Timestamp
	// bildet den Nil-Fall auf 0 ab, genau wie das data-date-Attribut.
	Date        *time.Time `json:"date,omitempty"`
	DateDisplay string     `json:"date_str,omitempty"`

	Journal      string `json:"journal"`
	JournalColor string `json:"journal_color"`

	OpenAccess bool     `json:"is_open_access"`
	Topics     []string `json:"topics,omitempty"`
}

// Timestamp gibt das Datum als Unix-Sekunden zurück, 0 wenn kein Datum gesetzt ist.
func (a *Article) Timestamp() int64 {
	if a.Date == nil {
		return 0
	}
	return a.Date.Unix()
}
