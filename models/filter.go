package models

// SortOrder bestimmt die Sortierung der Artikel im Briefing.
type SortOrder string

const (
	SortDateNewest SortOrder = "date-newest"
	SortDateOldest SortOrder = "date-oldest"
	SortJournal    SortOrder = "journal"
	SortTitle      SortOrder = "title"
)

// FilterState ist das Wertobjekt hinter den Filter-Controls des Briefings.
// Die eingebettete Client-Logik und services.ApplyFilter implementieren
// denselben Vertrag; FilterAll steht für die "all"-Option der Dropdowns.
type FilterState struct {
	Journal        string
	Topic          string
	Search         string
	OpenAccessOnly bool
	SortBy         SortOrder
}

// FilterAll ist der Dropdown-Wert, der keinen Filter anlegt.
const FilterAll = "all"
