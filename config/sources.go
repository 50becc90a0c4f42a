package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"journal-brief/models"
)

// Validierungsfehler für Quellen-Dateien.
var (
	ErrNoJournals        = errors.New("at least one journal is required")
	ErrJournalIncomplete = errors.New("journal name and issn are required")
	ErrNoTopics          = errors.New("at least one topic is required")
	ErrTopicIncomplete   = errors.New("topic label and synonyms are required")
	ErrDuplicateLabel    = errors.New("topic labels must be unique")
)

// Sources bündelt die Journal-Liste und die Themen-Taxonomie als
// unveränderliche, explizit durchgereichte Konfiguration.
type Sources struct {
	Journals []models.Journal `yaml:"journals"`
	Taxonomy models.Taxonomy  `yaml:"topics"`
}

// Validate prüft die Quellen-Konfiguration.
func (s *Sources) Validate() error {
	if len(s.Journals) == 0 {
		return ErrNoJournals
	}
	for _, j := range s.Journals {
		if j.Name == "" || j.ISSN == "" {
			return fmt.Errorf("%w: %q", ErrJournalIncomplete, j.Name)
		}
	}
	if len(s.Taxonomy) == 0 {
		return ErrNoTopics
	}
	seen := make(map[string]bool, len(s.Taxonomy))
	for _, t := range s.Taxonomy {
		if t.Label == "" || len(t.Synonyms) == 0 {
			return fmt.Errorf("%w: %q", ErrTopicIncomplete, t.Label)
		}
		if seen[t.Label] {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, t.Label)
		}
		seen[t.Label] = true
	}
	return nil
}

// LoadSources lädt Journals und Taxonomie. Ohne Pfad werden die
// eingebauten Defaults zurückgegeben.
func LoadSources(path string) (*Sources, error) {
	if path == "" {
		return DefaultSources(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}
	var s Sources
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse sources YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultSources gibt die eingebaute Journal-Liste und Taxonomie zurück.
func DefaultSources() *Sources {
	return &Sources{Journals: defaultJournals(), Taxonomy: defaultTaxonomy()}
}

// defaultJournals ist die feste Liste der I/O-Psychologie-Journals mit
// ISSN für die CrossRef-API und Anzeigefarbe.
func defaultJournals() []models.Journal {
	return []models.Journal{
		// Tier 1: Kern-Journals
		{Name: "Journal of Applied Psychology", Publisher: "APA", ISSN: "0021-9010", Color: "#0066CC"},
		{Name: "Personnel Psychology", Publisher: "Wiley", ISSN: "1744-6570", Color: "#006B3D"},
		{Name: "Journal of Business and Psychology", Publisher: "Springer", ISSN: "1573-353X", Color: "#FFB81C"},
		{Name: "Journal of Occupational and Organizational Psychology", Publisher: "BPS/Wiley", ISSN: "2044-8325", Color: "#8B0000"},
		{Name: "Annual Review of Organizational Psychology and Organizational Behavior", Publisher: "Annual Reviews", ISSN: "2327-0616", Color: "#4B0082"},
		{Name: "Organizational Behavior and Human Decision Processes", Publisher: "Elsevier", ISSN: "0749-5978", Color: "#2E8B57"},
		{Name: "Journal of Organizational Behavior", Publisher: "Wiley", ISSN: "1099-1379", Color: "#FF6347"},
		{Name: "Work & Stress", Publisher: "Taylor & Francis", ISSN: "1464-5335", Color: "#1E90FF"},
		{Name: "Human Resource Management", Publisher: "Wiley", ISSN: "1099-050X", Color: "#FF8C00"},
		{Name: "Journal of Vocational Behavior", Publisher: "Elsevier", ISSN: "0001-8791", Color: "#9370DB"},

		// Tier 2: Management/OB-Journals mit starkem I/O-Anteil
		{Name: "Academy of Management Journal", Publisher: "AOM", ISSN: "0001-4273", Color: "#DC143C"},
		{Name: "Academy of Management Review", Publisher: "AOM", ISSN: "0363-7425", Color: "#00CED1"},
		{Name: "Administrative Science Quarterly", Publisher: "Sage", ISSN: "0001-8392", Color: "#FF1493"},
		{Name: "Organization Science", Publisher: "INFORMS", ISSN: "1047-7039", Color: "#32CD32"},
		{Name: "Journal of Management", Publisher: "Sage", ISSN: "0149-2063", Color: "#BA55D3"},
		{Name: "Leadership Quarterly", Publisher: "Elsevier", ISSN: "1048-9843", Color: "#20B2AA"},
		{Name: "Organizational Psychology Review", Publisher: "Sage", ISSN: "2041-3866", Color: "#FF4500"},

		// Tier 3: Spezialisierte Journals
		{Name: "Journal of Occupational Health Psychology", Publisher: "APA", ISSN: "1076-8998", Color: "#6A5ACD"},
		{Name: "Journal of Managerial Psychology", Publisher: "Emerald", ISSN: "0268-3946", Color: "#008B8B"},
		{Name: "European Journal of Work and Organizational Psychology", Publisher: "Taylor & Francis", ISSN: "1359-432X", Color: "#CD5C5C"},
		{Name: "Human Performance", Publisher: "Taylor & Francis", ISSN: "0895-9285", Color: "#4682B4"},
		{Name: "International Journal of Selection and Assessment", Publisher: "Wiley", ISSN: "0965-075X", Color: "#D2691E"},
		{Name: "Group & Organization Management", Publisher: "Sage", ISSN: "1059-6011", Color: "#9932CC"},
		{Name: "Human Resource Development Quarterly", Publisher: "Wiley", ISSN: "1044-8004", Color: "#228B22"},
		{Name: "Industrial and Organizational Psychology: Perspectives on Science and Practice", Publisher: "Cambridge", ISSN: "1754-9426", Color: "#B8860B"},
		{Name: "Journal of Personnel Psychology", Publisher: "Hogrefe", ISSN: "1866-5888", Color: "#5F9EA0"},
	}
}

// defaultTaxonomy ist die feste Themen-Taxonomie. Die Reihenfolge der
// Einträge bestimmt die Reihenfolge der vergebenen Labels; Synonyme werden
// unverändert als Substrings gegen den kleingeschriebenen Text geprüft.
func defaultTaxonomy() models.Taxonomy {
	return models.Taxonomy{
		{Label: "leadership", Synonyms: []string{"leadership", "leader", "supervisor", "management", "manager"}},
		{Label: "teams", Synonyms: []string{"team", "teamwork", "collaboration", "group"}},
		{Label: "selection", Synonyms: []string{"selection", "hiring", "recruitment", "assessment", "interview"}},
		{Label: "performance", Synonyms: []string{"performance", "productivity", "effectiveness"}},
		{Label: "motivation", Synonyms: []string{"motivation", "engagement", "commitment"}},
		{Label: "well-being", Synonyms: []string{"well-being", "wellbeing", "health", "stress", "burnout"}},
		{Label: "diversity", Synonyms: []string{"diversity", "inclusion", "equity", "bias", "discrimination"}},
		{Label: "training", Synonyms: []string{"training", "development", "learning", "education"}},
		{Label: "job design", Synonyms: []string{"job design", "work design", "job crafting", "autonomy"}},
		{Label: "personality", Synonyms: []string{"personality", "individual differences", "traits"}},
		{Label: "culture", Synonyms: []string{"culture", "climate", "organizational culture"}},
		{Label: "AI/technology", Synonyms: []string{"artificial intelligence", "AI", "technology", "automation", "digital"}},
		{Label: "remote work", Synonyms: []string{"remote", "telework", "virtual", "hybrid work", "work from home"}},
		{Label: "turnover", Synonyms: []string{"turnover", "retention", "attrition", "quit"}},
		{Label: "justice", Synonyms: []string{"justice", "fairness", "equity"}},
		{Label: "creativity", Synonyms: []string{"creativity", "innovation", "creative"}},
		{Label: "OCB", Synonyms: []string{"citizenship", "OCB", "prosocial"}},
		{Label: "meta-analysis", Synonyms: []string{"meta-analysis", "meta analysis", "systematic review"}},
	}
}
