package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"journal-brief/config"
	"journal-brief/models"
	"journal-brief/services"
)

// maxAbstractLen ist die Anzeige-Obergrenze für Abstracts in Zeichen.
const maxAbstractLen = 500

var titleCaser = cases.Title(language.English)

// Renderer erzeugt aus den Journal-Ergebnissen das statische HTML-Briefing.
type Renderer struct {
	Config *config.Config
	Logger *zap.Logger
	tmpl   *template.Template
}

// NewRenderer erstellt einen Renderer mit dem eingebetteten Template.
func NewRenderer(cfg *config.Config, logger *zap.Logger) *Renderer {
	return &Renderer{
		Config: cfg,
		Logger: logger,
		tmpl:   template.Must(template.New("briefing").Parse(briefingTemplate)),
	}
}

// topicOption ist ein Eintrag des Topic-Dropdowns.
type topicOption struct {
	Value   string
	Display string
}

// articleView ist die Template-Sicht auf einen Artikel inklusive der
// maschinenlesbaren data-Attribute für die Client-Logik.
type articleView struct {
	Title       string
	TitleLower  string
	Link        string
	Authors     string
	Abstract    string
	HasAbstract bool
	DateDisplay string
	Timestamp   int64
	Journal     string
	Color       string
	OpenAccess  bool
	TopicsAttr  string
	Topics      []string
}

// pageData ist das vollständige Template-Modell des Briefings.
type pageData struct {
	ReportTitle    string
	Tagline        string
	TotalArticles  int
	LastUpdated    string
	JournalOptions []string
	TopicOptions   []topicOption
	ThisWeek       []articleView
	LastWindow     []articleView
	WindowLabel    string
	FooterJournals string
}

// Render baut das Briefing: Artikel aller Journals werden vereinigt, nach
// Datum absteigend sortiert (Artikel ohne Datum zuletzt), am 7-Tage-Fenster
// partitioniert und in ein einzelnes, selbst genügsames HTML-Dokument
// serialisiert. Der Footer listet alle konfigurierten Journals alphabetisch,
// unabhängig davon, ob ihr Abruf Artikel geliefert hat.
func (r *Renderer) Render(results []services.JournalResult, journals []models.Journal, now time.Time) ([]byte, error) {
	var all []*models.Article
	for _, res := range results {
		all = append(all, res.Articles...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp() > all[j].Timestamp()
	})

	weekAgo := now.Add(-r.Config.FreshWindow())
	var thisWeek, lastWindow []articleView
	for _, a := range all {
		view := newArticleView(a)
		if a.Date != nil && !a.Date.Before(weekAgo) {
			thisWeek = append(thisWeek, view)
		} else {
			lastWindow = append(lastWindow, view)
		}
	}

	data := pageData{
		ReportTitle:    r.Config.ReportTitle,
		Tagline:        fmt.Sprintf("Your %d-day snapshot of what's new in the field", r.Config.WindowDays),
		TotalArticles:  len(all),
		LastUpdated:    now.Format("January 02, 2006"),
		JournalOptions: journalOptions(all),
		TopicOptions:   topicOptions(all),
		ThisWeek:       thisWeek,
		LastWindow:     lastWindow,
		WindowLabel:    fmt.Sprintf("Last %d Days", r.Config.WindowDays),
		FooterJournals: footerJournals(journals),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("briefing template failed: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile schreibt ein gerendertes Briefing an den Zielpfad.
func (r *Renderer) WriteFile(path string, html []byte) error {
	if err := os.WriteFile(path, html, 0644); err != nil {
		return fmt.Errorf("failed to write briefing: %w", err)
	}
	r.Logger.Info("Briefing geschrieben", zap.String("path", path), zap.Int("bytes", len(html)))
	return nil
}

// newArticleView bereitet einen Artikel für das Template auf: Abstract auf
// 500 Zeichen gekürzt, Titel kleingeschrieben für die Suche, Topics als
// Space-separierte Liste für den Membership-Test der Client-Logik.
func newArticleView(a *models.Article) articleView {
	abstract := a.Abstract
	if runes := []rune(abstract); len(runes) > maxAbstractLen {
		abstract = string(runes[:maxAbstractLen]) + "..."
	}

	display := make([]string, 0, len(a.Topics))
	for _, t := range a.Topics {
		display = append(display, titleCaser.String(t))
	}

	return articleView{
		Title:       a.Title,
		TitleLower:  strings.ToLower(a.Title),
		Link:        a.Link,
		Authors:     a.Authors,
		Abstract:    abstract,
		HasAbstract: abstract != "",
		DateDisplay: a.DateDisplay,
		Timestamp:   a.Timestamp(),
		Journal:     a.Journal,
		Color:       a.JournalColor,
		OpenAccess:  a.OpenAccess,
		TopicsAttr:  strings.Join(a.Topics, " "),
		Topics:      display,
	}
}

// journalOptions sammelt die im Briefing vertretenen Journals, alphabetisch.
func journalOptions(articles []*models.Article) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range articles {
		if !seen[a.Journal] {
			seen[a.Journal] = true
			out = append(out, a.Journal)
		}
	}
	sort.Strings(out)
	return out
}

// topicOptions sammelt die im Briefing vergebenen Topics, alphabetisch.
func topicOptions(articles []*models.Article) []topicOption {
	seen := make(map[string]bool)
	var labels []string
	for _, a := range articles {
		for _, t := range a.Topics {
			if !seen[t] {
				seen[t] = true
				labels = append(labels, t)
			}
		}
	}
	sort.Strings(labels)

	out := make([]topicOption, 0, len(labels))
	for _, l := range labels {
		out = append(out, topicOption{Value: l, Display: titleCaser.String(l)})
	}
	return out
}

// footerJournals baut die statische Quellenliste des Footers.
func footerJournals(journals []models.Journal) string {
	names := make([]string, 0, len(journals))
	for _, j := range journals {
		names = append(names, j.Name)
	}
	sort.Strings(names)
	return strings.Join(names, " | ")
}
