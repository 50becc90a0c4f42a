package report

// briefingTemplate ist das vollständige Briefing-Dokument: Inline-CSS,
// Filter-Controls und die eingebettete Client-Logik für Filtern, Sortieren
// und das Ein-/Ausblenden der Abstracts. Das Dokument benötigt zur Laufzeit
// keinen Server; einzige externe Referenz ist der Font.
const briefingTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.ReportTitle}}</title>
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;600;700&display=swap" rel="stylesheet">
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: #f5f7fa;
            color: #1a1a1a;
            line-height: 1.6;
            min-height: 100vh;
            padding: 2rem 1rem;
        }

        .header-card {
            max-width: 1200px;
            margin: 0 auto 2rem auto;
            background: white;
            padding: 2rem 1.5rem 1.5rem 1.5rem;
            border-radius: 12px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.08);
            text-align: center;
        }

        .header-card h1 {
            font-size: 1.75rem;
            font-weight: 700;
            color: #003366;
            margin-bottom: 0.4rem;
            letter-spacing: -0.02em;
        }

        .header-card .tagline {
            font-size: 0.9rem;
            color: #6c757d;
            font-weight: 400;
            margin-bottom: 1.25rem;
        }

        .header-meta {
            display: flex;
            gap: 2rem;
            justify-content: center;
            font-size: 0.8125rem;
            color: #6c757d;
            flex-wrap: wrap;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 0 1rem;
        }

        .filters {
            background: white;
            padding: 1.25rem;
            border-radius: 8px;
            margin-bottom: 1.5rem;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
        }

        .filter-row {
            display: flex;
            gap: 0.875rem;
            align-items: flex-end;
            margin-bottom: 0.875rem;
            flex-wrap: wrap;
        }

        .filter-row:last-child {
            margin-bottom: 0;
        }

        .filter-group {
            flex: 1;
            min-width: 160px;
        }

        .filter-group.search {
            flex: 2;
            min-width: 220px;
        }

        .filter-label {
            display: block;
            font-size: 0.8125rem;
            font-weight: 600;
            color: #495057;
            margin-bottom: 0.4rem;
        }

        select, input[type="text"] {
            width: 100%;
            padding: 0.4rem 0.65rem;
            border: 1px solid #ced4da;
            border-radius: 4px;
            font-size: 0.8125rem;
            font-family: 'Inter', sans-serif;
            background: white;
        }

        select:focus, input[type="text"]:focus {
            outline: none;
            border-color: #003366;
            box-shadow: 0 0 0 3px rgba(0, 51, 102, 0.1);
        }

        .checkbox-group {
            display: flex;
            align-items: center;
            padding-top: 1.5rem;
        }

        .checkbox-group input[type="checkbox"] {
            width: auto;
            margin-right: 0.4rem;
            cursor: pointer;
        }

        .checkbox-group label {
            font-size: 0.8125rem;
            color: #495057;
            cursor: pointer;
            user-select: none;
        }

        .article-count {
            text-align: center;
            padding: 0.75rem;
            background: white;
            border-radius: 8px;
            margin-bottom: 1.25rem;
            font-size: 0.8125rem;
            color: #6c757d;
            box-shadow: 0 1px 3px rgba(0,0,0,0.05);
        }

        .section-header {
            font-size: 0.875rem;
            font-weight: 700;
            color: #003366;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            margin: 2rem 0 1rem 0;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid #e1e8ed;
        }

        .feed {
            display: flex;
            flex-direction: column;
            gap: 0.75rem;
        }

        .article {
            background: white;
            padding: 1rem;
            border-radius: 6px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            border-left: 3px solid #003366;
            transition: box-shadow 0.2s ease, transform 0.2s ease;
        }

        .article:hover {
            box-shadow: 0 3px 8px rgba(0,0,0,0.15);
            transform: translateY(-1px);
        }

        .article-header {
            display: flex;
            align-items: flex-start;
            gap: 0.6rem;
            margin-bottom: 0.6rem;
        }

        .article-title {
            flex: 1;
            font-size: 0.9375rem;
            font-weight: 600;
            line-height: 1.4;
        }

        .article-title a {
            color: #1a1a1a;
            text-decoration: none;
        }

        .article-title a:hover {
            color: #003366;
        }

        .open-access {
            flex-shrink: 0;
            width: 18px;
            height: 18px;
            background: #28a745;
            border-radius: 50%;
            display: flex;
            align-items: center;
            justify-content: center;
            color: white;
            font-size: 11px;
            font-weight: bold;
        }

        .article-meta {
            display: flex;
            gap: 0.75rem;
            margin-bottom: 0.6rem;
            font-size: 0.8125rem;
            color: #6c757d;
            flex-wrap: wrap;
            align-items: center;
        }

        .journal-badge {
            display: inline-block;
            padding: 0.2rem 0.6rem;
            border-radius: 10px;
            font-size: 0.6875rem;
            font-weight: 600;
            color: white;
        }

        .authors {
            font-style: italic;
        }

        .date {
            color: #495057;
        }

        .topics {
            display: flex;
            gap: 0.4rem;
            margin-bottom: 0.6rem;
            flex-wrap: wrap;
        }

        .topic-tag {
            display: inline-block;
            padding: 0.2rem 0.4rem;
            background: #e7f3ff;
            color: #003366;
            border-radius: 3px;
            font-size: 0.6875rem;
            font-weight: 500;
        }

        .abstract {
            color: #495057;
            font-size: 0.8125rem;
            line-height: 1.5;
            margin-bottom: 0.6rem;
        }

        .abstract.hidden {
            display: none;
        }

        .no-abstract {
            color: #adb5bd;
            font-style: italic;
            font-size: 0.8125rem;
        }

        .no-abstract.hidden {
            display: none;
        }

        .read-more {
            display: inline-block;
            color: #003366;
            text-decoration: none;
            font-size: 0.8125rem;
            font-weight: 600;
        }

        .read-more:hover {
            text-decoration: underline;
        }

        .no-results {
            text-align: center;
            padding: 2.5rem;
            background: white;
            border-radius: 8px;
            color: #6c757d;
            font-style: italic;
        }

        .footer {
            max-width: 1200px;
            margin: 3rem auto 2rem auto;
            padding: 2rem 1rem 1rem 1rem;
            border-top: 1px solid #e1e8ed;
            text-align: center;
        }

        .footer-title {
            font-size: 0.75rem;
            font-weight: 600;
            color: #6c757d;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            margin-bottom: 0.75rem;
        }

        .footer-journals {
            font-size: 0.6875rem;
            color: #8b949e;
            line-height: 1.6;
        }

        @media (max-width: 768px) {
            body {
                padding: 1rem 0.5rem;
            }

            .header-card {
                padding: 1.5rem 1rem;
            }

            .header-card h1 {
                font-size: 1.5rem;
            }

            .header-card .tagline {
                font-size: 0.875rem;
            }

            .filter-row {
                flex-direction: column;
                align-items: stretch;
            }

            .filter-group,
            .filter-group.search {
                width: 100%;
                min-width: unset;
            }

            .checkbox-group {
                padding-top: 0;
                margin-top: 0.5rem;
            }

            .article-meta {
                flex-direction: column;
                gap: 0.25rem;
                align-items: flex-start;
            }
        }
    </style>
</head>
<body>
    <div class="header-card">
        <h1>{{.ReportTitle}}</h1>
        <div class="tagline">{{.Tagline}}</div>
        <div class="header-meta">
            <span>📊 {{.TotalArticles}} articles</span>
            <span>🕐 Updated: {{.LastUpdated}}</span>
        </div>
    </div>

    <div class="container">
        <div class="filters">
            <div class="filter-row">
                <div class="filter-group">
                    <label class="filter-label" for="journal-filter">Filter by Journal</label>
                    <select id="journal-filter" onchange="filterArticles()">
                        <option value="all">All Journals</option>
{{range .JournalOptions}}                        <option value="{{.}}">{{.}}</option>
{{end}}                    </select>
                </div>
                <div class="filter-group">
                    <label class="filter-label" for="topic-filter">Filter by Topic</label>
                    <select id="topic-filter" onchange="filterArticles()">
                        <option value="all">All Topics</option>
{{range .TopicOptions}}                        <option value="{{.Value}}">{{.Display}}</option>
{{end}}                    </select>
                </div>
                <div class="filter-group">
                    <label class="filter-label" for="sort-by">Sort by</label>
                    <select id="sort-by" onchange="sortArticles()">
                        <option value="date-newest">Date (Newest First)</option>
                        <option value="date-oldest">Date (Oldest First)</option>
                        <option value="journal">Journal</option>
                        <option value="title">Title (A-Z)</option>
                    </select>
                </div>
            </div>
            <div class="filter-row">
                <div class="filter-group search">
                    <label class="filter-label" for="search">Search</label>
                    <input type="text" id="search" placeholder="Search titles..." oninput="filterArticles()">
                </div>
                <div class="checkbox-group">
                    <input type="checkbox" id="oa-only" onchange="filterArticles()">
                    <label for="oa-only">Open Access Only</label>
                </div>
                <div class="checkbox-group">
                    <input type="checkbox" id="show-abstracts" onchange="toggleAbstracts()">
                    <label for="show-abstracts">Show Abstracts</label>
                </div>
            </div>
        </div>

        <div class="article-count" id="article-count">
            Showing {{.TotalArticles}} articles
        </div>

        <div id="feed-container">
{{if .ThisWeek}}            <div class="section-header">This Week</div>
            <div class="feed" data-section="this-week">
{{range .ThisWeek}}{{template "article" .}}{{end}}            </div>
{{end}}{{if .LastWindow}}            <div class="section-header">{{.WindowLabel}}</div>
            <div class="feed" data-section="last-90-days">
{{range .LastWindow}}{{template "article" .}}{{end}}            </div>
{{end}}        </div>

        <div class="no-results" id="no-results" style="display: none;">
            No articles match your current filters.
        </div>
    </div>

    <div class="footer">
        <div class="footer-title">Sources</div>
        <div class="footer-journals">{{.FooterJournals}}</div>
    </div>

    <script>
        function filterArticles() {
            const journalFilter = document.getElementById('journal-filter').value;
            const topicFilter = document.getElementById('topic-filter').value;
            const searchQuery = document.getElementById('search').value.toLowerCase();
            const oaOnly = document.getElementById('oa-only').checked;

            const articles = document.querySelectorAll('.article');
            const sections = document.querySelectorAll('[data-section]');
            const articleCount = document.getElementById('article-count');
            const noResults = document.getElementById('no-results');
            const feedContainer = document.getElementById('feed-container');

            let visibleCount = 0;

            articles.forEach(article => {
                const journal = article.getAttribute('data-journal');
                const topics = article.getAttribute('data-topics');
                const title = article.getAttribute('data-title');
                const isOA = article.getAttribute('data-oa') === 'true';

                let showArticle = true;

                // Journal filter
                if (journalFilter !== 'all' && journal !== journalFilter) {
                    showArticle = false;
                }

                // Topic filter - check if topic is in space-separated list
                if (topicFilter !== 'all') {
                    const topicList = topics.split(' ');
                    if (!topicList.includes(topicFilter)) {
                        showArticle = false;
                    }
                }

                // Search filter
                if (searchQuery && !title.includes(searchQuery)) {
                    showArticle = false;
                }

                // Open Access filter
                if (oaOnly && !isOA) {
                    showArticle = false;
                }

                if (showArticle) {
                    article.style.display = 'block';
                    visibleCount++;
                } else {
                    article.style.display = 'none';
                }
            });

            // Hide empty sections
            sections.forEach(section => {
                const visibleInSection = Array.from(section.querySelectorAll('.article'))
                    .filter(a => a.style.display !== 'none').length;
                const sectionHeader = section.previousElementSibling;
                if (visibleInSection === 0) {
                    section.style.display = 'none';
                    if (sectionHeader && sectionHeader.classList.contains('section-header')) {
                        sectionHeader.style.display = 'none';
                    }
                } else {
                    section.style.display = 'flex';
                    if (sectionHeader && sectionHeader.classList.contains('section-header')) {
                        sectionHeader.style.display = 'block';
                    }
                }
            });

            // Update count and show/hide no results message
            const articleWord = visibleCount !== 1 ? 'articles' : 'article';
            articleCount.textContent = 'Showing ' + visibleCount + ' ' + articleWord;

            if (visibleCount === 0) {
                feedContainer.style.display = 'none';
                noResults.style.display = 'block';
            } else {
                feedContainer.style.display = 'block';
                noResults.style.display = 'none';
            }
        }

        function sortArticles() {
            const sortBy = document.getElementById('sort-by').value;
            const sections = document.querySelectorAll('[data-section]');

            sections.forEach(feed => {
                const articles = Array.from(feed.querySelectorAll('.article'));

                articles.sort((a, b) => {
                    if (sortBy === 'date-newest') {
                        return parseFloat(b.getAttribute('data-date')) - parseFloat(a.getAttribute('data-date'));
                    } else if (sortBy === 'date-oldest') {
                        return parseFloat(a.getAttribute('data-date')) - parseFloat(b.getAttribute('data-date'));
                    } else if (sortBy === 'journal') {
                        return a.getAttribute('data-journal').localeCompare(b.getAttribute('data-journal'));
                    } else if (sortBy === 'title') {
                        return a.getAttribute('data-title').localeCompare(b.getAttribute('data-title'));
                    }
                    return 0;
                });

                // Re-append articles in new order
                articles.forEach(article => feed.appendChild(article));
            });
        }

        function toggleAbstracts() {
            const showAbstracts = document.getElementById('show-abstracts').checked;
            const abstracts = document.querySelectorAll('.abstract, .no-abstract');

            abstracts.forEach(abstract => {
                if (showAbstracts) {
                    abstract.classList.remove('hidden');
                } else {
                    abstract.classList.add('hidden');
                }
            });
        }

        // Initialize with abstracts hidden
        document.addEventListener('DOMContentLoaded', function() {
            const abstracts = document.querySelectorAll('.abstract, .no-abstract');
            abstracts.forEach(abstract => abstract.classList.add('hidden'));
        });
    </script>
</body>
</html>
{{define "article"}}
            <article class="article" data-journal="{{.Journal}}" data-topics="{{.TopicsAttr}}" data-title="{{.TitleLower}}" data-oa="{{if .OpenAccess}}true{{else}}false{{end}}" data-date="{{.Timestamp}}">
                <div class="article-header">
                    <div class="article-title">
                        <a href="{{.Link}}" target="_blank">{{.Title}}</a>
                    </div>
{{if .OpenAccess}}                    <div class="open-access" title="Open Access">🔓</div>
{{end}}                </div>
                <div class="article-meta">
                    <span class="journal-badge" style="background-color: {{.Color}};">{{.Journal}}</span>
{{if .Authors}}                    <span class="authors">{{.Authors}}</span>
{{end}}                    <span class="date">{{.DateDisplay}}</span>
                </div>
{{if .Topics}}                <div class="topics">
{{range .Topics}}                    <span class="topic-tag">{{.}}</span>
{{end}}                </div>
{{end}}{{if .HasAbstract}}                <div class="abstract">{{.Abstract}}</div>
{{else}}                <div class="no-abstract">Abstract not available</div>
{{end}}                <a href="{{.Link}}" target="_blank" class="read-more">Read full article →</a>
            </article>
{{end}}`
