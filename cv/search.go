package cv

import (
	"fmt"
	"strings"
)

// SearchSections is the number of sections Search scans. Progress callbacks
// report against this total.
const SearchSections = 8

// Match is one section that contained the query.
type Match struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

// SearchResult is the search_cv payload. Matches is never nil so it always
// encodes as a JSON array.
type SearchResult struct {
	Matches []Match `json:"matches"`
}

// ProgressFunc observes search progress. done counts finished sections.
type ProgressFunc func(done, total int)

// Search scans the CV for query, case-insensitively, section by section.
// Sections without a hit are left out. An empty query matches every
// entry.
func (c *CV) Search(query string, progress ProgressFunc) SearchResult {
	res := SearchResult{Matches: []Match{}}
	q := strings.ToLower(query)
	done := 0
	step := func() {
		done++
		if progress != nil {
			progress(done, SearchSections)
		}
	}
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	}
	add := func(section string, lines []string, sep string) {
		if len(lines) > 0 {
			res.Matches = append(res.Matches, Match{Section: section, Content: strings.Join(lines, sep)})
		}
	}

	if contains(c.Profile.Description) {
		add("profile", []string{c.Profile.Description}, "")
	}
	step()

	var edu []string
	for _, e := range c.Education {
		if contains(e.Institution) || contains(e.Degree) {
			edu = append(edu, fmt.Sprintf("%s from %s (%s)", e.Degree, e.Institution, e.Year))
		}
	}
	add("education", edu, "\n")
	step()

	var links []string
	for _, l := range c.Links {
		if contains(l.Name) || contains(l.URL) {
			links = append(links, fmt.Sprintf("%s: %s", l.Name, l.URL))
		}
	}
	add("links", links, "\n")
	step()

	var startups []string
	for _, s := range c.Startups {
		if contains(s.Name) || contains(s.Year) {
			startups = append(startups, fmt.Sprintf("%s (%s)", s.Name, s.Year))
		}
	}
	add("startups", startups, "\n")
	step()

	add("skills", filter(c.Skills, contains), ", ")
	step()

	add("interests", filter(c.Interests, contains), ", ")
	step()

	for _, e := range c.Experience {
		highlights := filter(e.Highlights, contains)
		if !contains(e.Company) && !contains(e.Title) && !contains(e.Period) && len(highlights) == 0 {
			continue
		}
		section := fmt.Sprintf("experience at %s (%s)", e.Company, e.Period)
		if len(highlights) > 0 {
			add(section, highlights, "\n")
		} else {
			add(section, []string{fmt.Sprintf("%s at %s, %s", e.Title, e.Company, e.Period)}, "")
		}
	}
	step()

	add("keywords", filter(c.Keywords, contains), ", ")
	step()

	return res
}

func filter(in []string, keep func(string) bool) []string {
	var out []string
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
