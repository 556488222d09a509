package cv

import (
	"fmt"
	"strings"
)

// CompanyResult is the get_company_experience payload.
type CompanyResult struct {
	Found       bool         `json:"found"`
	Experiences []Experience `json:"experiences,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// CompanyExperience returns every position whose company name contains
// company, ignoring case. A miss is a result, not an error.
func (c *CV) CompanyExperience(company string) CompanyResult {
	q := strings.ToLower(company)
	var out []Experience
	for _, e := range c.Experience {
		if strings.Contains(strings.ToLower(e.Company), q) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return CompanyResult{Found: false, Message: fmt.Sprintf("No experience found for company: %s", company)}
	}
	return CompanyResult{Found: true, Experiences: out}
}

// Categories lists the tech stack categories in presentation order.
var Categories = []string{"languages", "cloud", "frameworks", "ai", "databases"}

var categoryTerms = map[string][]string{
	"languages":  {"Go", "Python", "Java", "Swift", "Typescript", "JavaScript", "C#", "Ruby", "HTML5", "CSS3", "SQL", "XML", "YAML", "JSON", "Objective-C"},
	"cloud":      {"AWS", "Azure", "GCP", "Google Cloud", "Cloud Foundry", "Serverless", "IAAS", "PAAS", "SAAS"},
	"frameworks": {"Angular", "React", "Next", "Spring", "LangChain", "Express", "Svelt", "VueJs", "RxJS", "Redux", "Firebase", "Material Design", "Tailwind", "Bootstrap"},
	"ai":         {"LLMs", "OpenAI", "Generative AI", "AI Agents", "AI automation", "Machine Learning", "CrewAI", "Agentic", "AI Crawlers", "Google Gemini", "Hugging Face", "Embedding Models"},
	"databases":  {"SQL Server", "MySQL", "MongoDB", "CosmosDB", "CouchDB", "CouchBase", "ElasticSearch", "PostgreSQL", "Solr", "Oracle", "DynamoDB", "Firebase", "Vector DBs", "Pinecone", "Chroma", "Weaviate", "Redshift"},
}

// CategoryStack is the get_tech_stack payload for a known category.
type CategoryStack struct {
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
}

// FullStack is the get_tech_stack payload when no known category is asked
// for: every category's keywords plus the flat keyword list.
type FullStack struct {
	Categories map[string][]string `json:"categories"`
	All        []string            `json:"all"`
}

// CategoryStack returns the keywords of category, matched ignoring case. A
// keyword belongs to a category when it contains one of the category's
// terms. ok is false for an unknown category.
func (c *CV) CategoryStack(category string) (CategoryStack, bool) {
	cat := strings.ToLower(category)
	terms, ok := categoryTerms[cat]
	if !ok {
		return CategoryStack{}, false
	}
	return CategoryStack{Category: cat, Technologies: c.keywordsMatching(terms)}, true
}

// FullStack groups every keyword by category.
func (c *CV) FullStack() FullStack {
	grouped := make(map[string][]string, len(Categories))
	for _, name := range Categories {
		grouped[name] = c.keywordsMatching(categoryTerms[name])
	}
	all := make([]string, len(c.Keywords))
	copy(all, c.Keywords)
	return FullStack{Categories: grouped, All: all}
}

func (c *CV) keywordsMatching(terms []string) []string {
	out := []string{}
	for _, kw := range c.Keywords {
		lk := strings.ToLower(kw)
		for _, t := range terms {
			if strings.Contains(lk, strings.ToLower(t)) {
				out = append(out, kw)
				break
			}
		}
	}
	return out
}
