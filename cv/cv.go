// Package cv holds the static CV dataset and the pure query functions the
// tools are built on. Nothing here performs I/O; every function is safe for
// concurrent use because the dataset is never mutated after init.
package cv

// Profile is the headline section of the CV.
type Profile struct {
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Certifications []string `json:"certifications"`
	Email          string   `json:"email"`
	URL            string   `json:"url"`
	Description    string   `json:"description"`
}

// Asset points at a downloadable file shipped next to the server.
type Asset struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Startup struct {
	Name string `json:"name"`
	Year string `json:"year"`
}

// Experience is a single position. Highlights keep their original order.
type Experience struct {
	Company    string   `json:"company"`
	Period     string   `json:"period"`
	Title      string   `json:"title"`
	Highlights []string `json:"highlights"`
}

// CV is the complete dataset.
type CV struct {
	Profile    Profile      `json:"profile"`
	Skills     []string     `json:"skills"`
	Interests  []string     `json:"interests"`
	Resume     Asset        `json:"resume"`
	Picture    Asset        `json:"picture"`
	Education  []Education  `json:"education"`
	Links      []Link       `json:"links"`
	Startups   []Startup    `json:"startups"`
	Experience []Experience `json:"experience"`
	Keywords   []string     `json:"keywords"`
}

// Default returns the built-in CV. Callers must treat it as read-only.
func Default() *CV { return &frank }
