package models

// Project represents a portfolio project as stored in the data file
type Project struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tech        []string `json:"tech" yaml:"tech"`
	RepoURL     string   `json:"repoUrl,omitempty" yaml:"repoUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty" yaml:"liveUrl,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// HasTag reports whether the project carries the tag (exact match)
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tech {
		if t == tag {
			return true
		}
	}
	return false
}

// ProjectView is a project with its derived slug, as sent to the client
type ProjectView struct {
	Slug string `json:"slug"`
	Project
}

// Link is a reference to another project page
type Link struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// Navigation holds the previous/next links around a project
type Navigation struct {
	Prev *Link `json:"prev,omitempty"`
	Next *Link `json:"next,omitempty"`
}
