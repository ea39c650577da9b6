package models

// Heading is a section title collected from a details document
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

// FilterButton is one entry of the tag filter bar
type FilterButton struct {
	Tag    string `json:"tag"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// PageInfo describes the carousel position
type PageInfo struct {
	Index     int     `json:"index"`
	Count     int     `json:"count"`
	Size      int     `json:"size"`
	Offset    float64 `json:"offset"` // percentage, translateX(-offset%)
	Start     int     `json:"start"`
	End       int     `json:"end"`
	SlotWidth float64 `json:"slot_width"`
}

// Listing is the render model for the projects section
type Listing struct {
	Filters  []FilterButton `json:"filters"`
	Tag      string         `json:"tag"`
	Search   string         `json:"search"`
	Projects []ProjectView  `json:"projects"`
	Visible  []ProjectView  `json:"visible"`
	Page     PageInfo       `json:"page"`
	Empty    bool           `json:"empty"`
}
