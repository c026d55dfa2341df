package domain

import "time"

// Category is one of the fixed news categories. Unmatched text resolves to
// CategoryOther, never to an error.
type Category string

// news categories
const (
	CategoryPolitics      Category = "politics"
	CategoryEconomy       Category = "economy"
	CategorySociety       Category = "society"
	CategoryInternational Category = "international"
	CategoryOther         Category = "other"
)

// Location is a resolved gazetteer match attached to a record
type Location struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Name   string  `json:"name"`
	FaName string  `json:"faName,omitempty"`
}

// NewsRecord is the unit of output: one normalized, classified and possibly
// translated news item. Built once per aggregation pass, immutable after.
// JSON shape is consumed by the map client and must stay stable.
type NewsRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	PubDate     time.Time `json:"pubDate"`
	Source      string    `json:"source"`
	Category    Category  `json:"category"`
	Location    *Location `json:"location,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}
