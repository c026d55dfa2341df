package domain

import "time"

// Lang is a two-letter language code used for sources and target locales
type Lang string

// supported languages
const (
	LangEN Lang = "en"
	LangFA Lang = "fa"
	LangJA Lang = "ja"
)

// Reliability is the trust tier of a source
type Reliability string

// trust tiers
const (
	ReliabilityHigh   Reliability = "high"
	ReliabilityMedium Reliability = "medium"
	ReliabilityLow    Reliability = "low"
)

// Locality tells whether a source is domestic or foreign relative to the
// covered country. International sources pass through the relevance filter,
// local ones are assumed relevant by construction.
type Locality string

// source localities
const (
	LocalityLocal         Locality = "local"
	LocalityInternational Locality = "international"
)

// Source represents a configured news feed endpoint
type Source struct {
	Name        string      `yaml:"name" json:"name"`
	URL         string      `yaml:"url" json:"url"`
	Language    Lang        `yaml:"language" json:"language"`
	Reliability Reliability `yaml:"reliability" json:"reliability"`
	Type        Locality    `yaml:"type" json:"type"`
}

// City is a gazetteer entry. The gazetteer is an ordered list and location
// detection is first-match-wins, so the position of an entry matters.
type City struct {
	Name   string  `yaml:"name" json:"name"`
	FaName string  `yaml:"fa_name" json:"fa_name"`
	Lat    float64 `yaml:"lat" json:"lat"`
	Lng    float64 `yaml:"lng" json:"lng"`
}

// ParsedItem is a raw feed entry produced by the fetcher, consumed by the
// aggregator within the same pass and never persisted
type ParsedItem struct {
	Title       string
	Link        string
	Description string
	GUID        string
	ImageURL    string
	Published   time.Time
}
