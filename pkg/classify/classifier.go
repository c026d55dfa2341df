package classify

import (
	"regexp"
	"strings"

	"newsmap/pkg/domain"
)

// Rule maps a keyword pattern to a category. Rules are evaluated in order
// and the first match wins, so broad categories must come last.
type Rule struct {
	Pattern  *regexp.Regexp
	Category domain.Category
}

// DefaultRules returns the built-in category rules. Politics is checked
// before economy and so on; a story about oil sanctions is politics, not
// economy, because of that order.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`(?i)politic|government|election|parliament|president|minister|nuclear|sanction|iaea`), domain.CategoryPolitics},
		{regexp.MustCompile(`(?i)econom|trade|business|market|oil|energy|gas|currency|rial|dollar`), domain.CategoryEconomy},
		{regexp.MustCompile(`(?i)protest|society|social|culture|education|health|women|hijab|human rights`), domain.CategorySociety},
		{regexp.MustCompile(`(?i)international|foreign|diplomat|un|israel|usa|russia|china|iraq`), domain.CategoryInternational},
	}
}

// DefaultKeywords returns the built-in relevance keywords in both working
// languages, matched case-insensitively as substrings.
func DefaultKeywords() []string {
	return []string{
		"iran", "iranian", "tehran", "persia", "persian",
		"irgc", "revolutionary guard", "ayatollah", "ebrahim raisi", "khamenei",
		"ایران", "ایرانی", "تهران",
	}
}

// leading token followed by a colon or hyphen, latin or arabic script,
// the dateline style Iranian feeds use ("Shiraz:", "تهران -")
var prefixRe = regexp.MustCompile(`^([a-zA-Z\s]+|[\x{0600}-\x{06FF}\s]+)\s*[:-]`)

// Classifier detects locations and categories in news text and decides
// topical relevance. All methods are pure: same text in, same answer out.
type Classifier struct {
	cities   []domain.City
	rules    []Rule
	keywords []string
}

// New creates a classifier over the given gazetteer, category rules and
// relevance keywords. The gazetteer slice order is significant: location
// detection scans it front to back and returns the first match.
func New(cities []domain.City, rules []Rule, keywords []string) *Classifier {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return &Classifier{cities: cities, rules: rules, keywords: lowered}
}

// Relevant reports whether an item is in scope. It is consulted for
// international sources only; local sources are relevant by construction.
func (c *Classifier) Relevant(title, description string) bool {
	text := strings.ToLower(title + " " + description)

	for i := range c.cities {
		if strings.Contains(text, strings.ToLower(c.cities[i].Name)) {
			return true
		}
	}

	for _, kw := range c.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}

	return false
}

// Locate finds the first gazetteer city mentioned in the text, or nil.
// A dateline prefix ("Mashhad - ...") is tried first with an exact name
// match; otherwise cities are scanned in gazetteer order and the first
// whose name appears anywhere in the text wins. No match means no
// location, there is no capital fallback.
func (c *Classifier) Locate(text string) *domain.City {
	if m := prefixRe.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		for i := range c.cities {
			city := &c.cities[i]
			if strings.EqualFold(candidate, city.Name) || (city.FaName != "" && candidate == city.FaName) {
				return city
			}
		}
	}

	lower := strings.ToLower(text)
	for i := range c.cities {
		city := &c.cities[i]
		if strings.Contains(lower, strings.ToLower(city.Name)) {
			return city
		}
		if city.FaName != "" && strings.Contains(text, city.FaName) {
			return city
		}
	}

	return nil
}

// Categorize assigns the first matching category from the rule table,
// falling back to the catch-all
func (c *Classifier) Categorize(text string) domain.Category {
	for _, rule := range c.rules {
		if rule.Pattern.MatchString(text) {
			return rule.Category
		}
	}
	return domain.CategoryOther
}
