package classify

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsmap/pkg/domain"
)

func testCities() []domain.City {
	return []domain.City{
		{Name: "Tehran", FaName: "تهران", Lat: 35.6892, Lng: 51.3890},
		{Name: "Mashhad", FaName: "مشهد", Lat: 36.2972, Lng: 59.6067},
		{Name: "Shiraz", FaName: "شیراز", Lat: 29.5918, Lng: 52.5837},
		{Name: "Kerman", FaName: "کرمان", Lat: 30.2839, Lng: 57.0833},
		{Name: "Kermanshah", FaName: "کرمانشاه", Lat: 34.3142, Lng: 47.0650},
	}
}

func TestClassifier_Locate_PrefixPass(t *testing.T) {
	c := New(testCities(), DefaultRules(), DefaultKeywords())

	tests := []struct {
		name string
		text string
		want string
	}{
		{"colon prefix", "Shiraz: new park opened downtown", "Shiraz"},
		{"hyphen prefix", "Mashhad - railway station reopened", "Mashhad"},
		{"case insensitive prefix", "SHIRAZ: heavy rain expected", "Shiraz"},
		{"persian prefix with hyphen", "تهران - آلودگی هوا", "Tehran"},
		{"persian prefix with colon", "مشهد: خبر جدید", "Mashhad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := c.Locate(tt.text)
			require.NotNil(t, city)
			assert.Equal(t, tt.want, city.Name)
		})
	}
}

func TestClassifier_Locate_SubstringPass(t *testing.T) {
	c := New(testCities(), DefaultRules(), DefaultKeywords())

	t.Run("name anywhere in text", func(t *testing.T) {
		city := c.Locate("New factory opened near Shiraz yesterday")
		require.NotNil(t, city)
		assert.Equal(t, "Shiraz", city.Name)
	})

	t.Run("persian name anywhere in text", func(t *testing.T) {
		city := c.Locate("افتتاح کارخانه جدید در شیراز")
		require.NotNil(t, city)
		assert.Equal(t, "Shiraz", city.Name)
	})

	t.Run("first match wins by gazetteer order", func(t *testing.T) {
		// Kerman precedes Kermanshah in the table and is a substring of it,
		// so text about Kermanshah resolves to Kerman. Accepted limitation
		// of the ordered scan, pinned here so it does not change silently.
		city := c.Locate("Flooding reported around Kermanshah province")
		require.NotNil(t, city)
		assert.Equal(t, "Kerman", city.Name)
	})

	t.Run("no match yields nil", func(t *testing.T) {
		assert.Nil(t, c.Locate("Completely unrelated story about the weather"))
	})

	t.Run("no capital fallback", func(t *testing.T) {
		assert.Nil(t, c.Locate("Parliament passed the budget bill"))
	})
}

func TestClassifier_Locate_PrefixBeatsSubstring(t *testing.T) {
	c := New(testCities(), DefaultRules(), DefaultKeywords())

	// prefix match short-circuits even though Tehran appears later in text
	city := c.Locate("Shiraz: delegation from Tehran arrived")
	require.NotNil(t, city)
	assert.Equal(t, "Shiraz", city.Name)
}

func TestClassifier_Categorize(t *testing.T) {
	c := New(testCities(), DefaultRules(), DefaultKeywords())

	tests := []struct {
		name string
		text string
		want domain.Category
	}{
		{"politics", "Parliament elects new speaker", domain.CategoryPolitics},
		{"politics persian context", "New sanctions announced by IAEA", domain.CategoryPolitics},
		{"economy", "Rial falls against the dollar in currency markets", domain.CategoryEconomy},
		{"society", "Education reform sparks debate", domain.CategorySociety},
		{"international", "Foreign delegation visits Baghdad", domain.CategoryInternational},
		{"catch-all", "Football team wins the derby", domain.CategoryOther},
		{"politics wins over economy", "Government plans new oil trade deal", domain.CategoryPolitics},
		{"economy wins over international", "Trade agreement with China signed", domain.CategoryEconomy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.text))
		})
	}
}

func TestClassifier_Categorize_CustomRules(t *testing.T) {
	rules := []Rule{
		{regexp.MustCompile(`(?i)football|derby`), domain.CategorySociety},
	}
	c := New(testCities(), rules, DefaultKeywords())

	assert.Equal(t, domain.CategorySociety, c.Categorize("Football team wins the derby"))
	assert.Equal(t, domain.CategoryOther, c.Categorize("Parliament elects new speaker"))
}

func TestClassifier_Relevant(t *testing.T) {
	c := New(testCities(), DefaultRules(), DefaultKeywords())

	tests := []struct {
		name  string
		title string
		desc  string
		want  bool
	}{
		{"country keyword", "Iran announces new policy", "", true},
		{"keyword in description", "Breaking news", "talks with iranian officials continue", true},
		{"proper name", "Khamenei addresses the nation", "", true},
		{"persian keyword", "واکنش ایران به تحریم‌ها", "", true},
		{"city name", "Earthquake hits near Mashhad", "", true},
		{"case insensitive", "TEHRAN summit concludes", "", true},
		{"out of scope", "French elections conclude", "voters head to polls in Paris", false},
		{"empty text", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Relevant(tt.title, tt.desc))
		})
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	c := New(testCities(), DefaultRules(), DefaultKeywords())
	text := "Shiraz: oil production update from the ministry"

	loc1, cat1 := c.Locate(text), c.Categorize(text)
	loc2, cat2 := c.Locate(text), c.Categorize(text)

	require.NotNil(t, loc1)
	require.NotNil(t, loc2)
	assert.Equal(t, loc1.Name, loc2.Name)
	assert.Equal(t, cat1, cat2)
}
