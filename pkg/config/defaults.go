package config

import "newsmap/pkg/domain"

// DefaultSources returns the built-in feed table. English sources come first,
// then Persian regional ones; the order also decides which record survives a
// link-dedup tie on identical publish times.
func DefaultSources() []domain.Source {
	return []domain.Source{
		{Name: "Tehran Times", URL: "https://www.tehrantimes.com/rss", Language: domain.LangEN, Reliability: domain.ReliabilityHigh, Type: domain.LocalityLocal},
		{Name: "IRNA (EN)", URL: "https://en.irna.ir/rss", Language: domain.LangEN, Reliability: domain.ReliabilityHigh, Type: domain.LocalityLocal},
		{Name: "Press TV", URL: "https://www.presstv.ir/rss", Language: domain.LangEN, Reliability: domain.ReliabilityHigh, Type: domain.LocalityLocal},
		// BBC and Al Jazeera cover world news, keep them behind the relevance filter
		{Name: "BBC Persian (EN)", URL: "https://www.bbc.com/persian/index.xml", Language: domain.LangFA, Reliability: domain.ReliabilityHigh, Type: domain.LocalityInternational},
		{Name: "Al Jazeera Iran", URL: "https://www.aljazeera.com/xml/rss/all.xml", Language: domain.LangEN, Reliability: domain.ReliabilityHigh, Type: domain.LocalityInternational},

		{Name: "IRNA (Provincial)", URL: "https://www.irna.ir/rss/tp/1000", Language: domain.LangFA, Reliability: domain.ReliabilityHigh, Type: domain.LocalityLocal},
		{Name: "ISNA (Society)", URL: "https://www.isna.ir/rss/tp/1", Language: domain.LangFA, Reliability: domain.ReliabilityHigh, Type: domain.LocalityLocal},
		{Name: "Mehr (Provincial)", URL: "https://www.mehrnews.com/rss/tp/1", Language: domain.LangFA, Reliability: domain.ReliabilityHigh, Type: domain.LocalityLocal},
		{Name: "Tasnim (Provincial)", URL: "https://www.tasnimnews.com/fa/rss/feed/0/31/DEFAULT", Language: domain.LangFA, Reliability: domain.ReliabilityHigh, Type: domain.LocalityLocal},
	}
}

// DefaultCities returns the built-in gazetteer. Detection scans this list in
// order and stops at the first match, so more prominent cities go first.
func DefaultCities() []domain.City {
	return []domain.City{
		{Name: "Tehran", FaName: "تهران", Lat: 35.6892, Lng: 51.3890},
		{Name: "Mashhad", FaName: "مشهد", Lat: 36.2972, Lng: 59.6067},
		{Name: "Isfahan", FaName: "اصفهان", Lat: 32.6546, Lng: 51.6680},
		{Name: "Karaj", FaName: "کرج", Lat: 35.8327, Lng: 50.9915},
		{Name: "Shiraz", FaName: "شیراز", Lat: 29.5918, Lng: 52.5837},
		{Name: "Tabriz", FaName: "تبریز", Lat: 38.0962, Lng: 46.2738},
		{Name: "Qom", FaName: "قم", Lat: 34.6416, Lng: 50.8746},
		{Name: "Ahvaz", FaName: "اهواز", Lat: 31.3183, Lng: 48.6706},
		{Name: "Kermanshah", FaName: "کرمانشاه", Lat: 34.3142, Lng: 47.0650},
		{Name: "Urmia", FaName: "ارومیه", Lat: 37.5527, Lng: 45.0760},
		{Name: "Rasht", FaName: "رشت", Lat: 37.2808, Lng: 49.5832},
		{Name: "Zahedan", FaName: "زاهدان", Lat: 29.4963, Lng: 60.8629},
		{Name: "Hamadan", FaName: "همدان", Lat: 34.7981, Lng: 48.5146},
		{Name: "Kerman", FaName: "کرمان", Lat: 30.2839, Lng: 57.0833},
		{Name: "Yazd", FaName: "یزد", Lat: 31.8974, Lng: 54.3569},
		{Name: "Ardabil", FaName: "اردبیل", Lat: 38.2498, Lng: 48.2933},
		{Name: "Bandar Abbas", FaName: "بندرعباس", Lat: 27.1833, Lng: 56.2667},
		{Name: "Arak", FaName: "اراک", Lat: 34.0917, Lng: 49.6892},
		{Name: "Qazvin", FaName: "قزوین", Lat: 36.2668, Lng: 50.0038},
		{Name: "Zanjan", FaName: "زنجان", Lat: 36.6736, Lng: 48.4787},
		{Name: "Sanandaj", FaName: "سنندج", Lat: 35.3113, Lng: 46.9960},
		{Name: "Gorgan", FaName: "گرگان", Lat: 36.8387, Lng: 54.4348},
		{Name: "Sari", FaName: "ساری", Lat: 36.5659, Lng: 53.0597},
		{Name: "Khorramabad", FaName: "خرم‌آباد", Lat: 33.4878, Lng: 48.3558},
		{Name: "Bushehr", FaName: "بوشهر", Lat: 28.9234, Lng: 50.8203},
		{Name: "Birjand", FaName: "بیرجند", Lat: 32.8663, Lng: 59.2211},
		{Name: "Ilam", FaName: "ایلام", Lat: 33.6374, Lng: 46.4227},
		{Name: "Bojnurd", FaName: "بجنورد", Lat: 37.4761, Lng: 57.3317},
		{Name: "Shahrekord", FaName: "شهرکرد", Lat: 32.3256, Lng: 50.8644},
		{Name: "Yasuj", FaName: "یاسوج", Lat: 30.6694, Lng: 51.5875},
		{Name: "Semnan", FaName: "سمنان", Lat: 35.5760, Lng: 53.3951},
		{Name: "Kish Island", FaName: "کیش", Lat: 26.5317, Lng: 54.0175},
		{Name: "Abadan", FaName: "آبادان", Lat: 30.3392, Lng: 48.3043},
	}
}
