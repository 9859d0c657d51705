// Package suggest generates editorial suggestions for admin destination
// forms: a description, an activity list, and a stock image URL. The
// "generation" is a curated knowledge base of well-known African safari
// destinations with country-level fallbacks, so answers are deterministic
// and need no external service.
package suggest

import (
	"fmt"
	"net/url"
	"strings"
)

// Suggestion is the generated content for one destination form.
type Suggestion struct {
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	ImageURL    string   `json:"image_url"`
}

// entry is one knowledge-base row, keyed by a lowercase name fragment.
type entry struct {
	key         string
	description string
	activities  []string
}

// knownDestinations is matched in order against the lowercased destination
// name, so more specific keys must precede more general ones.
var knownDestinations = []entry{
	{
		key:         "serengeti",
		description: "Experience the world's most spectacular wildlife migration in the vast plains of the Serengeti. Home to the Big Five and countless other species, this UNESCO World Heritage Site offers unparalleled game viewing opportunities year-round. Witness millions of wildebeest, zebras, and gazelles on their annual journey across the endless savanna.",
		activities:  []string{"Game Drives", "Hot Air Balloon Safari", "Walking Safari", "Bird Watching", "Great Migration Viewing", "Photography Tours", "Cultural Village Visits"},
	},
	{
		key:         "masai_mara",
		description: "Discover Kenya's crown jewel, the Masai Mara, renowned for its exceptional population of lions, leopards, cheetahs, and the annual wildebeest migration. This spectacular reserve offers year-round wildlife viewing in one of Africa's most diverse ecosystems.",
		activities:  []string{"Game Drives", "Hot Air Balloon Safari", "Masai Cultural Experiences", "Walking Safari", "Bird Watching", "River Crossings Viewing", "Bush Breakfast"},
	},
	{
		key:         "kruger",
		description: "Explore South Africa's flagship national park, spanning nearly 20,000 square kilometers of diverse ecosystems. Kruger is home to an impressive variety of wildlife including the Big Five, plus over 500 bird species and incredible landscapes.",
		activities:  []string{"Self-Drive Safari", "Guided Game Drives", "Bush Walks", "Bird Watching", "Night Safari", "Photography Safari", "Bush Camping"},
	},
	{
		key:         "kilimanjaro",
		description: "Challenge yourself to summit Africa's highest peak, Mount Kilimanjaro. Standing at 5,895 meters, this dormant volcano offers breathtaking views and a once-in-a-lifetime trekking experience through five distinct climate zones.",
		activities:  []string{"Mountain Trekking", "Summit Climbing", "Wildlife Viewing", "Photography", "Cultural Tours", "Waterfall Hikes", "Coffee Plantation Tours"},
	},
	{
		key:         "zanzibar",
		description: "Unwind on the pristine beaches of Zanzibar, where crystal-clear turquoise waters meet powder-white sand. This tropical paradise combines rich history, vibrant culture, and world-class diving in the Indian Ocean.",
		activities:  []string{"Beach Relaxation", "Snorkeling", "Scuba Diving", "Spice Farm Tours", "Stone Town Walking Tours", "Dolphin Watching", "Sunset Dhow Cruises"},
	},
	{
		key:         "okavango",
		description: "Experience the unique ecosystem of the Okavango Delta, a UNESCO World Heritage Site and one of the world's largest inland deltas. This pristine wilderness offers exceptional wildlife viewing in a breathtaking water wilderness.",
		activities:  []string{"Mokoro Canoe Safaris", "Game Drives", "Walking Safari", "Bird Watching", "Fishing", "Photography", "Island Camping"},
	},
	{
		key:         "victoria_falls",
		description: "Witness the power and majesty of Victoria Falls, one of the Seven Natural Wonders of the World. Known locally as 'The Smoke That Thunders,' this spectacular waterfall offers adventure activities and unforgettable views.",
		activities:  []string{"Waterfall Viewing", "White Water Rafting", "Bungee Jumping", "Helicopter Flights", "Sunset Cruises", "Devil's Pool Swimming", "Wildlife Safaris"},
	},
}

// ForDestination builds a Suggestion for a destination name and country.
// Known destinations match by name fragment; otherwise the country picks a
// regional template, and anything else gets the generic African default.
func ForDestination(name, country string) Suggestion {
	lowerName := strings.ToLower(name)
	underscored := strings.ReplaceAll(lowerName, " ", "_")

	for _, e := range knownDestinations {
		if strings.Contains(lowerName, e.key) || strings.Contains(underscored, e.key) {
			return Suggestion{
				Description: e.description,
				Activities:  append([]string(nil), e.activities...),
				ImageURL:    imageURL(name, country),
			}
		}
	}

	s := countryFallback(name, strings.ToLower(country), country)
	s.ImageURL = imageURL(name, country)
	return s
}

func countryFallback(name, lowerCountry, country string) Suggestion {
	switch {
	case strings.Contains(lowerCountry, "tanzania"):
		return Suggestion{
			Description: fmt.Sprintf("Discover the natural wonders of %s, Tanzania. Experience authentic African wildlife, stunning landscapes, and rich cultural heritage in one of East Africa's most diverse destinations.", name),
			Activities:  []string{"Game Drives", "Cultural Tours", "Bird Watching", "Photography Safari", "Walking Tours", "Scenic Viewing"},
		}
	case strings.Contains(lowerCountry, "kenya"):
		return Suggestion{
			Description: fmt.Sprintf("Explore %s, a gem in Kenya's diverse landscape. From abundant wildlife to vibrant local culture, this destination offers an authentic East African experience.", name),
			Activities:  []string{"Game Drives", "Cultural Village Visits", "Bird Watching", "Nature Walks", "Photography", "Local Market Tours"},
		}
	case strings.Contains(lowerCountry, "south africa"):
		return Suggestion{
			Description: fmt.Sprintf("Experience the beauty of %s, South Africa. Combining world-class wildlife viewing with stunning scenery and rich biodiversity, this destination showcases the best of Southern Africa.", name),
			Activities:  []string{"Game Drives", "Wine Tasting", "Scenic Drives", "Hiking", "Bird Watching", "Cultural Experiences"},
		}
	default:
		return Suggestion{
			Description: fmt.Sprintf("Embark on an unforgettable journey to %s, %s. This unique African destination offers authentic wildlife experiences, breathtaking landscapes, and rich cultural encounters that will create memories to last a lifetime.", name, country),
			Activities:  []string{"Wildlife Viewing", "Cultural Tours", "Nature Walks", "Photography", "Bird Watching", "Local Experiences"},
		}
	}
}

// imageURL builds a keyword-search stock photo URL for the destination.
func imageURL(name, country string) string {
	keywords := strings.Join([]string{name, country, "africa", "safari"}, ",")
	return "https://source.unsplash.com/1600x900/?" + url.QueryEscape(keywords)
}
