package models

// ✅ Item types a couple can swipe on
const (
	ItemTypeMovies      = "movies"
	ItemTypeShows       = "shows"
	ItemTypePlaces      = "places"
	ItemTypeRestaurants = "restaurants"
	ItemTypeRecipes     = "recipes"
)

// FallbackTitles maps each known item type to the label used when a swipe
// arrives without a title
var FallbackTitles = map[string]string{
	ItemTypeMovies:      "Unknown Movie",
	ItemTypeShows:       "Unknown Show",
	ItemTypePlaces:      "Unknown Place",
	ItemTypeRestaurants: "Unknown Restaurant",
	ItemTypeRecipes:     "Unknown Recipe",
}
