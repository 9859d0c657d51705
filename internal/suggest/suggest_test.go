package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safariswap/backend/internal/suggest"
)

func TestForDestination_KnownName(t *testing.T) {
	got := suggest.ForDestination("Serengeti National Park", "Tanzania")

	assert.Contains(t, got.Description, "Serengeti")
	assert.Contains(t, got.Activities, "Great Migration Viewing")
	assert.NotEmpty(t, got.ImageURL)
}

func TestForDestination_MatchesUnderscoredKey(t *testing.T) {
	// "Masai Mara" only matches its key after spaces become underscores.
	got := suggest.ForDestination("Masai Mara", "Kenya")

	assert.Contains(t, got.Description, "Masai Mara")
	assert.Contains(t, got.Activities, "Bush Breakfast")
}

func TestForDestination_CaseInsensitive(t *testing.T) {
	got := suggest.ForDestination("KRUGER", "South Africa")

	assert.Contains(t, got.Activities, "Self-Drive Safari")
}

func TestForDestination_CountryFallback(t *testing.T) {
	got := suggest.ForDestination("Lake Manyara", "Tanzania")

	assert.Contains(t, got.Description, "Lake Manyara")
	assert.Contains(t, got.Description, "Tanzania")
	assert.Contains(t, got.Activities, "Game Drives")
}

func TestForDestination_GenericDefault(t *testing.T) {
	got := suggest.ForDestination("Etosha", "Namibia")

	assert.Contains(t, got.Description, "Etosha")
	assert.Contains(t, got.Description, "Namibia")
	require.NotEmpty(t, got.Activities)
	assert.Contains(t, got.Activities, "Wildlife Viewing")
}

func TestForDestination_ResultIsACopy(t *testing.T) {
	first := suggest.ForDestination("Zanzibar", "Tanzania")
	first.Activities[0] = "mutated"

	second := suggest.ForDestination("Zanzibar", "Tanzania")
	assert.Equal(t, "Beach Relaxation", second.Activities[0])
}

func TestForDestination_ImageURLEncodesKeywords(t *testing.T) {
	got := suggest.ForDestination("Victoria Falls", "Zimbabwe")

	assert.Contains(t, got.ImageURL, "https://source.unsplash.com/1600x900/?")
	assert.NotContains(t, got.ImageURL, " ")
}
