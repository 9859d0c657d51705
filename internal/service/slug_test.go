package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safariswap/backend/internal/service"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Luxury Lodge", "luxury-lodge"},
		{"Hot Air Balloon!", "hot-air-balloon"},
		{"  4x4 Safari Van  ", "4x4-safari-van"},
		{"Café & Bar", "caf-bar"},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, service.Slugify(tc.in), "input %q", tc.in)
	}
}
