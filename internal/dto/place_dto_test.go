package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestPlaceResultToRestaurantInput(t *testing.T) {
	place := PlaceResult{
		PlaceName:        "Vovo Telo Bakery & Café",
		FormattedAddress: "Waterfall Dr, Midrand, 1685, South Africa",
		PlaceID:          "ChIJ5ceK_tFzlR4RBOSyaD4YaHo",
		Latitude:         f(-26.0195134),
		Longitude:        f(28.0892369),
		Website:          "https://vovotelo.co.za",
		Rating:           f(3.9),
	}

	in := place.ToRestaurantInput()
	assert.Equal(t, "Vovo Telo Bakery & Café", in.Name)
	require.NotNil(t, in.Address)
	assert.Equal(t, "Waterfall Dr, Midrand, 1685, South Africa", *in.Address)
	require.NotNil(t, in.GooglePlaceID)
	assert.Equal(t, "ChIJ5ceK_tFzlR4RBOSyaD4YaHo", *in.GooglePlaceID)
	assert.InDelta(t, -26.0195134, *in.Latitude, 1e-9)
	assert.InDelta(t, 28.0892369, *in.Longitude, 1e-9)
	assert.Equal(t, "https://vovotelo.co.za", *in.Website)
	assert.InDelta(t, 3.9, *in.RestaurantRating, 1e-9)
}

func TestPlaceResultAbsentFieldsMeanNoData(t *testing.T) {
	tests := []struct {
		name  string
		place PlaceResult
		check func(t *testing.T, in RestaurantInput)
	}{
		{
			name:  "everything blank",
			place: PlaceResult{},
			check: func(t *testing.T, in RestaurantInput) {
				assert.Empty(t, in.Name)
				assert.Nil(t, in.Address)
				assert.Nil(t, in.GooglePlaceID)
				assert.Nil(t, in.Latitude)
				assert.Nil(t, in.Longitude)
				assert.Nil(t, in.Website)
				assert.Nil(t, in.RestaurantRating)
			},
		},
		{
			name:  "whitespace place id is absent",
			place: PlaceResult{PlaceName: "x", PlaceID: "   "},
			check: func(t *testing.T, in RestaurantInput) {
				assert.Nil(t, in.GooglePlaceID)
			},
		},
		{
			name:  "zero-zero coordinates are absent",
			place: PlaceResult{PlaceName: "x", Latitude: f(0), Longitude: f(0)},
			check: func(t *testing.T, in RestaurantInput) {
				assert.Nil(t, in.Latitude)
				assert.Nil(t, in.Longitude)
			},
		},
		{
			name:  "only one coordinate is absent",
			place: PlaceResult{PlaceName: "x", Latitude: f(-26.02)},
			check: func(t *testing.T, in RestaurantInput) {
				assert.Nil(t, in.Latitude)
				assert.Nil(t, in.Longitude)
			},
		},
		{
			name:  "zero external rating is absent",
			place: PlaceResult{PlaceName: "x", Rating: f(0)},
			check: func(t *testing.T, in RestaurantInput) {
				assert.Nil(t, in.RestaurantRating)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.place.ToRestaurantInput())
		})
	}
}
