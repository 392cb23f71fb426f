package dto

import "strings"

// PlaceResult is the narrow contract with the embedded location-picker
// widget. The widget is an opaque data source: any absent or malformed
// field means "no data available", never an error.
type PlaceResult struct {
	PlaceName        string   `json:"place_name"`
	FormattedAddress string   `json:"formatted_address"`
	PlaceID          string   `json:"place_id"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Website          string   `json:"website"`
	Rating           *float64 `json:"rating"`
}

// ToRestaurantInput maps a picker result onto a restaurant input. Blank
// strings, zero ratings and (0, 0) coordinates count as absent, matching
// how the submission form treats untouched widget fields.
func (p *PlaceResult) ToRestaurantInput() RestaurantInput {
	in := RestaurantInput{
		Name: strings.TrimSpace(p.PlaceName),
	}
	if addr := strings.TrimSpace(p.FormattedAddress); addr != "" {
		in.Address = &addr
	}
	if id := strings.TrimSpace(p.PlaceID); id != "" {
		in.GooglePlaceID = &id
	}
	if p.Latitude != nil && p.Longitude != nil && !(*p.Latitude == 0 && *p.Longitude == 0) {
		in.Latitude = p.Latitude
		in.Longitude = p.Longitude
	}
	if site := strings.TrimSpace(p.Website); site != "" {
		in.Website = &site
	}
	if p.Rating != nil && *p.Rating > 0 {
		in.RestaurantRating = p.Rating
	}
	return in
}
