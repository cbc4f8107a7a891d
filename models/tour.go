package models

import "time"

// TouristSpot is a nearby attraction listed on a tour page.
type TouristSpot struct {
	Name        string `bson:"name" json:"name"`
	Distance    string `bson:"distance" json:"distance"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// TourDuration is the advertised length of a tour.
type TourDuration struct {
	Days   int `bson:"days" json:"days"`
	Nights int `bson:"nights" json:"nights"`
}

// MealItem describes a food item included in a tour package.
type MealItem struct {
	Name        string `bson:"name" json:"name"`
	Type        string `bson:"type" json:"type"` // breakfast, lunch, dinner, snacks
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// TourInclusions lists what a tour package covers.
type TourInclusions struct {
	Food           []MealItem `bson:"food,omitempty" json:"food,omitempty"`
	Accommodation  bool       `bson:"accommodation" json:"accommodation"`
	Transportation bool       `bson:"transportation" json:"transportation"`
	GuidedTour     bool       `bson:"guided_tour" json:"guidedTour"`
}

// Tour is a catalogue entry describing a destination package.
// BasePricePerDay and PricePerKm are display fields; booking cost is
// computed from the selected vehicle's rates.
type Tour struct {
	ID                string         `bson:"id" json:"id"`
	Name              string         `bson:"name" json:"name"`
	Description       string         `bson:"description" json:"description"`
	Area              string         `bson:"area" json:"area"`
	Location          string         `bson:"location" json:"location"`
	NearbyTouristSpots []TouristSpot `bson:"nearby_tourist_spots,omitempty" json:"nearbyTouristSpots,omitempty"`
	Duration          TourDuration   `bson:"duration" json:"duration"`
	Included          TourInclusions `bson:"included" json:"included"`
	BasePricePerDay   float64        `bson:"base_price_per_day" json:"basePricePerDay"`
	PricePerKm        float64        `bson:"price_per_km" json:"pricePerKm"`
	MaxKms            float64        `bson:"max_kms,omitempty" json:"maxKms,omitempty"`
	Image             string         `bson:"image,omitempty" json:"image,omitempty"`
	SeasonalTheme     string         `bson:"seasonal_theme" json:"seasonalTheme"`
	AvailableSeasons  []string       `bson:"available_seasons,omitempty" json:"availableSeasons,omitempty"`
	CreatedAt         time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time      `bson:"updated_at" json:"updatedAt"`
}
