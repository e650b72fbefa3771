package parse_models

// Create payload for the ProposedTour class. Field names and encodings
// follow what the backend already accepts, including the stringified
// arrays and the string-typed numbers in tour packages.

type ItineraryEntry struct {
	Day         string `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GuidelineEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PickupValue struct {
	CameraZoom       float64 `json:"cameraZoom"`
	PickupPoint      string  `json:"pickupPoint"`
	PickupPointLat   float64 `json:"pickupPointLat"`
	PickupPointLong  float64 `json:"pickupPointLong"`
	PickupPointTitle string  `json:"pickupPointTitle"`
}

type PickupEntry struct {
	Key   string      `json:"key"`
	Value PickupValue `json:"value"`
}

type TourPackage struct {
	Cost       string `json:"cost"`
	FromPerson string `json:"fromPerson"`
	ToPerson   string `json:"toPerson"`
}

type ProposedTour struct {
	Title           string                        `json:"title"`
	TourCategory    []string                      `json:"tourCategory"`
	Overview        string                        `json:"overview"`
	TourType        string                        `json:"tourType"`
	WhatToExpect    string                        `json:"whatToExpect"`
	Inclusions      []string                      `json:"inclusions"`
	Exclusions      []string                      `json:"exclusions"`
	Duration        int                           `json:"duration"`
	DurationUnit    string                        `json:"durationUnit"`
	Itinerary       []Stringified[ItineraryEntry] `json:"itinerary"`
	Guidelines      []Stringified[GuidelineEntry] `json:"guidelines"`
	PickupPoints    []Stringified[PickupEntry]    `json:"pickupPoints"`
	TourPackages    []TourPackage                 `json:"tourPackages"`
	MinimumAge      string                        `json:"minimumAge"`
	InfantPricing   string                        `json:"infantPricing"`
	KidsPricing     string                        `json:"kidsPricing"`
	InfantDiscount  float64                       `json:"infantDiscount"`
	KidsDiscount    float64                       `json:"kidsDiscount"`
	CoverPhotos     []string                      `json:"coverPhotos"`
	GalleryPhotos   []string                      `json:"galleryPhotos"`
	MealCategories  []string                      `json:"mealCategories,omitempty"`
	MenuItems       []string                      `json:"menuItems,omitempty"`
	MenuDescription string                        `json:"menuDescription,omitempty"`

	// Placeholder fields; the wizard does not collect these yet and the
	// backend still expects them on every create.
	Country         string   `json:"country"`
	City            string   `json:"city"`
	DifficultyLevel string   `json:"difficultyLevel"`
	GuideID         string   `json:"guideId"`
	Phone           string   `json:"phone"`
	CountryCode     string   `json:"countryCode"`
	TourTimes       []string `json:"tourTimes"`
}
