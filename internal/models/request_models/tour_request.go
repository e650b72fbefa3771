package request_models

// Step payloads for the tour-creation wizard. Shapes mirror what the
// admin frontend collects per step; cross-field rules live in the
// wizard service validators.

const (
	TourTypeLocalLiving = "local-living"
	TourTypeGetaway     = "getaway"
	TourTypeDining      = "dining"

	PricingTypeFixed   = "fixed"
	PricingTypePackage = "package"

	ChildPricingFree       = "free"
	ChildPricingDiscounted = "discounted"
)

type BasicInformation struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Overview   string   `json:"overview"`
}

type TourDuration struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type ItineraryItem struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

type Guideline struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

type PickupPoint struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Selected bool   `json:"selected"`
}

type PhotoRef struct {
	FileRef    string `json:"file_ref"`
	PreviewURL string `json:"preview_url"`
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mime_type"`
}

type TourDetails struct {
	WhatToExpect  string                     `json:"what_to_expect"`
	Inclusions    []string                   `json:"inclusions"`
	Exclusions    []string                   `json:"exclusions"`
	TourDuration  TourDuration               `json:"tour_duration"`
	Itinerary     map[string][]ItineraryItem `json:"itinerary"`
	Guidelines    []Guideline                `json:"guidelines"`
	PickupPoints  []PickupPoint              `json:"pickup_points"`
	CoverPhotos   []PhotoRef                 `json:"cover_photos"`
	GalleryPhotos []PhotoRef                 `json:"gallery_photos"`
}

type ChildPricing struct {
	Mode            string   `json:"mode"`
	DiscountPercent *float64 `json:"discount_percent"`
}

type PackageTier struct {
	Name           string  `json:"name"`
	MinTravelers   int     `json:"min_travelers"`
	MaxTravelers   int     `json:"max_travelers"`
	PricePerPerson float64 `json:"price_per_person"`
}

type PricingPolicy struct {
	MinimumAge          string        `json:"minimum_age"`
	InfantPricing       ChildPricing  `json:"infant_pricing"`
	KidsPricing         ChildPricing  `json:"kids_pricing"`
	PricingType         string        `json:"pricing_type"`
	FixedPricePerPerson float64       `json:"fixed_price_per_person"`
	Packages            []PackageTier `json:"packages"`
}

type FoodItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	DietaryTags []string `json:"dietary_tags"`
	Category    string   `json:"category"`
	Country     string   `json:"country"`
}

type MealDetails struct {
	SelectedMealCategories []string              `json:"selected_meal_categories"`
	SelectedFoodItems      map[string][]FoodItem `json:"selected_food_items"`
	MenuItems              []string              `json:"menu_items"`
	CustomMenuDescription  string                `json:"custom_menu_description"`
}
