package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"simsem/internal/models/parse_models"
	"simsem/internal/models/request_models"
)

// Compilation of the terminal wizard values into the ProposedTour create
// payload. The reshaping rules here encode what the backend already
// accepts and must not be "improved" independently of it: the stringified
// arrays, the string-typed package numbers, and the zeroed pickup
// coordinates are all part of the wire contract.

// Fields the wizard does not collect yet. The backend requires them on
// every create, so they are pinned here rather than inferred.
const (
	placeholderCountry         = "Jordan"
	placeholderCity            = "Amman"
	placeholderDifficultyLevel = "Easy"
	placeholderGuideID         = ""
	placeholderPhone           = ""
	placeholderCountryCode     = "+962"
)

var placeholderTourTimes = []string{"09:00 AM"}

const pickupCameraZoom = 15.0

func CompileTourPayload(
	tourType string,
	basic request_models.BasicInformation,
	details request_models.TourDetails,
	pricing request_models.PricingPolicy,
	meals *request_models.MealDetails,
) parse_models.ProposedTour {

	payload := parse_models.ProposedTour{
		Title:          basic.Title,
		TourCategory:   basic.Categories,
		Overview:       basic.Overview,
		TourType:       tourType,
		WhatToExpect:   details.WhatToExpect,
		Inclusions:     details.Inclusions,
		Exclusions:     details.Exclusions,
		Duration:       details.TourDuration.Value,
		DurationUnit:   details.TourDuration.Unit,
		Itinerary:      compileItinerary(details.Itinerary),
		Guidelines:     compileGuidelines(details.Guidelines),
		PickupPoints:   compilePickupPoints(details.PickupPoints),
		TourPackages:   compileTourPackages(pricing),
		MinimumAge:     pricing.MinimumAge,
		InfantPricing:  pricing.InfantPricing.Mode,
		KidsPricing:    pricing.KidsPricing.Mode,
		InfantDiscount: childDiscount(pricing.InfantPricing),
		KidsDiscount:   childDiscount(pricing.KidsPricing),
		CoverPhotos:    photoURLs(details.CoverPhotos),
		GalleryPhotos:  photoURLs(details.GalleryPhotos),

		Country:         placeholderCountry,
		City:            placeholderCity,
		DifficultyLevel: placeholderDifficultyLevel,
		GuideID:         placeholderGuideID,
		Phone:           placeholderPhone,
		CountryCode:     placeholderCountryCode,
		TourTimes:       placeholderTourTimes,
	}

	if meals != nil {
		payload.MealCategories = meals.SelectedMealCategories
		payload.MenuItems = meals.MenuItems
		payload.MenuDescription = meals.CustomMenuDescription
	}

	return payload
}

// compileItinerary flattens the day-keyed map into stringified entries,
// days in ascending numeric order. Items missing time, activity, or
// description are dropped silently.
func compileItinerary(itinerary map[string][]request_models.ItineraryItem) []parse_models.Stringified[parse_models.ItineraryEntry] {
	entries := []parse_models.Stringified[parse_models.ItineraryEntry]{}

	for _, key := range sortedDayKeys(itinerary) {
		dayNumber := dayNumberFromKey(key)
		for _, item := range itinerary[key] {
			if item.Time == "" || item.Activity == "" || item.Description == "" {
				continue
			}
			entries = append(entries, parse_models.Stringify(parse_models.ItineraryEntry{
				Day:         fmt.Sprintf("Day %d", dayNumber),
				Title:       item.Activity,
				Description: item.Description,
			}))
		}
	}

	return entries
}

func compileGuidelines(guidelines []request_models.Guideline) []parse_models.Stringified[parse_models.GuidelineEntry] {
	entries := []parse_models.Stringified[parse_models.GuidelineEntry]{}

	for _, g := range guidelines {
		if g.Title == "" || g.Details == "" {
			continue
		}
		entries = append(entries, parse_models.Stringify(parse_models.GuidelineEntry{
			Title:       g.Title,
			Description: g.Details,
		}))
	}

	return entries
}

func compilePickupPoints(points []request_models.PickupPoint) []parse_models.Stringified[parse_models.PickupEntry] {
	entries := []parse_models.Stringified[parse_models.PickupEntry]{}

	for _, point := range points {
		entries = append(entries, parse_models.Stringify(parse_models.PickupEntry{
			Key: pickupKey(point.Name),
			Value: parse_models.PickupValue{
				CameraZoom:       pickupCameraZoom,
				PickupPoint:      point.Address,
				PickupPointLat:   0,
				PickupPointLong:  0,
				PickupPointTitle: point.Name,
			},
		}))
	}

	return entries
}

// pickupKey maps a pickup point's display name onto the backend's fixed
// keys; unrecognized names become a lowercased, whitespace-stripped slug.
func pickupKey(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "hotel"):
		return "hotelPickup"
	case strings.Contains(lower, "airport"):
		return "airportPickup"
	case strings.Contains(lower, "location"), strings.Contains(lower, "specific"):
		return "locationPickup"
	default:
		return strings.Join(strings.Fields(lower), "")
	}
}

func compileTourPackages(pricing request_models.PricingPolicy) []parse_models.TourPackage {
	if pricing.PricingType == request_models.PricingTypePackage {
		packages := make([]parse_models.TourPackage, 0, len(pricing.Packages))
		for _, pkg := range pricing.Packages {
			packages = append(packages, parse_models.TourPackage{
				Cost:       formatCost(pkg.PricePerPerson),
				FromPerson: strconv.Itoa(pkg.MinTravelers),
				ToPerson:   strconv.Itoa(pkg.MaxTravelers),
			})
		}
		return packages
	}

	return []parse_models.TourPackage{{
		Cost:       formatCost(pricing.FixedPricePerPerson),
		FromPerson: "1",
		ToPerson:   "999",
	}}
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func childDiscount(cp request_models.ChildPricing) float64 {
	if cp.Mode == request_models.ChildPricingDiscounted && cp.DiscountPercent != nil {
		return *cp.DiscountPercent
	}
	return 0
}

func photoURLs(photos []request_models.PhotoRef) []string {
	urls := make([]string, 0, len(photos))
	for _, photo := range photos {
		if photo.PreviewURL != "" {
			urls = append(urls, photo.PreviewURL)
		}
	}
	return urls
}

// sortedDayKeys orders day keys by their numeric suffix so day10 sorts
// after day9.
func sortedDayKeys(itinerary map[string][]request_models.ItineraryItem) []string {
	keys := make([]string, 0, len(itinerary))
	for key := range itinerary {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return dayNumberFromKey(keys[i]) < dayNumberFromKey(keys[j])
	})
	return keys
}

func dayNumberFromKey(key string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(key), "day"))
	if err != nil {
		return 0
	}
	return n
}
