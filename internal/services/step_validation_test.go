package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simsem/internal/models/request_models"
)

func TestValidateLanguageStep(t *testing.T) {
	three := func(names ...string) request_models.LanguageStep {
		step := request_models.LanguageStep{}
		for _, name := range names {
			step.Languages = append(step.Languages, request_models.Language{
				Name:        name,
				Proficiency: "FLUENT",
			})
		}
		return step
	}

	t.Run("accepts three distinct languages", func(t *testing.T) {
		errs := validateLanguageStep(three("Arabic", "English", "French"))
		assert.Empty(t, errs)
	})

	t.Run("rejects fewer than three", func(t *testing.T) {
		errs := validateLanguageStep(three("Arabic", "English"))
		assert.Contains(t, errs, "languages")
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		step := three("Arabic", "arabic", "English")
		step.Languages[1].Proficiency = "BASIC" // differing proficiency does not help
		errs := validateLanguageStep(step)
		assert.Contains(t, errs, "languages.1.name")
	})

	t.Run("rejects unknown proficiency", func(t *testing.T) {
		step := three("Arabic", "English", "French")
		step.Languages[0].Proficiency = "OKAYISH"
		errs := validateLanguageStep(step)
		assert.Contains(t, errs, "languages.0.proficiency")
	})
}

func TestValidatePricingPolicy(t *testing.T) {
	discount := func(v float64) *float64 { return &v }

	base := request_models.PricingPolicy{
		MinimumAge:    "18",
		InfantPricing: request_models.ChildPricing{Mode: request_models.ChildPricingFree},
		KidsPricing:   request_models.ChildPricing{Mode: request_models.ChildPricingFree},
	}

	t.Run("fixed pricing valid", func(t *testing.T) {
		p := base
		p.PricingType = request_models.PricingTypeFixed
		p.FixedPricePerPerson = 65
		assert.Empty(t, validatePricingPolicy(p))
	})

	t.Run("package pricing requires packages", func(t *testing.T) {
		p := base
		p.PricingType = request_models.PricingTypePackage
		errs := validatePricingPolicy(p)
		assert.Contains(t, errs, "packages")
	})

	t.Run("package bounds are checked", func(t *testing.T) {
		p := base
		p.PricingType = request_models.PricingTypePackage
		p.Packages = []request_models.PackageTier{
			{Name: "Bad", MinTravelers: 4, MaxTravelers: 2, PricePerPerson: 10},
		}
		errs := validatePricingPolicy(p)
		assert.Contains(t, errs, "packages.0.max_travelers")
	})

	t.Run("discounted child pricing requires a percentage", func(t *testing.T) {
		p := base
		p.PricingType = request_models.PricingTypeFixed
		p.KidsPricing = request_models.ChildPricing{Mode: request_models.ChildPricingDiscounted}
		errs := validatePricingPolicy(p)
		assert.Contains(t, errs, "kids_pricing.discount_percent")

		p.KidsPricing.DiscountPercent = discount(120)
		errs = validatePricingPolicy(p)
		assert.Contains(t, errs, "kids_pricing.discount_percent")

		p.KidsPricing.DiscountPercent = discount(50)
		assert.Empty(t, validatePricingPolicy(p))
	})
}

func TestValidateBasicInformation(t *testing.T) {
	long := "An immersive walk through the old town with a local host and plenty of food stops."

	t.Run("valid", func(t *testing.T) {
		errs := validateBasicInformation(request_models.BasicInformation{
			Title:      "Souk walk",
			Categories: []string{"culture"},
			Overview:   long,
		})
		assert.Empty(t, errs)
	})

	t.Run("requires a category and a long overview", func(t *testing.T) {
		errs := validateBasicInformation(request_models.BasicInformation{
			Title:    "Souk walk",
			Overview: "Too short",
		})
		assert.Contains(t, errs, "categories")
		assert.Contains(t, errs, "overview")
	})
}

func TestValidateTourDetails(t *testing.T) {
	t.Run("getaway uses week units", func(t *testing.T) {
		d := request_models.TourDetails{
			WhatToExpect: "Desert camping",
			TourDuration: request_models.TourDuration{Value: 1, Unit: "Week"},
		}
		assert.Empty(t, validateTourDetails(d, request_models.TourTypeGetaway))
		assert.Contains(t, validateTourDetails(d, request_models.TourTypeDining), "tour_duration.unit")
	})
}
