package services

import (
	"fmt"
	"regexp"
	"strings"

	"simsem/internal/models/request_models"
)

// Per-step validators. Each returns a field → message map; an empty map
// means the step is submittable. Validation errors never leave the step
// they originate in.

const minOverviewLength = 50

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var tourDurationUnits = map[string][]string{
	request_models.TourTypeLocalLiving: {"Day", "Days", "Hour", "Hours"},
	request_models.TourTypeDining:      {"Day", "Days", "Hour", "Hours"},
	request_models.TourTypeGetaway:     {"Day", "Week"},
}

var mealCategories = []string{"starter", "main-course", "dessert"}

var serviceTypes = []string{
	request_models.TourTypeLocalLiving,
	request_models.TourTypeGetaway,
	request_models.TourTypeDining,
}

var proficiencyLevels = []string{"NATIVE", "FLUENT", "CONVERSATIONAL", "BASIC"}

func validateBasicInformation(b request_models.BasicInformation) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(b.Title) == "" {
		errs["title"] = "Title is required"
	}
	if len(b.Categories) == 0 {
		errs["categories"] = "Select at least one category"
	}
	if len(strings.TrimSpace(b.Overview)) < minOverviewLength {
		errs["overview"] = fmt.Sprintf("Overview must be at least %d characters", minOverviewLength)
	}

	return errs
}

func validateTourDetails(d request_models.TourDetails, tourType string) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(d.WhatToExpect) == "" {
		errs["what_to_expect"] = "What to expect is required"
	}
	if d.TourDuration.Value < 1 {
		errs["tour_duration.value"] = "Duration must be at least 1"
	}
	if !containsString(tourDurationUnits[tourType], d.TourDuration.Unit) {
		errs["tour_duration.unit"] = "Invalid duration unit"
	}

	return errs
}

func validatePricingPolicy(p request_models.PricingPolicy) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(p.MinimumAge) == "" {
		errs["minimum_age"] = "Minimum age is required"
	}

	validateChildPricing(errs, "infant_pricing", p.InfantPricing)
	validateChildPricing(errs, "kids_pricing", p.KidsPricing)

	switch p.PricingType {
	case request_models.PricingTypeFixed:
		if p.FixedPricePerPerson < 0 {
			errs["fixed_price_per_person"] = "Price cannot be negative"
		}
	case request_models.PricingTypePackage:
		if len(p.Packages) == 0 {
			errs["packages"] = "Add at least one package"
		}
		for i, pkg := range p.Packages {
			prefix := fmt.Sprintf("packages.%d", i)
			if strings.TrimSpace(pkg.Name) == "" {
				errs[prefix+".name"] = "Package name is required"
			}
			if pkg.MinTravelers < 1 {
				errs[prefix+".min_travelers"] = "Minimum travelers must be at least 1"
			}
			if pkg.MaxTravelers < pkg.MinTravelers {
				errs[prefix+".max_travelers"] = "Maximum travelers cannot be below the minimum"
			}
			if pkg.PricePerPerson < 0 {
				errs[prefix+".price_per_person"] = "Price cannot be negative"
			}
		}
	default:
		errs["pricing_type"] = "Pricing type must be fixed or package"
	}

	return errs
}

func validateChildPricing(errs map[string]string, field string, cp request_models.ChildPricing) {
	switch cp.Mode {
	case request_models.ChildPricingFree:
	case request_models.ChildPricingDiscounted:
		if cp.DiscountPercent == nil {
			errs[field+".discount_percent"] = "Discount percentage is required"
		} else if *cp.DiscountPercent < 0 || *cp.DiscountPercent > 100 {
			errs[field+".discount_percent"] = "Discount must be between 0 and 100"
		}
	default:
		errs[field+".mode"] = "Pricing must be free or discounted"
	}
}

func validateMealDetails(m request_models.MealDetails) map[string]string {
	errs := map[string]string{}

	if len(m.SelectedMealCategories) == 0 {
		errs["selected_meal_categories"] = "Select at least one meal category"
	}
	for _, category := range m.SelectedMealCategories {
		if !containsString(mealCategories, category) {
			errs["selected_meal_categories"] = "Invalid meal category: " + category
		}
	}

	return errs
}

func validateIdentification(id request_models.Identification) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(id.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(id.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}
	if !emailPattern.MatchString(id.Email) {
		errs["email"] = "A valid email is required"
	}
	if strings.TrimSpace(id.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(id.Country) == "" {
		errs["country"] = "Country is required"
	}
	if len(id.IDDocument) == 0 {
		errs["id_document"] = "An identity document is required"
	}

	return errs
}

// validateLanguageStep enforces the signup invariant: exactly three
// languages, known proficiency levels, and no duplicate names regardless
// of casing or proficiency.
func validateLanguageStep(ls request_models.LanguageStep) map[string]string {
	errs := map[string]string{}

	if len(ls.Languages) != 3 {
		errs["languages"] = "Exactly three languages are required"
	}

	seen := map[string]bool{}
	for i, lang := range ls.Languages {
		prefix := fmt.Sprintf("languages.%d", i)
		name := strings.ToLower(strings.TrimSpace(lang.Name))
		if name == "" {
			errs[prefix+".name"] = "Language name is required"
			continue
		}
		if seen[name] {
			errs[prefix+".name"] = "Duplicate language: " + lang.Name
		}
		seen[name] = true

		if !containsString(proficiencyLevels, lang.Proficiency) {
			errs[prefix+".proficiency"] = "Invalid proficiency level"
		}
	}

	return errs
}

func validateServicesStep(ss request_models.ServicesStep) map[string]string {
	errs := map[string]string{}

	if len(ss.Services) == 0 {
		errs["services"] = "Select at least one service"
	}
	for _, service := range ss.Services {
		if !containsString(serviceTypes, service) {
			errs["services"] = "Invalid service type: " + service
		}
	}

	return errs
}

func validatePaymentStep(ps request_models.PaymentStep) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(ps.AccountHolder) == "" {
		errs["account_holder"] = "Account holder is required"
	}
	if strings.TrimSpace(ps.BankName) == "" {
		errs["bank_name"] = "Bank name is required"
	}
	if strings.TrimSpace(ps.Iban) == "" {
		errs["iban"] = "IBAN is required"
	}

	return errs
}

func validateAccountStep(as request_models.AccountStep) map[string]string {
	errs := map[string]string{}

	if !emailPattern.MatchString(as.Email) {
		errs["email"] = "A valid email is required"
	}
	if len(as.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}

	return errs
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
