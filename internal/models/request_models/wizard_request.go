package request_models

type StartWizardRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=tour signup"`
	TourType string `json:"tour_type" binding:"required_if=Kind tour,omitempty,oneof=local-living getaway dining"`
}

type CustomDishRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required,oneof=starter main-course dessert"`
	Country     string   `json:"country"`
	ImageURL    string   `json:"image_url"`
	DietaryTags []string `json:"dietary_tags"`
}
