package response_models

type Dish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	DietaryTags []string `json:"dietary_tags"`
	Category    string   `json:"category"`
	Country     string   `json:"country"`
	Custom      bool     `json:"custom,omitempty"`
}

type LanguageOption struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type UploadResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
