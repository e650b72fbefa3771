package parse_models

// Create payloads for the provider signup flow: one ProviderPayment
// record followed by one ServiceProvider record referencing it.

type ProviderPayment struct {
	AccountHolder string `json:"accountHolder"`
	BankName      string `json:"bankName"`
	BankCountry   string `json:"bankCountry"`
	Iban          string `json:"iban"`
	SwiftCode     string `json:"swiftCode"`
	IbanVerified  bool   `json:"ibanVerified"`
}

type ProviderLanguage struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type ServiceProvider struct {
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	CountryCode     string             `json:"countryCode"`
	Country         string             `json:"country"`
	City            string             `json:"city"`
	Languages       []ProviderLanguage `json:"languages"`
	Services        []string           `json:"services"`
	IDDocumentURLs  []string           `json:"idDocumentUrls"`
	ProfilePhotoURL string             `json:"profilePhotoUrl,omitempty"`
	PasswordHash    string             `json:"passwordHash"`
	PaymentID       string             `json:"paymentId"`
}

type OfferedDish struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	DietaryTags []string `json:"dietaryTags"`
	Category    string   `json:"category"`
	Country     string   `json:"country"`
}
