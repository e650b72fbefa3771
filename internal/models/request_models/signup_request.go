package request_models

// Step payloads for the provider signup wizard.

type Identification struct {
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	CountryCode  string     `json:"country_code"`
	Country      string     `json:"country"`
	City         string     `json:"city"`
	IDDocument   []PhotoRef `json:"id_document"`
	ProfilePhoto *PhotoRef  `json:"profile_photo"`
}

type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type LanguageStep struct {
	Languages []Language `json:"languages"`
}

type ServicesStep struct {
	Services []string `json:"services"`
}

type PaymentStep struct {
	AccountHolder string `json:"account_holder"`
	BankName      string `json:"bank_name"`
	BankCountry   string `json:"bank_country"`
	Iban          string `json:"iban"`
	SwiftCode     string `json:"swift_code"`
}

type AccountStep struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
