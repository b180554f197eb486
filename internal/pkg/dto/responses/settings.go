package responses

type Settings struct {
	WebhookURL              string `json:"webhook_url"`
	APIPrefix               string `json:"api_prefix"`
	DateFormat              string `json:"date_format"`
	LandingPageID           string `json:"landing_page_id"`
	ExpiredPageID           string `json:"expired_page_id"`
	ErrorPageID             string `json:"error_page_id"`
	ConfirmationLinkExample string `json:"confirmation_link_example"`
}

type Page struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Language         string `json:"language,omitempty"`
	TranslationGroup string `json:"translation_group,omitempty"`
}
