package requests

// UpdateSettings carries a partial update; nil fields keep their stored value and empty
// strings clear it.
type UpdateSettings struct {
	WebhookURL    *string `json:"webhook_url" validate:"omitempty,url,max=2048"`
	APIPrefix     *string `json:"api_prefix" validate:"omitempty,api_prefix,max=64"`
	DateFormat    *string `json:"date_format" validate:"omitempty,date_pattern,max=32"`
	LandingPageID *string `json:"landing_page_id" validate:"omitempty,max=64"`
	ExpiredPageID *string `json:"expired_page_id" validate:"omitempty,max=64"`
	ErrorPageID   *string `json:"error_page_id" validate:"omitempty,max=64"`
}
