package constvars

const (
	GetSettingsSuccessMessage    = "Settings retrieved successfully"
	UpdateSettingsSuccessMessage = "Settings updated successfully"
	GetPagesSuccessMessage       = "Pages retrieved successfully"
)
