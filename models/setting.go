package models

// Feature flags stored in system_settings.
const (
	FeatureGlobalService  = "global_service"
	FeatureMenuManagement = "menu_management"
	FeatureSalesStats     = "sales_stats"
)

// SystemSetting is a row of system_settings.
type SystemSetting struct {
	FeatureName string `json:"feature_name" db:"feature_name"`
	IsActive    bool   `json:"is_active" db:"is_active"`
}
