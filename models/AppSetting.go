package models

// AppSettingSheetID is the settings key holding the provisioned spreadsheet identifier
const AppSettingSheetID = "google_sheet_id"

// AppSetting stores small persistent key/value settings.
// It is intentionally generic to avoid adding new tables for every tiny feature.
type AppSetting struct {
	Key   string `gorm:"primaryKey;size:128" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}
