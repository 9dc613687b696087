// file: models/setting.go
package models

// Well-known setting keys.
const (
	SettingGlobalTestLink  = "global_test_link"
	SettingMailUsername    = "mail_username"
	SettingMailAppPassword = "mail_app_password"
)

type ContestSetting struct {
	ID    uint32 `gorm:"primarykey" json:"id"`
	Key   string `gorm:"size:50;unique;not null" json:"key"`
	Value string `gorm:"size:300" json:"value"`
}

func (ContestSetting) TableName() string {
	return "codefest_setting"
}
