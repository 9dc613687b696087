// file: dto/admin.go
package dto

type AdminLoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type GlobalSettingsReq struct {
	GlobalTestLink string `json:"global_test_link" binding:"required,url"`
}

type EmailSettingsReq struct {
	MailUsername    string `json:"mail_username" binding:"required,email"`
	MailAppPassword string `json:"mail_app_password" binding:"required"`
}
