package request

type RequestResetPasswordRequest struct {
	CountryCode string `json:"countryCode" validate:"required,numeric,max=4"`
	Mobile      string `json:"mobile" validate:"required,numeric,min=6,max=15"`
}

type VerifyResetCodeRequest struct {
	Token string `json:"token" validate:"required,uuid"`
	Code  string `json:"code" validate:"required"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required,uuid"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
