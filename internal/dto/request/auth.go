package request

type SignupRequest struct {
	CountryCode     string `json:"countryCode" validate:"required,numeric,max=4"`
	Mobile          string `json:"mobile" validate:"required,numeric,min=6,max=15"`
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type VerifyAccountRequest struct {
	Token string `json:"token" validate:"required,uuid"`
	Code  string `json:"code" validate:"required,numeric"`
}

// SigninRequest leaves password optional; an empty password simply fails the hash check.
type SigninRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"omitempty,max=72"`
}
