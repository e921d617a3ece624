package usecase

import (
	"ecommerce-auth/pkg/utils"
)

// Client-facing failures. Each call returns a fresh value so causes can be attached.

func errSomethingWrong() *utils.AppError {
	return utils.NewBadRequest(utils.CodeBadRequest, "Something went wrong.")
}

func errMobileTaken() *utils.AppError {
	return utils.NewConflict("Something went wrong.")
}

func errInvalidCode() *utils.AppError {
	return utils.NewBadRequest(utils.CodeInvalidCode, "Invalid code.").WithTitle("Invalid Code")
}

func errInvalidOrExpiredCode() *utils.AppError {
	return utils.NewBadRequest(utils.CodeInvalidCode, "Invalid or expired code.").WithTitle("Invalid Code")
}

func errContactSupport() *utils.AppError {
	return utils.NewBadRequest(utils.CodeAccountInactive, "Something went wrong. Please contact support.")
}

func errInvalidCredentials() *utils.AppError {
	return utils.NewBadRequest(utils.CodeInvalidCreds, "Invalid Credentials.").WithTitle("Invalid Credentials")
}

func errVerifyAccount() *utils.AppError {
	return utils.NewBadRequest(utils.CodeAccountInactive, "Please verify your account.")
}

func errUnauthorized() *utils.AppError {
	return utils.NewUnauthorized("Unauthorized")
}

func errMobileNotFound() *utils.AppError {
	return utils.NewNotFound("The resource does not exist")
}

func errResetInactiveAccount() *utils.AppError {
	return errSomethingWrong().WithTitle("Failed to process reset password request")
}

func errResetCodeNotFound() *utils.AppError {
	return utils.NewNotFound("The reset code is invalid or expired")
}

func errResetCodeMismatch() *utils.AppError {
	return utils.NewBadRequest(utils.CodeInvalidCode, "The code is invalid").WithTitle("Invalid Code")
}

func errResetTokenNotFound() *utils.AppError {
	return utils.NewNotFound("The reset token is invalid or expired")
}

func errResetTokenUsed() *utils.AppError {
	return utils.NewBadRequest(utils.CodeTokenUsed, "Reset token already used").WithTitle("Failed to reset password")
}

func errResetNotVerified() *utils.AppError {
	return utils.NewBadRequest(utils.CodeNotVerified, "Please verify the reset code first").WithTitle("Failed to reset password")
}
