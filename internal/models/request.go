package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AnalyzeRequest holds the non-file fields of the analyze multipart form.
type AnalyzeRequest struct {
	Objective      string `form:"objective" validate:"required,oneof=clients talents recruiters branding"`
	SkipBanner     bool   `form:"skipBanner"`
	SkipPhoto      bool   `form:"skipPhoto"`
	Lang           string `form:"lang" validate:"omitempty,max=8"`
	TurnstileToken string `form:"turnstileToken" validate:"max=4096"`
}

func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// InvalidField returns the name of the first field that failed validation,
// or "" when err did not come from Validate.
func InvalidField(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return errs[0].Field()
	}
	return ""
}
