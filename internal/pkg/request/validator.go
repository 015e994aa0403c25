package request

import (
	"regexp"
	"socialelections/internal/core"
	cErr "socialelections/internal/pkg/error"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages map[string]string

var reg = regexp.MustCompile(`\[\d\]`)

var registerOnce sync.Once

// RegisterValidations 把自訂規則掛到 gin 的 validator engine，只會執行一次
func RegisterValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("or_category", validateORCategory)
		}
	})
}

func validateORCategory(fl validator.FieldLevel) bool {
	return core.ORCategory(fl.Field().String()).Valid()
}

// GetError 從請求和錯誤中獲取錯誤信息
func GetError(request interface{}, err error) *cErr.Error {
	if errs, isValidatorErrors := err.(validator.ValidationErrors); isValidatorErrors {
		messenger, isValidator := request.(Validator)

		var errorMessages []string
		for _, v := range errs {
			if v.Tag() == "or_category" {
				return cErr.InvalidCategory("category must be one of arbeiders, bedienden, kaderleden, jeugdige")
			}
			if isValidator {
				field := reg.ReplaceAllString(v.Field(), ".*")
				if message, exist := messenger.GetMessages()[field+"."+v.Tag()]; exist {
					errorMessages = append(errorMessages, message)
					continue
				}
			}
			errorMessages = append(errorMessages, v.Error())
		}
		if len(errorMessages) > 0 {
			return cErr.ValidateErr(errorMessages[0]) // Return the first error message
		}
	}

	return cErr.ValidateErr("Parameter error")
}
