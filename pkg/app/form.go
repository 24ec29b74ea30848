package app

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/gin-gonic/gin"
	validatorV10 "github.com/go-playground/validator/v10"
)

// ValidError single field validation error
// ValidError 单个字段的校验错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// MapsToString key=message 形式的错误映射
func (v ValidErrors) MapsToString() map[string]string {
	m := make(map[string]string)
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// BindAndValid binds request parameters and translates validation errors
// BindAndValid 绑定请求参数并翻译校验错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err != nil {
		v := c.Value("trans")
		trans, _ := v.(ut.Translator)
		verrs, ok := err.(validatorV10.ValidationErrors)
		if !ok {
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: err.Error(),
			})
			return false, errs
		}

		if trans == nil {
			for _, fe := range verrs {
				errs = append(errs, &ValidError{
					Key:     fe.Field(),
					Message: fe.Error(),
				})
			}
			return false, errs
		}

		for key, value := range verrs.Translate(trans) {
			errs = append(errs, &ValidError{
				Key:     key,
				Message: value,
			})
		}
		return false, errs
	}
	return true, nil
}
