// Package validator adapts validator/v10 to gin binding
// Package validator 将 validator/v10 适配到 gin 绑定
package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	validatorV10 "github.com/go-playground/validator/v10"
)

// CustomValidator implements binding.StructValidator
// CustomValidator 实现 binding.StructValidator
type CustomValidator struct {
	once     sync.Once
	validate *validatorV10.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

func (v *CustomValidator) ValidateStruct(obj interface{}) error {
	if reflect.Indirect(reflect.ValueOf(obj)).Kind() == reflect.Struct {
		v.lazyinit()
		if err := v.validate.Struct(obj); err != nil {
			return err
		}
	}
	return nil
}

func (v *CustomValidator) Engine() interface{} {
	v.lazyinit()
	return v.validate
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validatorV10.New()
		v.validate.SetTagName("binding")
		// json tag 作为错误字段名，便于前端对应
		v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

var _ binding.StructValidator = (*CustomValidator)(nil)
