package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

func init() {
	// Report JSON names, not Go field names, in validation errors.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindError turns a ShouldBindJSON failure into a 400 with a readable detail.
func bindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:])
		}
		return apperror.NewInvalidInput("Missing or invalid fields: "+strings.Join(fields, ", "), err)
	}
	return apperror.NewInvalidInput("Invalid JSON body", err)
}
