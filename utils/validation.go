package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrors chuyển lỗi binding của gin thành map field -> thông báo
// để client hiển thị lỗi theo từng ô nhập
func BindingErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				out[field] = "Trường này là bắt buộc"
			case "email":
				out[field] = "Email không hợp lệ"
			case "min":
				out[field] = "Tối thiểu " + fe.Param() + " ký tự"
			default:
				out[field] = "Giá trị không hợp lệ"
			}
		}
		return out
	}
	// lỗi không phải từ validator (vd JSON hỏng)
	out["_"] = err.Error()
	return out
}
