package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound  = errors.New("không tìm thấy bản ghi")
	ErrNotOwner  = errors.New("không phải tác giả của tin")
	ErrBadStatus = errors.New("trạng thái không hợp lệ")
)

// ValidationError chứa lỗi theo từng field để client hiển thị lại form
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "dữ liệu không hợp lệ: " + strings.Join(keys, ", ")
}
