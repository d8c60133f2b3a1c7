package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVacancyStatusColor(t *testing.T) {
	cases := []struct {
		status VacancyStatus
		color  string
	}{
		{StatusPublished, "success"},
		{StatusModeration, "warning"},
		{StatusRejected, "danger"},
		{VacancyStatus("archived"), "secondary"}, // giá trị lạ không được gây lỗi
		{VacancyStatus(""), "secondary"},
	}
	for _, tc := range cases {
		v := Vacancy{Status: tc.status}
		require.Equal(t, tc.color, v.StatusColor(), "status %q", tc.status)
	}
}

func TestVacancyStatusDisplay(t *testing.T) {
	require.Equal(t, "Chờ duyệt", (&Vacancy{Status: StatusModeration}).StatusDisplay())
	require.Equal(t, "Đã đăng", (&Vacancy{Status: StatusPublished}).StatusDisplay())
	require.Equal(t, "Bị từ chối", (&Vacancy{Status: StatusRejected}).StatusDisplay())

	// trạng thái lạ trả về nguyên giá trị thô
	require.Equal(t, "archived", (&Vacancy{Status: VacancyStatus("archived")}).StatusDisplay())
}
