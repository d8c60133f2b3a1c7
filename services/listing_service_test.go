package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/models"
)

func createListedVacancy(t *testing.T, db *gorm.DB, title, company, description string, status models.VacancyStatus, salary, experience string, createdAt time.Time) models.Vacancy {
	t.Helper()
	v := models.Vacancy{
		Title:       title,
		Company:     company,
		Description: description,
		Status:      status,
		CreatedAt:   createdAt,
	}
	if salary != "" {
		v.Salary = &salary
	}
	if experience != "" {
		v.Experience = &experience
	}
	require.NoError(t, db.Create(&v).Error)
	return v
}

func titlesOf(items []models.Vacancy) []string {
	out := make([]string, 0, len(items))
	for _, v := range items {
		out = append(out, v.Title)
	}
	return out
}

func TestHomeListing(t *testing.T) {
	db := setupTestDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	createListedVacancy(t, db, "Backend Engineer", "Tech Corp", "Viết API", models.StatusPublished, "2000", "3", base)
	createListedVacancy(t, db, "Kế toán", "Finance Ltd", "Sổ sách", models.StatusPublished, "1000", "1", base.Add(time.Hour))
	createListedVacancy(t, db, "Tester", "Tech Corp", "Kiểm thử backend", models.StatusPublished, "1500", "2", base.Add(2*time.Hour))
	createListedVacancy(t, db, "Tin chờ duyệt", "Hidden Co", "Chưa duyệt", models.StatusModeration, "9000", "9", base.Add(3*time.Hour))
	createListedVacancy(t, db, "Tin bị từ chối", "Hidden Co", "Đã từ chối", models.StatusRejected, "9000", "9", base.Add(4*time.Hour))

	t.Run("chỉ hiển thị tin đã đăng, mới nhất trước", func(t *testing.T) {
		page, err := HomeListing(db, HomeFilter{}, 1)
		require.NoError(t, err)
		require.EqualValues(t, 3, page.TotalItems)
		require.Equal(t, []string{"Tester", "Kế toán", "Backend Engineer"}, titlesOf(page.Items))
	})

	t.Run("search không phân biệt hoa thường", func(t *testing.T) {
		page, err := HomeListing(db, HomeFilter{Search: "backend"}, 1)
		require.NoError(t, err)
		require.Equal(t, []string{"Backend Engineer"}, titlesOf(page.Items))
	})

	t.Run("search trang chủ không quét description", func(t *testing.T) {
		// "Kiểm thử backend" chỉ nằm trong description của Tester
		page, err := HomeListing(db, HomeFilter{Search: "kiểm thử"}, 1)
		require.NoError(t, err)
		require.Empty(t, page.Items)
	})

	t.Run("lọc salary so sánh theo chuỗi", func(t *testing.T) {
		page, err := HomeListing(db, HomeFilter{Salary: "1500"}, 1)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"Backend Engineer", "Tester"}, titlesOf(page.Items))
	})

	t.Run("lọc experience so sánh theo chuỗi", func(t *testing.T) {
		page, err := HomeListing(db, HomeFilter{Experience: "2"}, 1)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"Backend Engineer", "Tester"}, titlesOf(page.Items))
	})
}

func TestHomeListingStringCompareQuirk(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()

	// salary là cột text: "1000" < "200" theo thứ tự chuỗi
	createListedVacancy(t, db, "Lương nghìn", "A", "x", models.StatusPublished, "1000", "", now)
	createListedVacancy(t, db, "Lương trăm", "B", "x", models.StatusPublished, "200", "", now)

	page, err := HomeListing(db, HomeFilter{Salary: "200"}, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Lương trăm"}, titlesOf(page.Items))
}

func TestPaginationClamp(t *testing.T) {
	db := setupTestDB(t)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// 4 tin đã đăng, cỡ trang mặc định trang chủ là 3 -> 2 trang
	for i := 0; i < 4; i++ {
		createListedVacancy(t, db, "Tin", "Công ty", "x", models.StatusPublished, "", "", base.Add(time.Duration(i)*time.Hour))
	}

	t.Run("trang vượt quá kẹp về trang cuối", func(t *testing.T) {
		page, err := HomeListing(db, HomeFilter{}, 99)
		require.NoError(t, err)
		require.Equal(t, 2, page.Number)
		require.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Items, 1)
		require.True(t, page.HasPrev)
		require.False(t, page.HasNext)
	})

	t.Run("trang nhỏ hơn 1 kẹp về trang đầu", func(t *testing.T) {
		page, err := HomeListing(db, HomeFilter{}, 0)
		require.NoError(t, err)
		require.Equal(t, 1, page.Number)
		require.Len(t, page.Items, 3)
		require.True(t, page.HasNext)
	})

	t.Run("không có tin nào vẫn trả trang 1/1", func(t *testing.T) {
		page, err := HomeListing(db, HomeFilter{Search: "không tồn tại"}, 7)
		require.NoError(t, err)
		require.Equal(t, 1, page.Number)
		require.Equal(t, 1, page.TotalPages)
		require.Empty(t, page.Items)
	})
}

func TestVacancyListing(t *testing.T) {
	db := setupTestDB(t)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	createListedVacancy(t, db, "Tester", "Tech Corp", "Kiểm thử backend", models.StatusPublished, "", "", base)
	createListedVacancy(t, db, "Kế toán", "Finance Ltd", "Sổ sách", models.StatusPublished, "", "", base.Add(time.Hour))
	createListedVacancy(t, db, "Tin chờ duyệt", "Hidden Co", "backend", models.StatusModeration, "", "", base.Add(2*time.Hour))

	t.Run("search quét cả description", func(t *testing.T) {
		// khác trang chủ: cùng từ khoá nhưng trang danh sách tìm thấy
		page, err := VacancyListing(db, "kiểm thử", 1)
		require.NoError(t, err)
		require.Equal(t, []string{"Tester"}, titlesOf(page.Items))
	})

	t.Run("tin chưa duyệt không xuất hiện dù khớp search", func(t *testing.T) {
		page, err := VacancyListing(db, "backend", 1)
		require.NoError(t, err)
		require.Equal(t, []string{"Tester"}, titlesOf(page.Items))
	})

	t.Run("cỡ trang riêng của trang danh sách", func(t *testing.T) {
		page, err := VacancyListing(db, "", 1)
		require.NoError(t, err)
		require.Equal(t, 2, page.Size)
		require.Len(t, page.Items, 2)
	})
}

func TestListFilterOptions(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()

	createListedVacancy(t, db, "A", "X", "d", models.StatusPublished, "1000", "1", now)
	createListedVacancy(t, db, "B", "Y", "d", models.StatusPublished, "2000", "", now)
	createListedVacancy(t, db, "C", "Z", "d", models.StatusPublished, "1000", "3", now)
	createListedVacancy(t, db, "D", "W", "d", models.StatusModeration, "5000", "5", now)

	opts, err := ListFilterOptions(db)
	require.NoError(t, err)
	// distinct, sắp xếp, bỏ null/rỗng, chỉ tính tin đã đăng
	require.Equal(t, []string{"1000", "2000"}, opts.Salaries)
	require.Equal(t, []string{"1", "3"}, opts.Experiences)
}

func TestModerationScenario(t *testing.T) {
	// Kịch bản đầy đủ: gửi tin -> ẩn khi chờ duyệt -> admin duyệt -> hiển thị
	db := setupTestDB(t)
	user := createTestUser(t, db, "u-cook")

	salary := "800"
	v, err := SubmitVacancy(db, VacancyInput{
		Title:       "Cook",
		Description: "Nấu ăn ca sáng",
		Company:     "Cafe X",
		Salary:      &salary,
	}, user.ID)
	require.NoError(t, err)

	home, err := HomeListing(db, HomeFilter{}, 1)
	require.NoError(t, err)
	require.Empty(t, home.Items)

	list, err := VacancyListing(db, "", 1)
	require.NoError(t, err)
	require.Empty(t, list.Items)

	updated, err := BulkSetStatus(db, []uuid.UUID{v.ID}, models.StatusPublished)
	require.NoError(t, err)
	require.EqualValues(t, 1, updated)

	home, err = HomeListing(db, HomeFilter{}, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Cook"}, titlesOf(home.Items))

	list, err = VacancyListing(db, "", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Cook"}, titlesOf(list.Items))
}

func TestJobListing(t *testing.T) {
	db := setupTestDB(t)

	category := models.Category{Name: "Nhà hàng"}
	require.NoError(t, db.Create(&category).Error)

	jobs := []models.Job{
		{Title: "Phục vụ bàn", CategoryID: category.ID, Company: "A", Salary: "500"},
		{Title: "Đầu bếp chính", CategoryID: category.ID, Company: "B", Salary: "900"},
		{Title: "Phụ bếp", CategoryID: category.ID, Company: "C", Salary: "500"},
	}
	for i := range jobs {
		require.NoError(t, db.Create(&jobs[i]).Error)
	}

	t.Run("lọc theo tiêu đề không phân biệt hoa thường", func(t *testing.T) {
		got, _, err := JobListing(db, "BẾP")
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("salary distinct và sắp xếp", func(t *testing.T) {
		_, salaries, err := JobListing(db, "")
		require.NoError(t, err)
		require.Equal(t, []string{"500", "900"}, salaries)
	})
}
