package seed

import (
	"github.com/hoanvukhai/cafe-shop-management/internal/task"

	"gorm.io/gorm"
)

// seedTasks chỉ nạp khi bảng còn trống: task dùng khóa tự tăng nên
// ON CONFLICT không chặn được trùng lặp khi chạy lại.
func seedTasks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&task.Task{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	rows := taskRows()
	return db.Create(&rows).Error
}

func taskRows() []task.Task {
	morning := []string{
		"Mở cửa chính, cửa quầy bar, bật đèn, bật máy pha cà phê, bật bình đun nước.",
		"Kiểm tra điện các tủ lạnh, tủ đông xem tình trạng hoạt động.",
		"Kiểm hàng hóa, hoa quả (còn/ hết/ chất lượng).",
		"Kê xếp bàn ghế ngay ngắn theo đúng sơ đồ.",
		"Lau cửa kính.",
		"Lau bàn, ghế - quét nền - dọn toàn bộ khu vực bán hàng.",
		"Kiểm tiền vốn để lại từ hôm trước.",
		"Luôn chủ động nhận biết khách vào để chào đón tiếp và phục vụ bán hàng.",
		"Kiểm tra hàng bán, vật dụng, vật tư để yêu cầu nhập hàng.",
		"Dọn dẹp quầy, khu vực bán hàng sạch sẽ, rửa hết cốc bẩn.",
		"Làm thủ tục bàn giao ca, tiền thu được trong ca và tiền vốn.",
		"Bật nhạc cho khách trong quán.",
	}
	afternoon := []string{
		"Nhận bàn giao ca sau khi đã được vệ sinh khu vực làm việc sạch sẽ.",
		"Thực hiện các mục công việc như của ca sáng.",
		"Kiểm hàng hóa, hoa quả (còn/ hết/ chất lượng).",
		"Luôn chủ động nhận biết khách vào để chào đón tiếp và phục vụ bán hàng.",
		"Làm quy trình đóng cửa.",
		"Kiểm tra hàng bán, vật dụng, vật tư để yêu cầu nhập hàng.",
		"Rửa các dụng cụ pha chế: Cốc tách, bình lắc, máy xay, máy ép, máy pha cà phê.",
		"Tắt máy pha cà phê.",
		"Đánh bồn rửa cốc.",
		"Sắp xếp gọn đồ trong tủ lạnh.",
		"Quét và lau quầy.",
		"Cất đá vào tủ lạnh nếu còn.",
		"Kiểm tra tình trạng hoạt động các tủ lạnh, kem.",
		"Bàn giao tiền thu được trong ngày cho chủ quán.",
		"Bật nhạc cho khách trong quán.",
	}
	weekly := []struct {
		description   string
		frequencyDays int
	}{
		{"Dọn tủ đông, tủ lạnh 1 tuần 1 lần.", 7},
		{"Tưới cây 1 tuần 2 lần.", 3},
		{"Lau lá cây 1 tuần 1 lần.", 7},
	}

	var rows []task.Task
	for i, d := range morning {
		rows = append(rows, task.Task{Description: d, Section: task.SectionMorning, SortOrder: i + 1})
	}
	for i, d := range afternoon {
		rows = append(rows, task.Task{Description: d, Section: task.SectionAfternoon, SortOrder: i + 1})
	}
	for i, w := range weekly {
		rows = append(rows, task.Task{
			Description:   w.description,
			Section:       task.SectionWeekly,
			FrequencyDays: w.frequencyDays,
			SortOrder:     i + 1,
		})
	}
	return rows
}
