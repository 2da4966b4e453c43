package seed

import (
	"encoding/json"

	"github.com/hoanvukhai/cafe-shop-management/internal/recipe"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func jsonStrings(values []string) datatypes.JSON {
	if len(values) == 0 {
		return nil
	}
	b, _ := json.Marshal(values)
	return b
}

// seedRecipes nạp bộ công thức quầy bar đang dùng. Các món chưa có
// công thức ở đây bổ sung dần qua PUT /recipes.
func seedRecipes(db *gorm.DB) error {
	rows := recipeRows()
	return insertIgnoreDuplicates(db, &rows)
}

func seedPrepInstructions(db *gorm.DB) error {
	rows := prepInstructionRows()
	return insertIgnoreDuplicates(db, &rows)
}

func recipeRows() []recipe.Recipe {
	type row struct {
		menuItemID   string
		name         string
		steps        []string
		servingTools []string
		notes        string
	}
	rows := []row{
		{
			menuItemID: "coffee_001",
			name:       "Đen phin",
			steps: []string{
				"Làm nóng phin",
				"Cho 20g cà phê vào phin",
				"Lần 1 rót 30ml nước sôi vào nắp bên dưới và rót nhẹ vào phin",
				"Chuẩn bị tách, đĩa lót tách, thìa, đường và đặt phin lên tách",
				"Lần 2 rót nốt 50ml nước sôi vào phin",
			},
			servingTools: []string{"Thìa cà phê"},
			notes:        "Tỉ lệ 1:4",
		},
		{
			menuItemID: "coffee_002",
			name:       "Nâu phin",
			steps: []string{
				"Làm nóng phin",
				"Cho 20g cà phê vào phin",
				"Lần 1 lấy 30ml nước sôi rót vào nắp bên dưới và rót nhẹ vào phin",
				"Chuẩn bị tách, đĩa lót tách, thìa (đặt song song quai tách)",
				"Bơm 1,5 bơm (15ml) sữa đặc vào tách và đặt phin lên tách",
				"Lần 2 rót nốt 50ml nước sôi vào phin (rót nhẹ tưới xung quanh)",
			},
			servingTools: []string{"Thìa cà phê"},
			notes:        "Tỉ lệ 1:4",
		},
		{
			menuItemID: "coffee_003",
			name:       "Bạc xỉu",
			steps: []string{
				"1. sz 350ml",
				"10ml Rich",
				"30 sữa đặc",
				"50 sữa tươi",
				"130 sữa nhỏ",
				"35-40 cafe đánh bọt đổ lên thìa",
				"2. sr 500ml",
				"40 sữa đặc",
				"50 sữa tươi",
				"250 đá viên nhỏ",
				"50 cafe đánh bọt",
				"Đổ lên cốc",
			},
			servingTools: []string{"Thìa", "Ống hút"},
		},
		{
			menuItemID: "coffee_004",
			name:       "Cà phê kem muối",
			steps: []string{
				"1. Cách cũ",
				"Lấy cốc phục vụ cà phê kem muối",
				"Rót 50ml cà phê",
				"Bơm 2 bơm sữa đặc (20ml)",
				"Khuấy đều",
				"Cho đá nửa ly",
				"Chuẩn bị ca đánh cho vào gồm: 30ml Rich lùn, 10ml sữa tươi, 0,03 gr muối",
				"Lấy cây đánh bọt đánh bông mịn",
				"Rót phần kem muối lên trên",
				"Rắc bột ca cao",
				"2. Cách mới",
				"Cốc 350ml",
				"35 sữa đặc",
				"45 cafe => đánh bông",
				"Đá đầy ly",
				"50 kem mặn + bột cacao",
			},
			servingTools: []string{"Thìa", "Ống hút"},
		},
		{
			menuItemID: "coffee_005",
			name:       "Cà phê kem trứng",
			steps: []string{
				"Lấy cốc phục vụ cà phê kem trứng",
				"Rót 60ml cà phê",
				"Bơm 2 bơm sữa đặc (20ml)",
				"Khuấy đều",
				"Cho đá nửa ly",
				"Rót 40ml/gr kem trứng đã được đánh sẵn lên",
				"Rắc bột ca cao",
			},
			servingTools: []string{"Thìa", "Ống hút"},
		},
		{
			menuItemID: "coffee_006",
			name:       "Đen máy",
			steps: []string{
				"Lấy tay đơn, xay cà phê, nén",
				"Xả nước, lắp tay đơn vào máy",
				"Lấy tách hoặc ca đong",
				"Chiết xuất lấy 30ml cà phê",
				"Đen máy đá: Cho vào cốc đá, thêm 150ml nước lọc",
				"Đen máy nóng: Phục vụ trong tách nóng",
			},
			servingTools: []string{"Thìa cà phê (nóng)", "Ống hút (đá)"},
		},
		{
			menuItemID: "coffee_007",
			name:       "Espresso",
			steps: []string{
				"Lấy tay đơn, xay cà phê, nén",
				"Xả nước, lắp tay đơn vào máy",
				"Lấy tách hoặc ca đong",
				"Chiết xuất lấy 30ml cà phê",
				"Espresso: Phục vụ trực tiếp trong tách",
			},
			servingTools: []string{"Tách, đĩa lót, thìa cà phê", "1 gói đường"},
		},
		{
			menuItemID: "coffee_008",
			name:       "Americano",
			steps: []string{
				"Lấy tay đơn, xay cà phê, nén",
				"Xả nước, lắp tay đơn vào máy",
				"Lấy tách hoặc ca đong",
				"Chiết xuất lấy 30ml cà phê",
				"Americano đá: Cho vào cốc đá, thêm 250ml nước lọc",
				"Americano nóng: Thêm 150ml nước nóng vào tách",
			},
			servingTools: []string{
				"Tách, đĩa lót, thìa cà phê (Americano nóng)",
				"Ống hút (Americano đá)",
				"1 gói đường",
			},
		},
		{
			menuItemID: "coffee_009",
			name:       "Nâu máy",
			steps: []string{
				"Lấy tay đôi, xay cà phê, nén",
				"Xả nước, lắp tay đôi vào máy",
				"Lấy ca đong",
				"Chiết xuất lấy 60ml cà phê",
				"đá: 15 – 20 sữa đặc vào ly, 60ml cafe chắt thẳng vào ly",
				"nóng: 60ml cafe làm nguội, 15-20 sữa đặc, Đá viên lên trên",
			},
			servingTools: []string{"Ống hút (đá)", "Thìa cà phê (nóng)", "1 gói đường", "Phục vụ lót đĩa + thìa"},
		},
		{
			menuItemID: "coffee_010",
			name:       "Café Mocha",
			steps: []string{
				"Nóng: Lấy tay đơn, xay cà phê, nén",
				"Xả nước, lắp tay đơn vào máy",
				"Lấy tách",
				"Chiết xuất lấy 30ml cà phê",
				"Rót 15ml sauce Chocolate vào tách",
				"Khuấy",
				"Lấy 120ml sữa tươi, đánh nóng bằng vòi sữa rót vào tách cà phê",
				"Rắc bột cacao lên trên cùng",
				"Đá: 30ml socola xốt, 20ml đường, đá đầy ly, sữa tươi đến vạch đầu ly, chiết xuất 60ml cà phê đổ lên trên cùng",
			},
			servingTools: []string{"Thìa cà phê (nóng)", "Ống hút (đá)"},
		},
		{
			menuItemID: "coffee_011",
			name:       "Café Latte",
			steps: []string{
				"Lấy tay đơn, xay cà phê, nén",
				"Xả nước, lắp tay đơn vào máy",
				"Lấy tách",
				"Chiết xuất lấy 30ml cà phê",
				"Lấy 120ml sữa tươi, đánh nóng bằng vòi sữa rót vào tách cà phê",
				"Đá: Lấy 120ml sữa tươi, 20ml sữa đặc, đá đầy ly, chiết xuất 60ml cà phê đổ lên trên",
			},
			servingTools: []string{"Thìa cà phê (nóng)", "Ống hút (đá)", "1 gói đường"},
		},
		{
			menuItemID: "coffee_012",
			name:       "Café Cappuccino",
			steps: []string{
				"Lấy tay đơn, xay cà phê, nén",
				"Xả nước, lắp tay đơn vào máy",
				"Lấy tách",
				"Chiết xuất lấy 30ml cà phê",
				"Lấy 120ml sữa tươi, đánh nóng bằng vòi sữa rót vào tách cà phê",
				"Đá: 60 cafe máy(làm nguội), 120 sữa tươi lắc đều, 70 đá viên nhỏ lắc đều, Vào cốc với đổ cafe lên, Kèm thêm đường – lót đĩa",
				"Nóng: 30ml cafe máy, 120ml sữa tươi, đánh nóng rót vào ly tạo hình",
			},
			servingTools: []string{"Thìa cà phê (nóng)", "Ống hút (đá)", "1 gói đường", "Lót đĩa"},
		},
		{
			menuItemID: "coffee_013",
			name:       "Café Kem",
			steps: []string{
				"Lấy tay đôi, xay cà phê, nén",
				"Xả nước, lắp tay đôi vào máy",
				"Chiết xuất lấy 60ml cà phê",
				"Cho vào cốc đá, thêm 20ml sữa đặc, khuấy đều",
				"Thêm 1 viên kem vani (60gr) lên trên",
				"Rắc bột cacao",
			},
			servingTools: []string{"Thìa", "Ống hút"},
		},
		{
			menuItemID: "milk_tea_001",
			name:       "Trà sữa Thái xanh",
			steps: []string{
				"Múc 1 thìa trân châu (40gr)",
				"Cho đá",
				"Rót cốt trà Thái",
				"Rót kem trứng lên trên cùng",
			},
			servingTools: []string{"Ống hút to"},
			notes:        "Dùng cốc size M hoặc cốc thủy tinh có quai",
		},
		{
			menuItemID: "matcha_001",
			name:       "Trà sữa matcha",
			steps: []string{
				"40g trân châu",
				"Đá",
				"150ml ôlong lài sữa",
				"2g matcha và 60ml nước sôi",
				"Đổ matcha lên trên",
			},
			servingTools: []string{"Ống hút to"},
			notes:        "cốc thủy tinh có quai",
		},
		{
			menuItemID: "yogurt_001",
			name:       "Sữa chua lắc đá",
			steps: []string{
				"1 hộp sữa chua",
				"10 rích 20 sữa đặc",
				"20 sữa đặc",
				"50 sữa tươi",
				"10 chanh hoặc tắc",
				"Đá hoặc đến vạch 400ml",
				"Deco ra cốc 1 lát chanh",
			},
			servingTools: []string{"Ống hút to"},
		},
		{
			menuItemID: "blended_001",
			name:       "Oreo đá xay",
			steps: []string{
				"3 bánh oreo",
				"50 sữa đặc",
				"50 sữa tươi",
				"20 rích",
				"10 socola",
				"220 đá",
				"Socola quanh cốc",
				"Deco: (kem tươi) Vụn bánh, bột cacao",
			},
			servingTools: []string{"Ống hút to"},
		},
		{
			menuItemID: "fruit_tea_005",
			name:       "Trà đào cam sả",
			steps: []string{
				"Rót 150ml cốt trà đào",
				"Vắt 3 trái tắc (10ml)",
				"Cho thêm 30ml đường nước (3 bơm)",
				"20ml siro sả",
				"30ml mứt đào",
				"Cho thêm đá đến vạch 400ml lắc đều",
				"Cắt 1 lát cam làm đôi, 1 nửa miếng cho xuống đáy cốc dằm nhuyễn, nửa miếng còn lại để trang trí lên trên",
				"Décor: 3 miếng đào ngâm, sả và cam",
			},
			servingTools: []string{"Ống hút to", "Thìa"},
			notes:        "Dùng cốc size M hoặc cốc thủy tinh có quai",
		},
		{
			menuItemID: "smoothie_002",
			name:       "Sinh tố xoài",
			steps: []string{
				"80gr xoài",
				"30ml sữa đặc",
				"20ml đường",
				"20ml Rich lùn",
				"150ml nước lọc",
				"Xíu muối",
				"8gr bột kem béo",
				"Đá",
			},
			servingTools: []string{"Ống hút to"},
		},
		{
			menuItemID: "hot_drinks_001",
			name:       "Trà Thái Nguyên",
			steps: []string{
				"Cho 10gr trà vào ấm",
				"Rót nước sôi, tráng trà, đổ nước đầu",
				"Rót đầy ấm và phục vụ kèm tách",
			},
			servingTools: []string{"Tách"},
		},
	}

	var out []recipe.Recipe
	for _, r := range rows {
		out = append(out, recipe.Recipe{
			MenuItemID:   r.menuItemID,
			Name:         r.name,
			Steps:        jsonStrings(r.steps),
			ServingTools: jsonStrings(r.servingTools),
			Notes:        r.notes,
		})
	}
	return out
}

func prepInstructionRows() []recipe.PrepInstruction {
	type row struct {
		key         string
		name        string
		ingredients []string
		equipment   []string
		steps       []string
		yield       string
		notes       string
	}
	rows := []row{
		{
			key:         "sugar_syrup",
			name:        "Đường nước",
			ingredients: []string{"1kg đường cát", "600ml nước sôi"},
			steps: []string{
				"Cho đường và nước sôi vào trong ca và khuấy tan đến khi hỗn hợp nước đường tan hết và màu trong là được",
				"Bảo quản ở nhiệt độ thường hoặc trong tủ mát",
			},
			yield: "1200ml",
		},
		{
			key:  "large_phin_coffee",
			name: "Pha phin lớn",
			ingredients: []string{
				"Bộ phin lớn",
				"150gr cà phê bột xay sẵn",
				"Ca nhựa 1.5lit",
				"600ml nước sôi",
			},
			steps: []string{
				"Tỉ lệ nước 1:4 [1 lần cà phê 4 lần nước]",
				"Cho 150 gram bột cà phê vào phin và lắc nhẹ để dàn phẳng bề mặt",
				"Rót vào 200ml nước sôi (98 độ C) để cà phê hút ngược hết nước, đặt đế vào miệng ca nhựa sau đó đặt phin cà phê sau khi nước dưới nắp đã được hút hết",
				"Đun sôi lại nước rót vào trong phin 200ml nước sôi theo hình xoắn trôn ốc đậy nắp để ủ cà phê 3 phút – 5 phút",
				"Đun sôi lại nước và châm tiếp 200ml nước là vừa sau đó đậy nắp và chờ cà phê nhỏ giọt, kiểm soát tốc độ chảy của cà phê khoảng 1 giây 1 giọt",
				"Theo dõi dòng chảy của cà phê sao cho cà phê chảy trong khoảng 20 phút – 25 phút. Sau khi cà phê chiết xuất xong đổ vào chai bảo quản",
			},
			yield: "gần 400ml",
		},
		{
			key:         "peach_tea_base",
			name:        "Nước cốt trà đào",
			ingredients: []string{"1 gói trà đào", "600ml nước sôi", "300gr đá viên"},
			equipment:   []string{"Bình giữ nhiệt trà/ ca nhựa", "Bar spoon", "Kẹp inox"},
			steps: []string{
				"Cho túi trà đào vào bình giữ nhiệt",
				"Rót nước sôi vào bình theo định lượng",
				"Ủ trà trong 15 phút sau đó vớt túi trà ra",
				"Cho đá vào sóc nhiệt trà và khuấy tan",
			},
			notes: "Có thể tăng định lượng",
		},
		{
			key:         "jasmine_tea_base",
			name:        "Nước cốt trà lài",
			ingredients: []string{"1 gói trà lài", "1000ml nước sôi", "300gr đá viên"},
			equipment:   []string{"Bình giữ nhiệt trà/ ca nhựa", "Bar spoon", "Kẹp inox"},
			steps: []string{
				"Cho túi trà lài vào bình giữ nhiệt",
				"Rót nước sôi vào bình theo định lượng",
				"Ủ trà trong 15 phút sau đó vớt túi trà ra",
				"Cho đá vào sóc nhiệt trà và khuấy tan",
			},
			yield: "1200ml",
			notes: "Có thể tăng định lượng",
		},
		{
			key:  "oolong_jasmine_milk_tea",
			name: "Trà ôlong lài sữa",
			ingredients: []string{
				"25gr trà Ôlong",
				"1 túi trà nhài",
				"1600ml nước sôi",
				"150gr bột sữa",
				"50gr bột đá xay",
				"250gr đường cát trắng",
			},
			equipment: []string{"Ca nhựa", "Cây khuấy", "Túi lọc trà", "Kẹp inox"},
			steps: []string{
				"Cho 2 loại trà vào ca nhựa, rót nước sôi",
				"Ủ trà trong 15 phút sau đó vớt túi trà ra",
				"Cho bột sữa, bột đá xay, đường cát theo định lượng vào nồi cốt trà khuấy tan",
				"Để nguội hỗn hợp trà sữa sau đó đổ ra bình nhựa cất vào tủ lạnh",
			},
			yield: "1700ml",
		},
		{
			key:  "thai_green_milk_tea",
			name: "Trà sữa Thái xanh",
			ingredients: []string{
				"25gr trà Thái xanh",
				"1 túi trà nhài",
				"1600ml nước sôi",
				"150gr bột sữa",
				"50gr bột đá xay",
				"250gr đường cát trắng",
			},
			equipment: []string{"Ca nhựa", "Cây khuấy", "Túi lọc trà", "Kẹp inox"},
			steps: []string{
				"Cho 2 loại trà vào ca nhựa, rót nước sôi",
				"Ủ trà trong 15 phút sau đó vớt túi trà ra, dùng kẹp ép hết nước cốt từ túi lọc trà",
				"Cho bột sữa, bột đá xay, đường cát theo định lượng vào nồi cốt trà khuấy tan",
				"Để nguội hỗn hợp trà sữa sau đó đổ ra bình nhựa cất vào tủ lạnh",
			},
			yield: "1700ml",
		},
		{
			key:  "egg_cream",
			name: "Kem trứng",
			ingredients: []string{
				"100ml kem béo Rich lùn",
				"200ml sữa tươi",
				"30gr bột đá xay",
				"60gr bột trứng",
				"30gr đường cát trắng",
			},
			equipment: []string{"Máy đánh trứng", "Ca nhựa 1lit"},
			steps: []string{
				"Cho tất cả các nguyên liệu theo định lượng vào ca",
				"Dùng máy đánh trứng đánh bông hỗn hợp tốc độ từ chậm cho đến nhanh kéo dài trong 3 phút",
			},
		},
		{
			key:  "mixed_fruit",
			name: "Trái cây hỗn hợp",
			ingredients: []string{
				"600gr dứa",
				"600gr xoài chín vàng",
				"250gr tắc",
				"500gr cam vàng",
				"250gr ruột chanh dây",
				"250gr dâu tây",
				"250gr dưa lưới",
				"200ml nước cam sành",
				"50ml chanh tươi",
				"600gr đường cát trắng",
				"2gr muối",
			},
			steps: []string{
				"Rửa sạch tắc tươi, cam vàng để ráo nước hoặc dùng khăn giấy thấm khô",
				"Dứa gọt bỏ mắt, xoài chín gọt vỏ",
				"Cam sành vắt lấy nước, chanh dây cắt lấy ruột bên trong, các trái cây khác cắt tam giác hoặc hạt lựu độ dày 1.5cm, tắc tươi cắt đôi bỏ hạt",
				"Cho hết các loại trái cây đã cắt vào hộp chứa sau đó cân 500gr đường rải đều, một ít muối và đảo cho trái cây thấm đường để ướp 15 phút",
				"Cho vào máy xay sinh tố 100gr xoài 100gr dứa 200ml nước cam sành xay nhuyễn",
				"Cho vào nồi hỗn hợp vừa xay và chanh dây, nước cốt chanh, 100gr đường đun sôi hỗn hợp sau đó đổ hỗn hợp vừa nấu vào trong hộp chứa trái cây đang ướp",
				"Để nguội và tiếp tục đảo đều, đậy nắp và bảo quản trong tủ mát",
			},
			notes: "Ngâm trái cây trước 4 tiếng hoặc qua đêm sau đó mới lấy ra bán chất lượng",
		},
	}

	var out []recipe.PrepInstruction
	for _, r := range rows {
		out = append(out, recipe.PrepInstruction{
			Key:         r.key,
			Name:        r.name,
			Ingredients: jsonStrings(r.ingredients),
			Equipment:   jsonStrings(r.equipment),
			Steps:       jsonStrings(r.steps),
			Yield:       r.yield,
			Notes:       r.notes,
		})
	}
	return out
}
