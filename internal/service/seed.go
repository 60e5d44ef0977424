package service

import "github.com/ttguo7/kid-activity-platform/internal/domain"

// SeedActivities 返回内置的示例活动列表。
// 每次调用返回新的切片，调用方可以安全地修改（例如补时间戳）。
func SeedActivities() []domain.Document {
	return []domain.Document{
		{
			Title: "Bellevue Family 4th - 独立日庆典",
			Description: `贝尔维尤家庭独立日庆典是东区最大的独立日庆祝活动！每年7月4日在贝尔维尤市中心公园举行，活动包括：

🎵 现场音乐表演
🎪 家庭娱乐活动
🎨 各种趣味互动项目
🎆 壮观的烟花表演

这是一个适合全家参与的盛大节日庆典，为孩子们创造难忘的独立日回忆！`,
			Date:     "2025-07-04",
			Location: "Bellevue Downtown Park, Bellevue, WA",
			AgeRange: "全年龄段",
			Price:    0,
			Images:   []string{"https://www.bellevuedowntown.com/bellevue-family-4th"},
			Category: "节日庆典",
			Status:   domain.StatusActive,
		},
		{
			Title: "Bellevue Arts Fair Weekend - 艺术博览会",
			Description: `贝尔维尤艺术博览周末是一个为期三天的艺术盛会！

🎨 汇集350多位艺术家
🖼️ 展示超过20种艺术形式的手工艺品
🎭 现场表演和互动艺术项目
🍔 美食车和特色小吃

这是一个充满创意和艺术氛围的周末活动，让孩子们接触各种艺术形式，激发创造力和艺术欣赏能力。适合全家一起探索艺术的魅力！`,
			Date:     "2025-07-25",
			Location: "Bellevue Downtown, Bellevue, WA",
			AgeRange: "全年龄段",
			Price:    0,
			Images:   []string{"https://www.bellevueartsfair.com/"},
			Category: "艺术文化",
			Status:   domain.StatusActive,
		},
		{
			Title: "Bellevue Downtown Ice Rink - 市中心溜冰场",
			Description: `贝尔维尤市中心溜冰场由Symetra公司赞助，是西雅图地区最大的露天溜冰场！

⛸️ 9,000平方英尺的真冰场地
🎓 免费滑冰课程
🎉 主题滑冰之夜
🍿 现场小吃和热饮

溜冰场每年11月下旬至次年1月中旬开放，是冬季最受欢迎的亲子活动之一。无论是初学者还是滑冰高手，都能在这里找到乐趣！`,
			Date:     "2024-11-23",
			Location: "Bellevue Downtown Park Plaza, Bellevue, WA",
			AgeRange: "5岁以上",
			Price:    0,
			Images:   []string{"https://www.bellevuedowntown.com/do/bellevue-downtown-ice-rink-presented-by-symetra"},
			Category: "户外运动",
			Status:   domain.StatusActive,
		},
	}
}
