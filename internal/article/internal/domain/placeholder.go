package domain

import (
	"math/rand"
	"strings"
)

// 抓不到可用配图时按类目兜底
var placeholderImages = map[string][]string{
	"career_clarity": {
		"https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=800",
		"https://images.unsplash.com/photo-1521791136064-7986c2920216?w=800",
		"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800",
	},
	"work_life_balance": {
		"https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800",
		"https://images.unsplash.com/photo-1499209974431-9dddcece7f88?w=800",
		"https://images.unsplash.com/photo-1545205597-3d9d02c29597?w=800",
	},
	"leadership": {
		"https://images.unsplash.com/photo-1552664730-d307ca884978?w=800",
		"https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=800",
		"https://images.unsplash.com/photo-1557804506-669a67965ba0?w=800",
	},
	"confidence": {
		"https://images.unsplash.com/photo-1519834785169-98be25ec3f84?w=800",
		"https://images.unsplash.com/photo-1508558936510-0af1e3cccbab?w=800",
	},
	"job_search": {
		"https://images.unsplash.com/photo-1586281380349-632531db7ed4?w=800",
		"https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=800",
	},
	"growth": {
		"https://images.unsplash.com/photo-1457369804613-52c61a468e7d?w=800",
		"https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=800",
	},
}

var defaultPlaceholders = []string{
	"https://images.unsplash.com/photo-1497032628192-86f99bcd76bc?w=800",
	"https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=800",
}

var logoPatterns = []string{"logo", "sprite", "favicon", "brandmark"}

// NeedsPlaceholder 判定抓取到的图是否不可用：
// 空的、站点 logo、或者矢量图标
func NeedsPlaceholder(imageURL string) bool {
	u := strings.ToLower(strings.TrimSpace(imageURL))
	if u == "" {
		return true
	}
	for _, p := range logoPatterns {
		if strings.Contains(u, p) {
			return true
		}
	}
	return strings.HasSuffix(u, ".svg")
}

// PlaceholderFor 从类目的兜底图里伪随机选一张，类目不认识就用默认组。
// rand 由调用方注入，测试里固定种子保证可复现。
func PlaceholderFor(category string, r *rand.Rand) string {
	imgs, ok := placeholderImages[category]
	if !ok || len(imgs) == 0 {
		imgs = defaultPlaceholders
	}
	return imgs[r.Intn(len(imgs))]
}

// PlaceholderSet 给测试用，返回某个类目的全部兜底图
func PlaceholderSet(category string) []string {
	imgs, ok := placeholderImages[category]
	if !ok {
		return defaultPlaceholders
	}
	return imgs
}
