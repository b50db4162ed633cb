package domain

import "time"

type Article struct {
	Id             int64
	Title          string
	Category       string
	Summary        string
	// 原文的 HTML 片段
	Content        string
	ImageURL       string
	Tags           []string
	Author         string
	// 预计阅读时长，分钟
	ReadTime       int
	RelevanceScore float64
	ViewCnt        int64
	ClickCnt       int64
	Status         ArticleStatus
	SourceURL      string
	PublishedAt    time.Time
	Ctime          time.Time
	Utime          time.Time
}

// PlaceholderTag 标记图片是兜底图，不是抓取到的原图
const PlaceholderTag = "placeholder_image"

type ArticleStatus uint8

const (
	ArticleStatusUnknown ArticleStatus = iota
	ArticleStatusActive
	ArticleStatusInactive
)

func (s ArticleStatus) ToUint8() uint8 {
	return uint8(s)
}
