package web

import (
	"time"

	"github.com/ecodeclub/careerhub/internal/article/internal/domain"
)

// Article 对外只给摘要信息，不带正文
type Article struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Author      string   `json:"author,omitempty"`
	ReadTime    int      `json:"readTime"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

type ArticleList struct {
	Articles []Article `json:"articles"`
}

type TrackClickReq struct {
	ArticleId int64 `json:"articleId"`
}

type TrackClickResp struct {
	Success bool `json:"success"`
}

type ScrapeResp struct {
	ArticlesProcessed int `json:"articlesProcessed"`
}

type DeployHookResp struct {
	Skipped           bool `json:"skipped,omitempty"`
	ArticlesProcessed int  `json:"articlesProcessed"`
}

func newArticle(art domain.Article) Article {
	category := art.Category
	if cat, ok := domain.CategoryOf(art.Category); ok {
		// 对外统一用展示叫法
		category = cat.Display
	}
	res := Article{
		ID:       art.Id,
		Title:    art.Title,
		Category: category,
		Summary:  art.Summary,
		ImageURL: art.ImageURL,
		Tags:     art.Tags,
		Author:   art.Author,
		ReadTime: art.ReadTime,
		URL:      art.SourceURL,
	}
	if !art.PublishedAt.IsZero() {
		res.PublishedAt = art.PublishedAt.Format(time.DateTime)
	}
	return res
}
