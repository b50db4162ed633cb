package web

import (
	"time"

	"github.com/ecodeclub/careerhub/internal/article"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/domain"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/service"
	"github.com/ecodeclub/ekit/slice"
)

type SubmitReq struct {
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Scores []CategoryScore `json:"scores"`
}

type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

type AssessmentResult struct {
	Id              int64           `json:"id"`
	Token           string          `json:"token"`
	Name            string          `json:"name,omitempty"`
	Email           string          `json:"email"`
	Scores          []CategoryScore `json:"scores"`
	SubmittedAt     string          `json:"submittedAt,omitempty"`
	Recommendations []Article       `json:"recommendations"`
}

// Article 推荐文章摘要，字段和文章模块的对外口径保持一致
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

func newResult(res service.Result) AssessmentResult {
	a := res.Assessment
	vo := AssessmentResult{
		Id:    a.Id,
		Token: a.Token,
		Name:  a.Name,
		Email: a.Email,
		Scores: slice.Map(a.Scores, func(_ int, src domain.CategoryScore) CategoryScore {
			return CategoryScore{Category: src.Category, Score: src.Score}
		}),
		Recommendations: slice.Map(res.Recommendations, func(_ int, src article.Article) Article {
			return newArticle(src)
		}),
	}
	if !a.Ctime.IsZero() {
		vo.SubmittedAt = a.Ctime.Format(time.DateTime)
	}
	return vo
}

func newArticle(art article.Article) Article {
	category := art.Category
	if cat, ok := article.CategoryOf(art.Category); ok {
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
