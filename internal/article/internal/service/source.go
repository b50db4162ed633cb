// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ecodeclub/careerhub/internal/article/internal/domain"
)

// Source 一个外部内容源。Category 用的是源站自己的类目叫法，
// 入库前再统一映射成内部类目。
type Source struct {
	Name     string
	URL      string
	Category string
	Parse    ParseFunc
}

type ParseFunc func(doc *goquery.Document, src Source) []domain.Article

func builtinSources() []Source {
	return []Source{
		{
			Name:     "themuse",
			URL:      "https://www.themuse.com/advice",
			Category: "career-advice",
			Parse:    parseMuse,
		},
		{
			Name:     "mindtools",
			URL:      "https://www.mindtools.com/blog",
			Category: "management",
			Parse:    parseMindTools,
		},
		{
			Name:     "lifehack",
			URL:      "https://www.lifehack.org/articles/work",
			Category: "wellbeing",
			Parse:    parseLifehack,
		},
	}
}

func parseMuse(doc *goquery.Document, src Source) []domain.Article {
	var res []domain.Article
	doc.Find("article.advice-card").Each(func(i int, s *goquery.Selection) {
		link, _ := s.Find("a.advice-card__link").Attr("href")
		title := strings.TrimSpace(s.Find("h2, h3").First().Text())
		if title == "" || link == "" {
			return
		}
		img, _ := s.Find("img").First().Attr("src")
		art := domain.Article{
			Title:       title,
			Category:    attrOr(s, "data-topic", src.Category),
			Summary:     strings.TrimSpace(s.Find("p.advice-card__excerpt").Text()),
			Content:     innerHTML(s.Find("div.advice-card__body")),
			ImageURL:    img,
			Author:      strings.TrimSpace(s.Find(".advice-card__author").Text()),
			Tags:        extractTags(s, "a.tag"),
			SourceURL:   absoluteURL(src.URL, link),
			PublishedAt: parseTime(s.Find("time").AttrOr("datetime", "")),
		}
		art.ReadTime = estimateReadTime(art.Summary + " " + art.Content)
		res = append(res, art)
	})
	return res
}

func parseMindTools(doc *goquery.Document, src Source) []domain.Article {
	var res []domain.Article
	doc.Find("div.post-listing article").Each(func(i int, s *goquery.Selection) {
		a := s.Find("h2 a").First()
		title := strings.TrimSpace(a.Text())
		link, _ := a.Attr("href")
		if title == "" || link == "" {
			return
		}
		img, _ := s.Find("img.featured").Attr("src")
		art := domain.Article{
			Title:       title,
			Category:    attrOr(s, "data-category", src.Category),
			Summary:     strings.TrimSpace(s.Find("div.entry-summary").Text()),
			Content:     innerHTML(s.Find("div.entry-content")),
			ImageURL:    img,
			Author:      strings.TrimSpace(s.Find("span.author").Text()),
			Tags:        extractTags(s, "a[rel=tag]"),
			SourceURL:   absoluteURL(src.URL, link),
			PublishedAt: parseTime(s.Find("time.published").AttrOr("datetime", "")),
		}
		art.ReadTime = estimateReadTime(art.Summary + " " + art.Content)
		res = append(res, art)
	})
	return res
}

func parseLifehack(doc *goquery.Document, src Source) []domain.Article {
	var res []domain.Article
	doc.Find("li.post-item").Each(func(i int, s *goquery.Selection) {
		a := s.Find("a.post-item__title").First()
		title := strings.TrimSpace(a.Text())
		link, _ := a.Attr("href")
		if title == "" || link == "" {
			return
		}
		img, _ := s.Find("img").First().Attr("data-src")
		if img == "" {
			img, _ = s.Find("img").First().Attr("src")
		}
		art := domain.Article{
			Title:       title,
			Category:    attrOr(s, "data-section", src.Category),
			Summary:     strings.TrimSpace(s.Find("p.post-item__excerpt").Text()),
			ImageURL:    img,
			Author:      strings.TrimSpace(s.Find("span.post-item__author").Text()),
			Tags:        extractTags(s, "a.post-item__tag"),
			SourceURL:   absoluteURL(src.URL, link),
			PublishedAt: parseTime(s.Find("time").AttrOr("datetime", "")),
		}
		art.ReadTime = estimateReadTime(art.Summary)
		res = append(res, art)
	})
	return res
}

// parseGeneric 手动指定抓取地址时用的兜底解析：
// 按 og: 元信息加正文常见结构抽取单篇
func parseGeneric(doc *goquery.Document, src Source) []domain.Article {
	title := doc.Find(`meta[property="og:title"]`).AttrOr("content", "")
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		return nil
	}
	art := domain.Article{
		Title:       title,
		Category:    src.Category,
		Summary:     doc.Find(`meta[property="og:description"]`).AttrOr("content", ""),
		Content:     innerHTML(doc.Find("article").First()),
		ImageURL:    doc.Find(`meta[property="og:image"]`).AttrOr("content", ""),
		Author:      doc.Find(`meta[name="author"]`).AttrOr("content", ""),
		SourceURL:   doc.Find(`link[rel="canonical"]`).AttrOr("href", src.URL),
		PublishedAt: parseTime(doc.Find(`meta[property="article:published_time"]`).AttrOr("content", "")),
	}
	art.ReadTime = estimateReadTime(art.Content)
	return []domain.Article{art}
}

func attrOr(s *goquery.Selection, attr, def string) string {
	if v, ok := s.Attr(attr); ok && v != "" {
		return v
	}
	return def
}

func extractTags(s *goquery.Selection, selector string) []string {
	var tags []string
	s.Find(selector).Each(func(i int, t *goquery.Selection) {
		tag := strings.TrimSpace(t.Text())
		if tag != "" {
			tags = append(tags, tag)
		}
	})
	return tags
}

func innerHTML(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	html, err := s.Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(html)
}

func absoluteURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

func parseTime(v string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// 按约 200 词每分钟估算，至少 1 分钟
func estimateReadTime(text string) int {
	words := len(strings.Fields(text))
	rt := (words + 199) / 200
	if rt < 1 {
		rt = 1
	}
	return rt
}
