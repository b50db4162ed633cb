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
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gotomicro/ego/core/elog"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ecodeclub/careerhub/internal/article/internal/domain"
	"github.com/ecodeclub/careerhub/internal/article/internal/repository"
)

var ErrNoSourceSucceeded = errors.New("所有内容源都抓取失败")

const (
	userAgent = "careerhub-scraper/1.0"
	// 相关度基准分，新文章按新鲜度最多再加 5 分
	baseRelevance  = 5.0
	freshnessBonus = 5.0
	freshnessSpan  = 30 * 24 * time.Hour
)

//go:generate mockgen -source=./scrape.go -package=svcmocks -destination=./mocks/scrape.mock.go ScrapeService
type ScrapeService interface {
	// Scrape 抓取全部内置内容源并落库，sourceURL 不为空时只抓这一个地址。
	// 返回本轮新建或刷新的文章。单个源失败只跳过，全军覆没才返回错误。
	Scrape(ctx context.Context, sourceURL string) ([]domain.Article, error)
}

type scrapeService struct {
	repo    repository.ArticleRepository
	client  *http.Client
	sources []Source
	// 兜底图挑选用，测试里固定种子
	rnd    *rand.Rand
	logger *elog.Component
}

func NewScrapeService(repo repository.ArticleRepository,
	client *http.Client, rnd *rand.Rand) ScrapeService {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &scrapeService{
		repo:    repo,
		client:  client,
		sources: builtinSources(),
		rnd:     rnd,
		logger:  elog.DefaultLogger,
	}
}

func (s *scrapeService) Scrape(ctx context.Context, sourceURL string) ([]domain.Article, error) {
	srcs := s.targets(sourceURL)
	var (
		mu         sync.Mutex
		candidates []domain.Article
	)
	var eg errgroup.Group
	eg.SetLimit(4)
	for _, src := range srcs {
		eg.Go(func() error {
			arts, err := s.scrapeOne(ctx, src)
			if err != nil {
				// 单源失败不影响其他源
				s.logger.Warn("内容源抓取失败",
					elog.FieldErr(err),
					elog.String("source", src.Name))
				return nil
			}
			mu.Lock()
			candidates = append(candidates, arts...)
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()
	if len(candidates) == 0 {
		return nil, ErrNoSourceSucceeded
	}

	touched := make([]domain.Article, 0, len(candidates))
	cats := make(map[string]struct{}, 4)
	for _, cand := range candidates {
		art, ok := s.normalize(cand)
		if !ok {
			continue
		}
		saved, created, err := s.repo.Save(ctx, art)
		if err != nil {
			return nil, fmt.Errorf("文章落库失败: %w", err)
		}
		s.logger.Debug("文章已入库",
			elog.String("title", saved.Title),
			zap.Bool("created", created))
		touched = append(touched, saved)
		cats[saved.Category] = struct{}{}
	}
	for cat := range cats {
		if err := s.repo.RefreshTopList(ctx, cat); err != nil {
			s.logger.Error("重建类目榜单缓存失败",
				elog.FieldErr(err),
				elog.String("category", cat))
		}
	}
	return touched, nil
}

func (s *scrapeService) targets(sourceURL string) []Source {
	if sourceURL == "" {
		return s.sources
	}
	for _, src := range s.sources {
		if src.URL == sourceURL {
			return []Source{src}
		}
	}
	return []Source{{
		Name:     "manual",
		URL:      sourceURL,
		Category: "career-advice",
		Parse:    parseGeneric,
	}}
}

func (s *scrapeService) scrapeOne(ctx context.Context, src Source) ([]domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("构造请求失败: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("源站返回 %s", resp.Status)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("解析页面失败: %w", err)
	}
	return src.Parse(doc, src), nil
}

// normalize 类目映射、相关度打分、兜底图替换。
// 类目不认识的候选直接丢弃。
func (s *scrapeService) normalize(art domain.Article) (domain.Article, bool) {
	cat, ok := domain.CategoryOf(art.Category)
	if !ok {
		s.logger.Warn("未知类目，丢弃文章",
			elog.String("category", art.Category),
			elog.String("url", art.SourceURL))
		return domain.Article{}, false
	}
	art.Category = cat.Name
	now := time.Now()
	if art.PublishedAt.IsZero() {
		art.PublishedAt = now
	}
	art.RelevanceScore = relevanceOf(art.PublishedAt, now)
	art.Status = domain.ArticleStatusActive
	if domain.NeedsPlaceholder(art.ImageURL) {
		art.ImageURL = domain.PlaceholderFor(art.Category, s.rnd)
		art.Tags = append(art.Tags, domain.PlaceholderTag)
	}
	return art, true
}

func relevanceOf(publishedAt, now time.Time) float64 {
	age := now.Sub(publishedAt)
	if age < 0 {
		age = 0
	}
	freshness := 1 - float64(age)/float64(freshnessSpan)
	if freshness < 0 {
		freshness = 0
	}
	return baseRelevance + freshnessBonus*freshness
}
