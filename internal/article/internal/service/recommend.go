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
	"math/rand"
	"sync"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"

	"github.com/ecodeclub/careerhub/internal/article/internal/domain"
	"github.com/ecodeclub/careerhub/internal/article/internal/repository"
)

var ErrArticleNotFound = repository.ErrArticleNotFound

const (
	// WeakThreshold 低于 6 分（0-10 打分）算薄弱项
	WeakThreshold = 6
	// RecommendLimit 一次最多推荐 6 篇
	RecommendLimit = 6
)

type CategoryScore struct {
	Category string
	Score    int
}

//go:generate mockgen -source=./recommend.go -package=svcmocks -destination=./mocks/recommend.mock.go RecommendationService
type RecommendationService interface {
	// Recommend 根据测评得分挑出薄弱类目，返回各类目头部文章打散后的推荐列表。
	// 没有薄弱类目返回空列表，不算错误。
	Recommend(ctx context.Context, scores []CategoryScore) ([]domain.Article, error)
	// TrackClick 推荐文章被打开时的点击计数
	TrackClick(ctx context.Context, id int64) error
}

type recommendationService struct {
	repo   repository.ArticleRepository
	mu     sync.Mutex
	rnd    *rand.Rand
	logger *elog.Component
}

func NewRecommendationService(repo repository.ArticleRepository, rnd *rand.Rand) RecommendationService {
	return &recommendationService{
		repo:   repo,
		rnd:    rnd,
		logger: elog.DefaultLogger,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, scores []CategoryScore) ([]domain.Article, error) {
	weak := weakCategories(scores)
	if len(weak) == 0 {
		return []domain.Article{}, nil
	}
	perCategory := (RecommendLimit + len(weak) - 1) / len(weak)
	combined := make([]domain.Article, 0, RecommendLimit)
	for _, cat := range weak {
		arts, err := s.repo.TopByCategory(ctx, cat, perCategory)
		if err != nil {
			return nil, err
		}
		combined = append(combined, arts...)
	}
	// 打散，避免推荐列表总是按类目排队
	s.mu.Lock()
	s.rnd.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})
	s.mu.Unlock()
	if len(combined) > RecommendLimit {
		combined = combined[:RecommendLimit]
	}
	ids := slice.Map(combined, func(idx int, art domain.Article) int64 {
		return art.Id
	})
	if err := s.repo.IncrViewCnt(ctx, ids); err != nil {
		// 曝光计数失败不影响推荐结果
		s.logger.Error("累加曝光计数失败", elog.FieldErr(err))
	}
	return combined, nil
}

func (s *recommendationService) TrackClick(ctx context.Context, id int64) error {
	return s.repo.IncrClickCnt(ctx, id)
}

// weakCategories 解析得分里的薄弱类目，保持出现顺序并去重，
// 两套类目叫法都接受，不认识的直接忽略
func weakCategories(scores []CategoryScore) []string {
	seen := make(map[string]struct{}, len(scores))
	res := make([]string, 0, len(scores))
	for _, sc := range scores {
		if sc.Score >= WeakThreshold {
			continue
		}
		cat, ok := domain.CategoryOf(sc.Category)
		if !ok {
			continue
		}
		if _, dup := seen[cat.Name]; dup {
			continue
		}
		seen[cat.Name] = struct{}{}
		res = append(res, cat.Name)
	}
	return res
}
