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

	"github.com/ecodeclub/careerhub/internal/article"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/domain"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/event"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var ErrAssessmentNotFound = repository.ErrAssessmentNotFound

// Result 测评记录加上按薄弱项推荐的文章
type Result struct {
	Assessment      domain.Assessment
	Recommendations []article.Article
}

//go:generate mockgen -source=./assessment.go -package=svcmocks -destination=./mocks/assessment.mock.go Service
type Service interface {
	Submit(ctx context.Context, a domain.Assessment) (Result, error)
	Results(ctx context.Context, ref string) (Result, error)
}

type assessmentService struct {
	repo     repository.AssessmentRepository
	producer event.AssessmentEventProducer
	recSvc   article.RecommendationService
	logger   *elog.Component
}

func NewService(repo repository.AssessmentRepository,
	producer event.AssessmentEventProducer,
	recSvc article.RecommendationService) Service {
	return &assessmentService{
		repo:     repo,
		producer: producer,
		recSvc:   recSvc,
		logger:   elog.DefaultLogger,
	}
}

func (s *assessmentService) Submit(ctx context.Context, a domain.Assessment) (Result, error) {
	if a.Token == "" {
		a.Token = shortuuid.New()
	}
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return Result{}, err
	}
	s.produce(ctx, created)
	return Result{
		Assessment:      created,
		Recommendations: s.recommend(ctx, created),
	}, nil
}

func (s *assessmentService) Results(ctx context.Context, ref string) (Result, error) {
	a, err := s.repo.GetByRef(ctx, ref)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Assessment:      a,
		Recommendations: s.recommend(ctx, a),
	}, nil
}

// recommend 推荐失败不影响测评主流程，只记日志
func (s *assessmentService) recommend(ctx context.Context, a domain.Assessment) []article.Article {
	scores := slice.Map(a.Scores, func(_ int, src domain.CategoryScore) article.CategoryScore {
		return article.CategoryScore{Category: src.Category, Score: src.Score}
	})
	arts, err := s.recSvc.Recommend(ctx, scores)
	if err != nil {
		s.logger.Error("获取推荐文章失败",
			elog.FieldErr(err),
			elog.String("token", a.Token))
		return []article.Article{}
	}
	return arts
}

// produce 发事件失败不影响主流程，只记日志
func (s *assessmentService) produce(ctx context.Context, a domain.Assessment) {
	err := s.producer.Produce(ctx, event.AssessmentSubmittedEvent{
		Token: a.Token,
		Email: a.Email,
		Name:  a.Name,
		Scores: slice.Map(a.Scores, func(_ int, src domain.CategoryScore) event.CategoryScore {
			return event.CategoryScore{Category: src.Category, Score: src.Score}
		}),
	})
	if err != nil {
		s.logger.Error("发送测评提交事件失败",
			elog.FieldErr(err),
			elog.String("token", a.Token))
	}
}
