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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ecodeclub/careerhub/internal/article"
	artmocks "github.com/ecodeclub/careerhub/internal/article/mocks"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/domain"
	evtmocks "github.com/ecodeclub/careerhub/internal/assessment/internal/event/mocks"
	repomocks "github.com/ecodeclub/careerhub/internal/assessment/internal/repository/mocks"
)

func TestAssessmentService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockAssessmentRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a domain.Assessment) (domain.Assessment, error) {
			// token 在 service 里生成
			assert.NotEmpty(t, a.Token)
			a.Id = 1001
			return a, nil
		})
	producer := evtmocks.NewMockAssessmentEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	recSvc := artmocks.NewMockRecommendationService(ctrl)
	recSvc.EXPECT().
		Recommend(gomock.Any(), []article.CategoryScore{
			{Category: "Career", Score: 6},
			{Category: "Balance", Score: 4},
			{Category: "Leadership", Score: 8},
		}).
		Return([]article.Article{{Id: 1, Category: "work_life_balance"}}, nil)

	svc := NewService(repo, producer, recSvc)
	res, err := svc.Submit(context.Background(), domain.Assessment{
		Name:  "Tom",
		Email: "tom@example.com",
		Scores: []domain.CategoryScore{
			{Category: "Career", Score: 6},
			{Category: "Balance", Score: 4},
			{Category: "Leadership", Score: 8},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), res.Assessment.Id)
	assert.NotEmpty(t, res.Assessment.Token)
	assert.Len(t, res.Recommendations, 1)
}

func TestAssessmentService_Submit_ProducerFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockAssessmentRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a domain.Assessment) (domain.Assessment, error) {
			return a, nil
		})
	producer := evtmocks.NewMockAssessmentEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq 不可用"))
	recSvc := artmocks.NewMockRecommendationService(ctrl)
	recSvc.EXPECT().Recommend(gomock.Any(), gomock.Any()).Return([]article.Article{}, nil)

	svc := NewService(repo, producer, recSvc)
	_, err := svc.Submit(context.Background(), domain.Assessment{
		Email:  "tom@example.com",
		Scores: []domain.CategoryScore{{Category: "growth", Score: 3}},
	})
	assert.NoError(t, err)
}

func TestAssessmentService_Submit_RecommendFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockAssessmentRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a domain.Assessment) (domain.Assessment, error) {
			return a, nil
		})
	producer := evtmocks.NewMockAssessmentEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	recSvc := artmocks.NewMockRecommendationService(ctrl)
	recSvc.EXPECT().Recommend(gomock.Any(), gomock.Any()).Return(nil, errors.New("db 故障"))

	svc := NewService(repo, producer, recSvc)
	res, err := svc.Submit(context.Background(), domain.Assessment{
		Email:  "tom@example.com",
		Scores: []domain.CategoryScore{{Category: "growth", Score: 3}},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Recommendations)
}

func TestAssessmentService_Results(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (*repomocks.MockAssessmentRepository, *artmocks.MockRecommendationService)
		ref     string
		wantErr error
	}{
		{
			name: "按 token 查到记录",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockAssessmentRepository, *artmocks.MockRecommendationService) {
				repo := repomocks.NewMockAssessmentRepository(ctrl)
				repo.EXPECT().
					GetByRef(gomock.Any(), "KwSysDpxcBU9FNhGkn2dCf").
					Return(domain.Assessment{
						Id:    1001,
						Token: "KwSysDpxcBU9FNhGkn2dCf",
						Email: "tom@example.com",
						Scores: []domain.CategoryScore{
							{Category: "career_clarity", Score: 4},
						},
					}, nil)
				recSvc := artmocks.NewMockRecommendationService(ctrl)
				recSvc.EXPECT().
					Recommend(gomock.Any(), gomock.Any()).
					Return([]article.Article{{Id: 7}}, nil)
				return repo, recSvc
			},
			ref: "KwSysDpxcBU9FNhGkn2dCf",
		},
		{
			name: "找不到记录",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockAssessmentRepository, *artmocks.MockRecommendationService) {
				repo := repomocks.NewMockAssessmentRepository(ctrl)
				repo.EXPECT().
					GetByRef(gomock.Any(), "nobody@example.com").
					Return(domain.Assessment{}, ErrAssessmentNotFound)
				return repo, artmocks.NewMockRecommendationService(ctrl)
			},
			ref:     "nobody@example.com",
			wantErr: ErrAssessmentNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, recSvc := tc.mock(ctrl)
			svc := NewService(repo, evtmocks.NewMockAssessmentEventProducer(ctrl), recSvc)
			res, err := svc.Results(context.Background(), tc.ref)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, tc.ref, res.Assessment.Token)
				assert.Len(t, res.Recommendations, 1)
			}
		})
	}
}
