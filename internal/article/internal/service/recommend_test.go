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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ecodeclub/careerhub/internal/article/internal/domain"
	"github.com/ecodeclub/careerhub/internal/article/internal/repository"
	repomocks "github.com/ecodeclub/careerhub/internal/article/internal/repository/mocks"
)

func arts(category string, ids ...int64) []domain.Article {
	res := make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		res = append(res, domain.Article{Id: id, Category: category})
	}
	return res
}

func TestRecommendationService_Recommend(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ArticleRepository
		scores  []CategoryScore
		verify  func(t *testing.T, got []domain.Article)
		wantErr error
	}{
		{
			name: "没有薄弱类目返回空列表",
			mock: func(ctrl *gomock.Controller) repository.ArticleRepository {
				// 不允许查库
				return repomocks.NewMockArticleRepository(ctrl)
			},
			scores: []CategoryScore{
				{Category: "Career", Score: 8},
				{Category: "Balance", Score: 6},
				{Category: "Leadership", Score: 10},
			},
			verify: func(t *testing.T, got []domain.Article) {
				assert.Empty(t, got)
			},
		},
		{
			name: "6分是及格线_只有Balance薄弱",
			mock: func(ctrl *gomock.Controller) repository.ArticleRepository {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().
					TopByCategory(gomock.Any(), "work_life_balance", RecommendLimit).
					Return(arts("work_life_balance", 1, 2, 3), nil)
				repo.EXPECT().IncrViewCnt(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			scores: []CategoryScore{
				{Category: "Career", Score: 6},
				{Category: "Balance", Score: 4},
				{Category: "Leadership", Score: 8},
			},
			verify: func(t *testing.T, got []domain.Article) {
				assert.Len(t, got, 3)
				for _, art := range got {
					assert.Equal(t, "work_life_balance", art.Category)
				}
			},
		},
		{
			name: "两个薄弱类目合并后不超过总上限",
			mock: func(ctrl *gomock.Controller) repository.ArticleRepository {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().
					TopByCategory(gomock.Any(), "work_life_balance", 3).
					Return(arts("work_life_balance", 1, 2, 3), nil)
				repo.EXPECT().
					TopByCategory(gomock.Any(), "confidence", 3).
					Return(arts("confidence", 4, 5, 6), nil)
				repo.EXPECT().IncrViewCnt(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			scores: []CategoryScore{
				{Category: "Balance", Score: 2},
				{Category: "Confidence", Score: 5},
			},
			verify: func(t *testing.T, got []domain.Article) {
				assert.LessOrEqual(t, len(got), RecommendLimit)
				for _, art := range got {
					assert.Contains(t, []string{"work_life_balance", "confidence"}, art.Category)
				}
			},
		},
		{
			name: "三个薄弱类目每类取2篇",
			mock: func(ctrl *gomock.Controller) repository.ArticleRepository {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().TopByCategory(gomock.Any(), "career_clarity", 2).
					Return(arts("career_clarity", 1, 2), nil)
				repo.EXPECT().TopByCategory(gomock.Any(), "work_life_balance", 2).
					Return(arts("work_life_balance", 3, 4), nil)
				repo.EXPECT().TopByCategory(gomock.Any(), "leadership", 2).
					Return(arts("leadership", 5, 6), nil)
				repo.EXPECT().IncrViewCnt(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			scores: []CategoryScore{
				{Category: "Career", Score: 1},
				{Category: "Balance", Score: 2},
				{Category: "Leadership", Score: 3},
			},
			verify: func(t *testing.T, got []domain.Article) {
				assert.Len(t, got, 6)
			},
		},
		{
			name: "重复和不认识的类目被忽略",
			mock: func(ctrl *gomock.Controller) repository.ArticleRepository {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().
					TopByCategory(gomock.Any(), "work_life_balance", RecommendLimit).
					Return(arts("work_life_balance", 1), nil)
				repo.EXPECT().IncrViewCnt(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			scores: []CategoryScore{
				{Category: "Balance", Score: 1},
				{Category: "work_life_balance", Score: 2},
				{Category: "astrology", Score: 0},
			},
			verify: func(t *testing.T, got []domain.Article) {
				assert.Len(t, got, 1)
			},
		},
		{
			name: "曝光计数失败不影响推荐",
			mock: func(ctrl *gomock.Controller) repository.ArticleRepository {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().
					TopByCategory(gomock.Any(), "growth", RecommendLimit).
					Return(arts("growth", 9), nil)
				repo.EXPECT().IncrViewCnt(gomock.Any(), gomock.Any()).
					Return(assert.AnError)
				return repo
			},
			scores: []CategoryScore{{Category: "Growth", Score: 0}},
			verify: func(t *testing.T, got []domain.Article) {
				assert.Len(t, got, 1)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewRecommendationService(tc.mock(ctrl), rand.New(rand.NewSource(11)))
			got, err := svc.Recommend(context.Background(), tc.scores)
			assert.Equal(t, tc.wantErr, err)
			tc.verify(t, got)
		})
	}
}

func TestRecommendationService_ShuffleReproducible(t *testing.T) {
	scores := []CategoryScore{
		{Category: "Balance", Score: 2},
		{Category: "Confidence", Score: 3},
	}
	run := func(seed int64) []int64 {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockArticleRepository(ctrl)
		repo.EXPECT().TopByCategory(gomock.Any(), "work_life_balance", 3).
			Return(arts("work_life_balance", 1, 2, 3), nil)
		repo.EXPECT().TopByCategory(gomock.Any(), "confidence", 3).
			Return(arts("confidence", 4, 5, 6), nil)
		repo.EXPECT().IncrViewCnt(gomock.Any(), gomock.Any()).Return(nil)
		svc := NewRecommendationService(repo, rand.New(rand.NewSource(seed)))
		got, err := svc.Recommend(context.Background(), scores)
		require.NoError(t, err)
		ids := make([]int64, 0, len(got))
		for _, art := range got {
			ids = append(ids, art.Id)
		}
		return ids
	}
	assert.Equal(t, run(7), run(7))
}

func TestRecommendationService_TrackClick(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ArticleRepository
		id      int64
		wantErr error
	}{
		{
			name: "正常计数",
			mock: func(ctrl *gomock.Controller) repository.ArticleRepository {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().IncrClickCnt(gomock.Any(), int64(10)).Return(nil)
				return repo
			},
			id: 10,
		},
		{
			name: "文章不存在",
			mock: func(ctrl *gomock.Controller) repository.ArticleRepository {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().IncrClickCnt(gomock.Any(), int64(404)).
					Return(ErrArticleNotFound)
				return repo
			},
			id:      404,
			wantErr: ErrArticleNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewRecommendationService(tc.mock(ctrl), rand.New(rand.NewSource(1)))
			err := svc.TrackClick(context.Background(), tc.id)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
