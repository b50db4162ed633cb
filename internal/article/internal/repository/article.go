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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/careerhub/internal/article/internal/domain"
	"github.com/ecodeclub/careerhub/internal/article/internal/repository/cache"
	"github.com/ecodeclub/careerhub/internal/article/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

var ErrArticleNotFound = dao.ErrArticleNotFound

// 每个类目缓存的榜单长度
const topListSize = 6

//go:generate mockgen -source=./article.go -package=repomocks -destination=./mocks/article.mock.go ArticleRepository
type ArticleRepository interface {
	// Save 按 source_url 幂等落库，返回落库后的文章和是否新建
	Save(ctx context.Context, art domain.Article) (domain.Article, bool, error)
	GetById(ctx context.Context, id int64) (domain.Article, error)
	// TopByCategory 某类目下按相关度、热度、发布时间排序的前 limit 篇
	TopByCategory(ctx context.Context, category string, limit int) ([]domain.Article, error)
	IncrClickCnt(ctx context.Context, id int64) error
	IncrViewCnt(ctx context.Context, ids []int64) error
	// RefreshTopList 抓取完成后重建类目榜单缓存
	RefreshTopList(ctx context.Context, category string) error
}

type CachedArticleRepository struct {
	d      dao.ArticleDAO
	cache  cache.ArticleCache
	logger *elog.Component
}

func NewCachedArticleRepository(d dao.ArticleDAO, c cache.ArticleCache) ArticleRepository {
	return &CachedArticleRepository{
		d:      d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedArticleRepository) Save(ctx context.Context, art domain.Article) (domain.Article, bool, error) {
	entity, created, err := r.d.Upsert(ctx, r.toEntity(art))
	if err != nil {
		return domain.Article{}, false, err
	}
	return r.toDomain(entity), created, nil
}

func (r *CachedArticleRepository) GetById(ctx context.Context, id int64) (domain.Article, error) {
	entity, err := r.d.GetById(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}
	return r.toDomain(entity), nil
}

func (r *CachedArticleRepository) TopByCategory(ctx context.Context, category string, limit int) ([]domain.Article, error) {
	if limit <= topListSize {
		arts, err := r.cache.GetTopList(ctx, category)
		if err == nil {
			if limit < len(arts) {
				arts = arts[:limit]
			}
			return arts, nil
		}
		if err != cache.ErrTopListNotFound {
			// 缓存故障只记日志，继续走数据库
			r.logger.Error("读取类目榜单缓存失败",
				elog.FieldErr(err),
				elog.String("category", category))
		}
	}
	entities, err := r.d.ListByCategory(ctx, category, max(limit, topListSize))
	if err != nil {
		return nil, err
	}
	arts := slice.Map(entities, func(idx int, src dao.Article) domain.Article {
		return r.toDomain(src)
	})
	if err := r.cache.SetTopList(ctx, category, r.head(arts, topListSize)); err != nil {
		r.logger.Error("写入类目榜单缓存失败",
			elog.FieldErr(err),
			elog.String("category", category))
	}
	return r.head(arts, limit), nil
}

func (r *CachedArticleRepository) IncrClickCnt(ctx context.Context, id int64) error {
	return r.d.IncrClickCnt(ctx, id)
}

func (r *CachedArticleRepository) IncrViewCnt(ctx context.Context, ids []int64) error {
	return r.d.IncrViewCnt(ctx, ids)
}

func (r *CachedArticleRepository) RefreshTopList(ctx context.Context, category string) error {
	entities, err := r.d.ListByCategory(ctx, category, topListSize)
	if err != nil {
		return err
	}
	arts := slice.Map(entities, func(idx int, src dao.Article) domain.Article {
		return r.toDomain(src)
	})
	return r.cache.SetTopList(ctx, category, arts)
}

func (r *CachedArticleRepository) head(arts []domain.Article, limit int) []domain.Article {
	if limit < len(arts) {
		return arts[:limit]
	}
	return arts
}

func (r *CachedArticleRepository) toEntity(art domain.Article) dao.Article {
	return dao.Article{
		Id:       art.Id,
		Title:    art.Title,
		Category: art.Category,
		Summary:  art.Summary,
		Content:  art.Content,
		ImageURL: art.ImageURL,
		Tags: sqlx.JsonColumn[[]string]{
			Val:   art.Tags,
			Valid: len(art.Tags) > 0,
		},
		Author:         art.Author,
		ReadTime:       art.ReadTime,
		RelevanceScore: art.RelevanceScore,
		ViewCnt:        art.ViewCnt,
		ClickCnt:       art.ClickCnt,
		Status:         art.Status.ToUint8(),
		SourceURL:      art.SourceURL,
		PublishedAt:    art.PublishedAt.UnixMilli(),
	}
}

func (r *CachedArticleRepository) toDomain(entity dao.Article) domain.Article {
	return domain.Article{
		Id:             entity.Id,
		Title:          entity.Title,
		Category:       entity.Category,
		Summary:        entity.Summary,
		Content:        entity.Content,
		ImageURL:       entity.ImageURL,
		Tags:           entity.Tags.Val,
		Author:         entity.Author,
		ReadTime:       entity.ReadTime,
		RelevanceScore: entity.RelevanceScore,
		ViewCnt:        entity.ViewCnt,
		ClickCnt:       entity.ClickCnt,
		Status:         domain.ArticleStatus(entity.Status),
		SourceURL:      entity.SourceURL,
		PublishedAt:    time.UnixMilli(entity.PublishedAt),
		Ctime:          time.UnixMilli(entity.Ctime),
		Utime:          time.UnixMilli(entity.Utime),
	}
}
