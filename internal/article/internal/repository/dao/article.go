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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrArticleNotFound = errors.New("文章不存在")

//go:generate mockgen -source=./article.go -package=daomocks -destination=./mocks/article.mock.go ArticleDAO
type ArticleDAO interface {
	// Upsert 以 source_url 为准的插入或更新。
	// 已存在只刷新可变字段，计数和 id 不动。返回落库后的记录和是否新建。
	Upsert(ctx context.Context, art Article) (Article, bool, error)
	GetById(ctx context.Context, id int64) (Article, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]Article, error)
	IncrClickCnt(ctx context.Context, id int64) error
	IncrViewCnt(ctx context.Context, ids []int64) error
}

type GORMArticleDAO struct {
	db *egorm.Component
}

func NewGORMArticleDAO(db *egorm.Component) ArticleDAO {
	return &GORMArticleDAO{db: db}
}

func (g *GORMArticleDAO) Upsert(ctx context.Context, art Article) (Article, bool, error) {
	now := time.Now().UnixMilli()
	art.Ctime = now
	art.Utime = now
	res := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source_url"}},
		DoUpdates: clause.Assignments(map[string]any{
			"title":           art.Title,
			"category":        art.Category,
			"summary":         art.Summary,
			"content":         art.Content,
			"image_url":       art.ImageURL,
			"tags":            art.Tags,
			"author":          art.Author,
			"read_time":       art.ReadTime,
			"relevance_score": art.RelevanceScore,
			"published_at":    art.PublishedAt,
			"utime":           now,
		}),
	}).Create(&art)
	if res.Error != nil {
		return Article{}, false, res.Error
	}
	// MySQL 的 ON DUPLICATE KEY UPDATE：插入影响 1 行，更新影响 2 行
	created := res.RowsAffected == 1
	if !created {
		// 更新路径拿不到已有行的 id，按唯一键取回
		err := g.db.WithContext(ctx).
			Where("source_url = ?", art.SourceURL).
			First(&art).Error
		if err != nil {
			return Article{}, false, err
		}
	}
	return art, created, nil
}

func (g *GORMArticleDAO) GetById(ctx context.Context, id int64) (Article, error) {
	var art Article
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&art).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Article{}, ErrArticleNotFound
	}
	return art, err
}

func (g *GORMArticleDAO) ListByCategory(ctx context.Context, category string, limit int) ([]Article, error) {
	var res []Article
	err := g.db.WithContext(ctx).
		Where("category = ? AND status = ?", category, ArticleStatusActive).
		Order("relevance_score DESC").
		Order("view_cnt + click_cnt DESC").
		Order("published_at DESC").
		Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMArticleDAO) IncrClickCnt(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Model(&Article{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"click_cnt": gorm.Expr("`click_cnt` + 1"),
			"utime":     time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func (g *GORMArticleDAO) IncrViewCnt(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).Model(&Article{}).
		Where("id IN ?", ids).
		Update("view_cnt", gorm.Expr("`view_cnt` + 1")).Error
}

const (
	ArticleStatusActive   uint8 = 1
	ArticleStatusInactive uint8 = 2
)

type Article struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Title    string `gorm:"type:varchar(512);not null"`
	Category string `gorm:"type:varchar(64);not null;index:idx_category_status"`
	Summary  string `gorm:"type:text"`
	Content  string `gorm:"type:longtext"`
	ImageURL string `gorm:"column:image_url;type:varchar(1024)"`
	Tags     sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Author   string `gorm:"type:varchar(255)"`
	// 分钟
	ReadTime       int     `gorm:"type:int;not null;default:0"`
	RelevanceScore float64 `gorm:"type:double;not null;default:0"`
	ViewCnt        int64   `gorm:"type:bigint;not null;default:0"`
	ClickCnt       int64   `gorm:"type:bigint;not null;default:0"`
	Status         uint8   `gorm:"type:tinyint(3);not null;default:1;index:idx_category_status;comment:1-active 2-inactive"`
	SourceURL      string  `gorm:"column:source_url;type:varchar(512);not null;uniqueIndex:uniq_source_url"`
	PublishedAt    int64
	Ctime          int64
	Utime          int64
}

func (Article) TableName() string {
	return "articles"
}
