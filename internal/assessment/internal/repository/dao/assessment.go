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
	"strconv"
	"time"

	"github.com/ecodeclub/careerhub/internal/pkg/snowflake"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrAssessmentNotFound = errors.New("测评记录不存在")

//go:generate mockgen -source=./assessment.go -package=daomocks -destination=./mocks/assessment.mock.go AssessmentDAO
type AssessmentDAO interface {
	Create(ctx context.Context, a Assessment) (Assessment, error)
	// GetByRef 依次按数字 id、邮箱精确、token 或姓名模糊匹配，取最新一条
	GetByRef(ctx context.Context, ref string) (Assessment, error)
}

type GORMAssessmentDAO struct {
	db      *egorm.Component
	idMaker snowflake.Generator
}

func NewGORMAssessmentDAO(db *egorm.Component, idMaker snowflake.Generator) AssessmentDAO {
	return &GORMAssessmentDAO{
		db:      db,
		idMaker: idMaker,
	}
}

func (g *GORMAssessmentDAO) Create(ctx context.Context, a Assessment) (Assessment, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	if a.Id == 0 {
		a.Id = g.idMaker.Generate().Int64()
	}
	err := g.db.WithContext(ctx).Create(&a).Error
	if err != nil {
		return Assessment{}, err
	}
	return a, nil
}

func (g *GORMAssessmentDAO) GetByRef(ctx context.Context, ref string) (Assessment, error) {
	var res Assessment
	db := g.db.WithContext(ctx)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		err = db.Where("id = ?", id).First(&res).Error
		return res, g.wrapNotFound(err)
	}
	err := db.Where("email = ?", ref).
		Order("ctime DESC").First(&res).Error
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Assessment{}, err
	}
	err = db.Where("token = ? OR name LIKE ?", ref, "%"+ref+"%").
		Order("ctime DESC").First(&res).Error
	return res, g.wrapNotFound(err)
}

func (g *GORMAssessmentDAO) wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAssessmentNotFound
	}
	return err
}

type Assessment struct {
	Id     int64                           `gorm:"primaryKey"`
	Token  string                          `gorm:"type:varchar(64);not null;uniqueIndex:uniq_assessment_token"`
	Name   string                          `gorm:"type:varchar(255);not null;default:'';index:idx_name"`
	Email  string                          `gorm:"type:varchar(255);not null;index:idx_email"`
	Scores sqlx.JsonColumn[[]CategoryScore] `gorm:"type:text"`
	Ctime  int64                           `gorm:"index"`
	Utime  int64
}

func (Assessment) TableName() string {
	return "assessments"
}

type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}
