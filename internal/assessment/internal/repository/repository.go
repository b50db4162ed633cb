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

	"github.com/ecodeclub/careerhub/internal/assessment/internal/domain"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var ErrAssessmentNotFound = dao.ErrAssessmentNotFound

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/assessment.mock.go AssessmentRepository
type AssessmentRepository interface {
	Create(ctx context.Context, a domain.Assessment) (domain.Assessment, error)
	GetByRef(ctx context.Context, ref string) (domain.Assessment, error)
}

type assessmentRepository struct {
	dao dao.AssessmentDAO
}

func NewAssessmentRepository(d dao.AssessmentDAO) AssessmentRepository {
	return &assessmentRepository{dao: d}
}

func (r *assessmentRepository) Create(ctx context.Context, a domain.Assessment) (domain.Assessment, error) {
	created, err := r.dao.Create(ctx, r.toEntity(a))
	if err != nil {
		return domain.Assessment{}, err
	}
	return r.toDomain(created), nil
}

func (r *assessmentRepository) GetByRef(ctx context.Context, ref string) (domain.Assessment, error) {
	a, err := r.dao.GetByRef(ctx, ref)
	if err != nil {
		return domain.Assessment{}, err
	}
	return r.toDomain(a), nil
}

func (r *assessmentRepository) toEntity(a domain.Assessment) dao.Assessment {
	return dao.Assessment{
		Id:    a.Id,
		Token: a.Token,
		Name:  a.Name,
		Email: a.Email,
		Scores: sqlx.JsonColumn[[]dao.CategoryScore]{
			Valid: true,
			Val: slice.Map(a.Scores, func(_ int, src domain.CategoryScore) dao.CategoryScore {
				return dao.CategoryScore{Category: src.Category, Score: src.Score}
			}),
		},
	}
}

func (r *assessmentRepository) toDomain(a dao.Assessment) domain.Assessment {
	return domain.Assessment{
		Id:    a.Id,
		Token: a.Token,
		Name:  a.Name,
		Email: a.Email,
		Scores: slice.Map(a.Scores.Val, func(_ int, src dao.CategoryScore) domain.CategoryScore {
			return domain.CategoryScore{Category: src.Category, Score: src.Score}
		}),
		Ctime: time.UnixMilli(a.Ctime),
		Utime: time.UnixMilli(a.Utime),
	}
}
