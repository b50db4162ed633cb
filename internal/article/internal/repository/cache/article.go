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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/careerhub/internal/article/internal/domain"
	"github.com/pkg/errors"

	"github.com/ecodeclub/ecache"
)

var ErrTopListNotFound = errors.New("类目榜单不在缓存里")

const expiration = 10 * time.Minute

type ArticleCache interface {
	GetTopList(ctx context.Context, category string) ([]domain.Article, error)
	SetTopList(ctx context.Context, category string, arts []domain.Article) error
}

type ArticleECache struct {
	ec ecache.Cache
}

func NewArticleECache(ec ecache.Cache) ArticleCache {
	return &ArticleECache{
		ec: &ecache.NamespaceCache{
			Namespace: "article:",
			C:         ec,
		},
	}
}

func (a *ArticleECache) GetTopList(ctx context.Context, category string) ([]domain.Article, error) {
	val := a.ec.Get(ctx, a.topKey(category))
	if val.KeyNotFound() {
		return nil, ErrTopListNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询榜单缓存出错")
	}
	var arts []domain.Article
	err := json.Unmarshal([]byte(val.Val.(string)), &arts)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化榜单失败")
	}
	return arts, nil
}

func (a *ArticleECache) SetTopList(ctx context.Context, category string, arts []domain.Article) error {
	data, err := json.Marshal(arts)
	if err != nil {
		return errors.Wrap(err, "序列化榜单失败")
	}
	return a.ec.Set(ctx, a.topKey(category), string(data), expiration)
}

func (a *ArticleECache) topKey(category string) string {
	return fmt.Sprintf("top:%s", category)
}
