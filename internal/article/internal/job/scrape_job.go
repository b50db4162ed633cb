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

package job

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/gotomicro/ego/core/elog"

	"github.com/ecodeclub/careerhub/internal/article/internal/service"
)

var ErrAlreadyRunning = errors.New("抓取任务已在运行")

// ScrapeJob 定时抓取任务。并发保护只有 running 这一个状态位：
// 起跑前 CAS 置位，所有退出路径都复位，同一时刻最多一轮在跑。
// 定时触发和手动触发走同一个入口，共用这把闸。
type ScrapeJob struct {
	svc     service.ScrapeService
	running atomic.Bool
	logger  *elog.Component
}

func NewScrapeJob(svc service.ScrapeService) *ScrapeJob {
	return &ScrapeJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *ScrapeJob) Name() string {
	return "scrape-articles"
}

// Run 给 ecron 用。上一轮还没结束就跳过本轮，不算失败。
func (j *ScrapeJob) Run(ctx context.Context) error {
	_, err := j.run(ctx, "")
	if errors.Is(err, ErrAlreadyRunning) {
		j.logger.Warn("上一轮抓取还没结束，跳过本轮")
		return nil
	}
	return err
}

// RunNow 手动或发布钩子触发，同步执行并返回处理的文章数。
// 已有一轮在跑时返回 ErrAlreadyRunning，由调用方决定怎么报。
func (j *ScrapeJob) RunNow(ctx context.Context, sourceURL string) (int, error) {
	return j.run(ctx, sourceURL)
}

func (j *ScrapeJob) run(ctx context.Context, sourceURL string) (int, error) {
	if !j.running.CompareAndSwap(false, true) {
		return 0, ErrAlreadyRunning
	}
	defer j.running.Store(false)
	arts, err := j.svc.Scrape(ctx, sourceURL)
	if err != nil {
		return 0, err
	}
	return len(arts), nil
}
