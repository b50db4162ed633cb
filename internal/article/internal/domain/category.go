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

package domain

import "strings"

// Category 类目的两套叫法都在这一张表里维护：
// Name 是落库用的内部标识，Display 是测评问卷和前端用的叫法。
// 不要在别的地方再写 if-else 映射。
type Category struct {
	Name    string
	Display string
	// 外部内容源上的类目别名
	Aliases []string
}

var Categories = []Category{
	{Name: "career_clarity", Display: "Career", Aliases: []string{"careers", "career-advice"}},
	{Name: "work_life_balance", Display: "Balance", Aliases: []string{"wellbeing", "work-life-balance"}},
	{Name: "leadership", Display: "Leadership", Aliases: []string{"leading-teams", "management"}},
	{Name: "confidence", Display: "Confidence", Aliases: []string{"self-confidence", "mindset"}},
	{Name: "job_search", Display: "JobSearch", Aliases: []string{"job-hunting", "interviewing"}},
	{Name: "growth", Display: "Growth", Aliases: []string{"personal-growth", "skills"}},
}

var categoryIndex = func() map[string]Category {
	idx := make(map[string]Category, len(Categories)*4)
	for _, c := range Categories {
		idx[strings.ToLower(c.Name)] = c
		idx[strings.ToLower(c.Display)] = c
		for _, a := range c.Aliases {
			idx[strings.ToLower(a)] = c
		}
	}
	return idx
}()

// CategoryOf 按任意一套叫法解析类目
func CategoryOf(name string) (Category, bool) {
	c, ok := categoryIndex[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
