package domain

import "time"

type Assessment struct {
	Id int64
	// Token 对外可以当查询凭证用，不暴露自增规律
	Token  string
	Name   string
	Email  string
	Scores []CategoryScore
	Ctime  time.Time
	Utime  time.Time
}

// CategoryScore 单个维度的测评得分，0-10 分
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}
