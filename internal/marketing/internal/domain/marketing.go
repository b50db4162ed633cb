package domain

import "time"

type WaitlistEntry struct {
	Id    int64
	Email string
	Name  string
	// 用户填的职业目标，自由文本
	Goal  string
	Ctime time.Time
}

type CoachApplication struct {
	Id        int64
	Email     string
	Name      string
	Specialty string
	// 从业年限
	Experience int
	Bio        string
	Status     ApplicationStatus
	Ctime      time.Time
	Utime      time.Time
}

type ApplicationStatus uint8

const (
	// 待审核
	ApplicationStatusPending ApplicationStatus = iota
	// 通过
	ApplicationStatusApproved
	// 拒绝
	ApplicationStatusRejected
)

type Campaign struct {
	Id        int64
	Slug      string
	Title     string
	Tagline   string
	HeroImage string
	Status    CampaignStatus
	StartAt   time.Time
	EndAt     time.Time
}

type CampaignStatus uint8

const (
	CampaignStatusUnknown CampaignStatus = iota
	CampaignStatusActive
	CampaignStatusEnded
)
