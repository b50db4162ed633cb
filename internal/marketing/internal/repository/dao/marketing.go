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

	"github.com/ego-component/egorm"
	mysqlDriver "github.com/go-sql-driver/mysql"
)

var ErrDuplicatedEmail = errors.New("邮箱已经登记过")

const uniqueIndexErrNo uint16 = 1062

//go:generate mockgen -source=./marketing.go -package=daomocks -destination=./mocks/marketing.mock.go MarketingDAO
type MarketingDAO interface {
	CreateWaitlistEntry(ctx context.Context, entry WaitlistEntry) (WaitlistEntry, error)
	CreateCoachApplication(ctx context.Context, app CoachApplication) (CoachApplication, error)
	ListActiveCampaigns(ctx context.Context) ([]Campaign, error)
}

type GORMMarketingDAO struct {
	db *egorm.Component
}

func NewGORMMarketingDAO(db *egorm.Component) MarketingDAO {
	return &GORMMarketingDAO{db: db}
}

func (g *GORMMarketingDAO) CreateWaitlistEntry(ctx context.Context, entry WaitlistEntry) (WaitlistEntry, error) {
	entry.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&entry).Error
	if err != nil {
		var me *mysqlDriver.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return WaitlistEntry{}, ErrDuplicatedEmail
		}
		return WaitlistEntry{}, err
	}
	return entry, nil
}

func (g *GORMMarketingDAO) CreateCoachApplication(ctx context.Context, app CoachApplication) (CoachApplication, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := g.db.WithContext(ctx).Create(&app).Error
	if err != nil {
		var me *mysqlDriver.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return CoachApplication{}, ErrDuplicatedEmail
		}
		return CoachApplication{}, err
	}
	return app, nil
}

func (g *GORMMarketingDAO) ListActiveCampaigns(ctx context.Context) ([]Campaign, error) {
	var res []Campaign
	err := g.db.WithContext(ctx).
		Where("status = ?", CampaignStatusActive).
		Order("start_at DESC").
		Find(&res).Error
	return res, err
}

type WaitlistEntry struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_waitlist_email"`
	Name  string `gorm:"type:varchar(255);not null;default:''"`
	Goal  string `gorm:"type:text"`
	Ctime int64
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}

type CoachApplication struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	Email      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_coach_email"`
	Name       string `gorm:"type:varchar(255);not null;default:''"`
	Specialty  string `gorm:"type:varchar(255)"`
	Experience int    `gorm:"type:int;not null;default:0;comment:从业年限"`
	Bio        string `gorm:"type:text"`
	Status     uint8  `gorm:"type:tinyint(3);not null;default:0;index:idx_status;comment:0-待审核 1-通过 2-拒绝"`
	Ctime      int64
	Utime      int64
}

func (CoachApplication) TableName() string {
	return "coach_applications"
}

const CampaignStatusActive uint8 = 1

type Campaign struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Slug      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_campaign_slug"`
	Title     string `gorm:"type:varchar(512);not null"`
	Tagline   string `gorm:"type:varchar(512)"`
	HeroImage string `gorm:"type:varchar(1024)"`
	Status    uint8  `gorm:"type:tinyint(3);not null;default:1;index:idx_campaign_status;comment:1-进行中 2-已结束"`
	StartAt   int64  `gorm:"index"`
	EndAt     int64
}

func (Campaign) TableName() string {
	return "campaigns"
}
