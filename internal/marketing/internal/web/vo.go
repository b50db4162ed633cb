package web

import (
	"time"

	"github.com/ecodeclub/careerhub/internal/marketing/internal/domain"
)

type JoinWaitlistReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Goal  string `json:"goal"`
}

type JoinWaitlistResp struct {
	Success bool `json:"success"`
}

type CoachApplicationReq struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Experience int    `json:"experience"`
	Bio        string `json:"bio"`
}

type CoachApplicationResp struct {
	Success bool `json:"success"`
}

type Campaign struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Tagline   string `json:"tagline,omitempty"`
	HeroImage string `json:"heroImage,omitempty"`
	StartAt   string `json:"startAt,omitempty"`
	EndAt     string `json:"endAt,omitempty"`
}

type CampaignList struct {
	Campaigns []Campaign `json:"campaigns"`
}

func newCampaign(c domain.Campaign) Campaign {
	res := Campaign{
		Slug:      c.Slug,
		Title:     c.Title,
		Tagline:   c.Tagline,
		HeroImage: c.HeroImage,
	}
	if !c.StartAt.IsZero() {
		res.StartAt = c.StartAt.Format(time.DateTime)
	}
	if !c.EndAt.IsZero() {
		res.EndAt = c.EndAt.Format(time.DateTime)
	}
	return res
}
