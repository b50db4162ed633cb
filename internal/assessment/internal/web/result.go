package web

import (
	"github.com/ecodeclub/careerhub/internal/assessment/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	assessmentNotFoundResult = ginx.Result{
		Code: errs.AssessmentNotFound.Code,
		Msg:  errs.AssessmentNotFound.Msg,
	}
)
