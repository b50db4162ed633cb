package web

import (
	"github.com/ecodeclub/careerhub/internal/marketing/internal/errs"
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
	duplicatedEmailResult = ginx.Result{
		Code: errs.DuplicatedEmail.Code,
		Msg:  errs.DuplicatedEmail.Msg,
	}
)
