package errs

var (
	SystemError        = ErrorCode{Code: 513001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 413001, Msg: "参数错误"}
	AssessmentNotFound = ErrorCode{Code: 413002, Msg: "测评记录不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
