package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	Unauthorized        failure.ErrorCode = "Unauthorized"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	CompanyNotFound    failure.ErrorCode = "CompanyNotFound"
	InvalidCompanyID   failure.ErrorCode = "InvalidCompanyID"
	InvalidCompany     failure.ErrorCode = "InvalidCompany"
	InvalidScores      failure.ErrorCode = "InvalidScores"
	InvalidChatRequest failure.ErrorCode = "InvalidChatRequest"
	InvalidFeedback    failure.ErrorCode = "InvalidFeedback"
	InvalidPaging      failure.ErrorCode = "InvalidPaging"
	ChatUpstreamError  failure.ErrorCode = "ChatUpstreamError"
)
