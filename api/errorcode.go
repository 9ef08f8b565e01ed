package api

import "github.com/campus-aid/campus-aid-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrHelpRequestNotFound.Error(),
		1101: store.ErrHelpRequestNotOpen.Error(),
		1102: "cannot accept own request",
		1103: store.ErrInvalidHelpRequest.Error(),

		1200: store.ErrChatNotFound.Error(),
		1201: "not a member of this chat",
		1202: store.ErrChatFinalized.Error(),
		1203: store.ErrEmptyMessage.Error(),
		1204: store.ErrMessageTooLong.Error(),

		1300: store.ErrQuestionNotFound.Error(),
		1301: store.ErrInvalidQuestion.Error(),
		1302: store.ErrInvalidAnswer.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorHelpRequestNotFound = errorJSON(1100)
	errorHelpRequestNotOpen  = errorJSON(1101)
	errorAcceptOwnRequest    = errorJSON(1102)
	errorInvalidHelpRequest  = errorJSON(1103)

	errorChatNotFound   = errorJSON(1200)
	errorNotChatMember  = errorJSON(1201)
	errorChatFinalized  = errorJSON(1202)
	errorEmptyMessage   = errorJSON(1203)
	errorMessageTooLong = errorJSON(1204)

	errorQuestionNotFound = errorJSON(1300)
	errorInvalidQuestion  = errorJSON(1301)
	errorInvalidAnswer    = errorJSON(1302)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
