package lifecycle

import (
	"errors"
	"fmt"

	"github.com/campus-aid/campus-aid-api/schema"
)

// Error categories. Concrete errors wrap one of these so callers can
// classify with errors.Is and map to a response without string matching.
var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNotFound         = errors.New("not found")
)

var (
	ErrSelfAccept      = fmt.Errorf("%w: cannot accept own request", ErrInvalidOperation)
	ErrAlreadyAccepted = fmt.Errorf("%w: already accepted", ErrInvalidOperation)
	ErrNotAMember      = fmt.Errorf("%w: not a member of this chat", ErrInvalidOperation)
	ErrChatClosed      = fmt.Errorf("%w: chat is finalized", ErrInvalidOperation)
	ErrChatMismatch    = fmt.Errorf("%w: chat does not belong to this request", ErrInvalidOperation)

	ErrEmptyMessage   = fmt.Errorf("%w: message is empty", ErrValidation)
	ErrMessageTooLong = fmt.Errorf("%w: message exceeds %d characters", ErrValidation, schema.MaxChatMessageLength)

	ErrRequestNotFound = fmt.Errorf("%w: help request", ErrNotFound)
	ErrChatNotFound    = fmt.Errorf("%w: chat", ErrNotFound)
)
