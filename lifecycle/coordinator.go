package lifecycle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/campus-aid/campus-aid-api/schema"
	"github.com/campus-aid/campus-aid-api/store"
)

// Coordinator drives the request/chat state machine across the two
// collections: Open (request active, no chat) -> Negotiating (request
// accepted, chat active) -> Closed (both finalized). It is the only
// component allowed to move a pair between states.
//
// The two writes of Accept and Finalize touch independent documents and
// are not one atomic unit. Each write is conditional on the current
// status, so a concurrent caller loses cleanly instead of overwriting,
// and Reconcile repairs a pair left half-moved by a failure between the
// two writes.
type Coordinator struct {
	requests store.HelpRequestOperator
	chats    store.ChatOperator
}

func New(requests store.HelpRequestOperator, chats store.ChatOperator) *Coordinator {
	return &Coordinator{
		requests: requests,
		chats:    chats,
	}
}

// Accept commits the actor as the helper of a request, creating the
// private chat between the two parties, and returns the chat the actor
// should be directed to.
//
// A request that is still `active` but already has a chat is a known
// inconsistency (the request update failed after the chat creation
// succeeded). Accept treats that case as resume: the original helper
// gets the existing chat back and the request is advanced to `accepted`.
func (co *Coordinator) Accept(requestID string, actor schema.Identity) (*schema.Chat, error) {
	request, err := co.requests.GetHelpRequest(requestID)
	if err != nil {
		if err == store.ErrHelpRequestNotFound {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("accept help request: %w", err)
	}

	if request.RequesterID == actor.ID {
		return nil, ErrSelfAccept
	}

	chat, err := co.chats.GetChatByRequest(requestID)
	switch err {
	case nil:
		return co.resumeAccept(request, chat, actor)
	case store.ErrChatNotFound:
		// no chat yet, the normal path below
	default:
		return nil, fmt.Errorf("accept help request: %w", err)
	}

	if request.Inactive() {
		return nil, ErrAlreadyAccepted
	}

	chat, err = co.chats.CreateChat(requestID, request.Title, requesterIdentity(request), actor)
	if err != nil {
		if err == store.ErrChatExists {
			// lost the duplicate-creation race to another helper
			return nil, ErrAlreadyAccepted
		}
		return nil, fmt.Errorf("create chat: %w", err)
	}

	if err := co.requests.SetHelpRequestAccepted(requestID, actor, chat.ID.Hex()); err != nil {
		if err == store.ErrHelpRequestNotOpen {
			// the chat above is now orphaned; Reconcile picks it up
			return nil, ErrAlreadyAccepted
		}
		// no rollback of the created chat; Reconcile repairs the pair
		return nil, fmt.Errorf("update help request: %w", err)
	}

	return chat, nil
}

// resumeAccept handles an Accept call for a request that already has a
// chat. The current helper is directed back into the chat; everyone
// else is told the request is taken.
func (co *Coordinator) resumeAccept(request *schema.HelpRequest, chat *schema.Chat, actor schema.Identity) (*schema.Chat, error) {
	if !chat.HasMember(actor.ID) {
		return nil, ErrAlreadyAccepted
	}

	if request.Status == schema.HelpStatusActive {
		// repair the half-completed accept before handing the chat back
		if err := co.requests.SetHelpRequestAccepted(request.ID.Hex(), actor, chat.ID.Hex()); err != nil {
			if err != store.ErrHelpRequestNotOpen {
				return nil, fmt.Errorf("update help request: %w", err)
			}
		}
	}

	return chat, nil
}

// SendMessage appends one message to a chat on behalf of a member. The
// request side is untouched.
func (co *Coordinator) SendMessage(chatID, text string, actor schema.Identity) (*schema.ChatMessage, error) {
	// mirror the store-side validation before any round-trip
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(trimmed) > schema.MaxChatMessageLength {
		return nil, ErrMessageTooLong
	}

	chat, err := co.chats.GetChat(chatID)
	if err != nil {
		if err == store.ErrChatNotFound {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("send message: %w", err)
	}

	if !chat.HasMember(actor.ID) {
		return nil, ErrNotAMember
	}

	message, err := co.chats.AppendChatMessage(chatID, text, actor)
	switch err {
	case nil:
		return message, nil
	case store.ErrChatNotFound:
		return nil, ErrChatNotFound
	case store.ErrChatFinalized:
		return nil, ErrChatClosed
	case store.ErrEmptyMessage:
		return nil, ErrEmptyMessage
	case store.ErrMessageTooLong:
		return nil, ErrMessageTooLong
	default:
		return nil, fmt.Errorf("send message: %w", err)
	}
}

// Finalize closes a request/chat pair. Either member may finalize. The
// chat goes first so that a failure between the two writes leaves the
// chat read-only; Reconcile later advances the request.
func (co *Coordinator) Finalize(requestID, chatID string, actor schema.Identity) error {
	chat, err := co.chats.GetChat(chatID)
	if err != nil {
		if err == store.ErrChatNotFound {
			return ErrChatNotFound
		}
		return fmt.Errorf("finalize: %w", err)
	}

	if !chat.HasMember(actor.ID) {
		return ErrNotAMember
	}
	if chat.RequestID != requestID {
		return ErrChatMismatch
	}

	if err := co.chats.SetChatFinalized(chatID); err != nil {
		return fmt.Errorf("finalize chat: %w", err)
	}

	if err := co.requests.SetHelpRequestFinalized(requestID); err != nil {
		if err == store.ErrHelpRequestNotFound {
			return ErrRequestNotFound
		}
		return fmt.Errorf("finalize help request: %w", err)
	}

	return nil
}

// Reconcile is the generalized repair pass over half-moved pairs. It is
// run opportunistically by the background worker.
//
// Two inconsistencies can be produced by a failure between the two
// writes of Accept or Finalize:
//   - a chat exists while its request is still `active`
//   - a chat is `finalized` while its request is still `accepted`
//
// Both are repaired by re-issuing the missing request-side write.
func (co *Coordinator) Reconcile() error {
	active, err := co.requests.ListHelpRequestsByStatus(schema.HelpStatusActive)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	for _, request := range active {
		chat, err := co.chats.GetChatByRequest(request.ID.Hex())
		if err == store.ErrChatNotFound {
			continue
		}
		if err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}

		helper, ok := chatHelper(&request, chat)
		if !ok {
			log.WithField("prefix", "lifecycle").
				WithField("chat_id", chat.ID.Hex()).
				Warn("chat has no member besides the requester, skipping repair")
			continue
		}

		if err := co.requests.SetHelpRequestAccepted(request.ID.Hex(), helper, chat.ID.Hex()); err != nil && err != store.ErrHelpRequestNotOpen {
			return fmt.Errorf("reconcile: %w", err)
		}
		log.WithField("prefix", "lifecycle").
			WithField("request_id", request.ID.Hex()).
			Info("repaired half-accepted help request")
	}

	accepted, err := co.requests.ListHelpRequestsByStatus(schema.HelpStatusAccepted)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	for _, request := range accepted {
		if request.ChatID == "" {
			continue
		}
		chat, err := co.chats.GetChat(request.ChatID)
		if err == store.ErrChatNotFound {
			log.WithField("prefix", "lifecycle").
				WithField("request_id", request.ID.Hex()).
				Warn("accepted request references a missing chat")
			continue
		}
		if err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}

		if chat.Status != schema.ChatStatusFinalized {
			continue
		}

		if err := co.requests.SetHelpRequestFinalized(request.ID.Hex()); err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}
		log.WithField("prefix", "lifecycle").
			WithField("request_id", request.ID.Hex()).
			Info("repaired half-finalized help request")
	}

	return nil
}

func requesterIdentity(request *schema.HelpRequest) schema.Identity {
	return schema.Identity{
		ID:    request.RequesterID,
		Name:  request.RequesterName,
		Email: request.RequesterEmail,
	}
}

// chatHelper extracts the non-requester member of a chat as the helper
// identity for a request-side repair.
func chatHelper(request *schema.HelpRequest, chat *schema.Chat) (schema.Identity, bool) {
	for _, id := range chat.Members {
		if id != request.RequesterID {
			return schema.Identity{
				ID:    id,
				Name:  chat.MemberNames[id],
				Email: chat.MemberEmails[id],
			}, true
		}
	}
	return schema.Identity{}, false
}
