package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-aid/campus-aid-api/lifecycle"
	"github.com/campus-aid/campus-aid-api/schema"
	"github.com/campus-aid/campus-aid-api/store"
)

// createHelpRequest is the API for posting a new need
func (s *Server) createHelpRequest(c *gin.Context) {
	user := currentUser(c)

	var params store.HelpRequestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	help, err := s.mongoStore.CreateHelpRequest(user, params)
	if err != nil {
		if err == store.ErrInvalidHelpRequest {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidHelpRequest, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, help)
}

// listHelpRequests returns the point-in-time active listing; the live
// variant of the same query is /api/ws/help-requests
func (s *Server) listHelpRequests(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !schema.IsValidHelpCategory(category) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	helps, err := s.mongoStore.ListActiveHelpRequests(category)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"help_requests": helps})
}

func (s *Server) getHelpRequest(c *gin.Context) {
	help, err := s.mongoStore.GetHelpRequest(c.Param("requestID"))
	if err != nil {
		if err == store.ErrHelpRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorHelpRequestNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, help)
}

// deleteHelpRequest removes a posted request; only its requester may do so
func (s *Server) deleteHelpRequest(c *gin.Context) {
	user := currentUser(c)

	if err := s.mongoStore.DeleteHelpRequest(c.Param("requestID"), user.ID); err != nil {
		if err == store.ErrHelpRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorHelpRequestNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// acceptHelpRequest is the API for committing to help; it returns the
// chat the helper is directed into
func (s *Server) acceptHelpRequest(c *gin.Context) {
	user := currentUser(c)

	chat, err := s.coordinator.Accept(c.Param("requestID"), user)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, chat)
}

// finalizeHelpRequest closes the request and its chat for both parties
func (s *Server) finalizeHelpRequest(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		ChatID string `json:"chat_id"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.coordinator.Finalize(c.Param("requestID"), params.ChatID, user); err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// abortWithLifecycleError maps a coordinator error onto the error-code
// table. Unclassified errors are persistence failures the client may
// retry.
func abortWithLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrSelfAccept):
		abortWithEncoding(c, http.StatusForbidden, errorAcceptOwnRequest, err)
	case errors.Is(err, lifecycle.ErrAlreadyAccepted):
		abortWithEncoding(c, http.StatusConflict, errorHelpRequestNotOpen, err)
	case errors.Is(err, lifecycle.ErrChatClosed):
		abortWithEncoding(c, http.StatusConflict, errorChatFinalized, err)
	case errors.Is(err, lifecycle.ErrNotAMember):
		abortWithEncoding(c, http.StatusForbidden, errorNotChatMember, err)
	case errors.Is(err, lifecycle.ErrChatMismatch):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
	case errors.Is(err, lifecycle.ErrEmptyMessage):
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyMessage, err)
	case errors.Is(err, lifecycle.ErrMessageTooLong):
		abortWithEncoding(c, http.StatusBadRequest, errorMessageTooLong, err)
	case errors.Is(err, lifecycle.ErrRequestNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorHelpRequestNotFound, err)
	case errors.Is(err, lifecycle.ErrChatNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorChatNotFound, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
