package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-aid/campus-aid-api/store"
)

// listMyChats returns every chat the caller belongs to; it backs the
// cross-request inbox overlay
func (s *Server) listMyChats(c *gin.Context) {
	user := currentUser(c)

	chats, err := s.mongoStore.ListUserChats(user.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

func (s *Server) getChat(c *gin.Context) {
	user := currentUser(c)

	chat, err := s.mongoStore.GetChat(c.Param("chatID"))
	if err != nil {
		if err == store.ErrChatNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorChatNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// only the two members may read a chat
	if !chat.HasMember(user.ID) {
		abortWithEncoding(c, http.StatusForbidden, errorNotChatMember)
		return
	}

	c.JSON(http.StatusOK, chat)
}

func (s *Server) sendChatMessage(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		Message string `json:"message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	message, err := s.coordinator.SendMessage(c.Param("chatID"), params.Message, user)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}
