package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/campus-aid/campus-aid-api/schema"
	"github.com/campus-aid/campus-aid-api/store"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// watchHelpRequests pushes the live active-request listing, optionally
// restricted to one category, until the client disconnects.
func (s *Server) watchHelpRequests(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !schema.IsValidHelpCategory(category) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	s.serveFeed(c, func(ctx context.Context) (<-chan interface{}, error) {
		feed, err := s.mongoStore.WatchActiveHelpRequests(ctx, category)
		if err != nil {
			return nil, err
		}

		out := make(chan interface{})
		go func() {
			defer close(out)
			for snapshot := range feed {
				select {
				case out <- snapshot:
				case <-ctx.Done():
					return
				}
			}
		}()
		return out, nil
	})
}

// watchChat pushes the full chat document on every change. Only the
// two members may subscribe.
func (s *Server) watchChat(c *gin.Context) {
	user := currentUser(c)
	chatID := c.Param("chatID")

	chat, err := s.mongoStore.GetChat(chatID)
	if err != nil {
		if err == store.ErrChatNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorChatNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if !chat.HasMember(user.ID) {
		abortWithEncoding(c, http.StatusForbidden, errorNotChatMember)
		return
	}

	s.serveFeed(c, func(ctx context.Context) (<-chan interface{}, error) {
		feed, err := s.mongoStore.WatchChat(ctx, chatID)
		if err != nil {
			return nil, err
		}

		out := make(chan interface{})
		go func() {
			defer close(out)
			for snapshot := range feed {
				select {
				case out <- snapshot:
				case <-ctx.Done():
					return
				}
			}
		}()
		return out, nil
	})
}

// watchMyChats pushes the live list of the caller's chats; it drives
// the process-wide inbox overlay.
func (s *Server) watchMyChats(c *gin.Context) {
	user := currentUser(c)

	s.serveFeed(c, func(ctx context.Context) (<-chan interface{}, error) {
		feed, err := s.mongoStore.WatchUserChats(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		out := make(chan interface{})
		go func() {
			defer close(out)
			for snapshot := range feed {
				select {
				case out <- snapshot:
				case <-ctx.Done():
					return
				}
			}
		}()
		return out, nil
	})
}

// serveFeed upgrades the connection and mirrors a store subscription
// into it. Closing the socket cancels the subscription and releases the
// server-side change stream; a dead peer is detected by the ping/pong
// deadline.
func (s *Server) serveFeed(c *gin.Context, open func(ctx context.Context) (<-chan interface{}, error)) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed, err := open(ctx)
	if err != nil {
		log.WithError(err).Error("open live feed")
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "subscription failed"),
			time.Now().Add(wsWriteWait))
		return
	}

	// the read pump only consumes control frames; any read error means
	// the peer is gone and the subscription must be released
	go func() {
		defer cancel()
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case snapshot, ok := <-feed:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(wsWriteWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(snapshot); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
