package chat

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"palu-board.backend/internal/config"
	"palu-board.backend/internal/domain/entities"
)

func TestHandler_ChatRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &chatRepoStub{}
	hub := NewHub(repo, config.ChatConfig{BacklogLimit: 50, RetentionLimit: 100}, zap.NewNop())
	go hub.Run()
	defer hub.Stop()

	r := gin.New()
	r.GET("/ws/chat", NewHandler(hub, zap.NewNop()).HandleConnection)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// Backlog arrives first.
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(payload), string(MsgTypeRecentMessages))

	require.NoError(t, conn.WriteJSON(InboundMessage{
		Type:     MsgTypeChatMessage,
		Username: "DiamondHodl9",
		Message:  "to the moon",
	}))

	_, payload, err = conn.ReadMessage()
	require.NoError(t, err)

	var frame struct {
		Type    MessageType           `json:"type"`
		Message *entities.ChatMessage `json:"message"`
	}
	require.NoError(t, json.Unmarshal(payload, &frame))
	assert.Equal(t, MsgTypeNewMessage, frame.Type)
	require.NotNil(t, frame.Message)
	assert.Equal(t, "to the moon", frame.Message.Message)
	assert.Equal(t, "DiamondHodl9", frame.Message.Username)
}
