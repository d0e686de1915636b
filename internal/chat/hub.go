package chat

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"palu-board.backend/internal/config"
	"palu-board.backend/internal/domain/entities"
	"palu-board.backend/internal/domain/repositories"
)

// Hub owns the set of connected chat clients and fans messages out to them.
// All registry mutation happens in Run's loop; callers only touch the
// channels.
type Hub struct {
	logger *zap.Logger
	repo   repositories.ChatMessageRepository

	backlogLimit   int
	retentionLimit int

	clients   map[*Client]bool
	clientsMu sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	done chan struct{}
}

// NewHub creates a hub backed by the given message repository
func NewHub(repo repositories.ChatMessageRepository, cfg config.ChatConfig, logger *zap.Logger) *Hub {
	return &Hub{
		logger:         logger,
		repo:           repo,
		backlogLimit:   cfg.BacklogLimit,
		retentionLimit: cfg.RetentionLimit,
		clients:        make(map[*Client]bool),
		register:       make(chan *Client, 64),
		unregister:     make(chan *Client, 64),
		broadcast:      make(chan []byte, 256),
		done:           make(chan struct{}),
	}
}

// Run processes registry events until Stop is called
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.clientsMu.Unlock()

			h.sendBacklog(client)
			h.logger.Debug("chat client connected", zap.Int("total", total))

		case client := <-h.unregister:
			h.clientsMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			total := len(h.clients)
			h.clientsMu.Unlock()

			h.logger.Debug("chat client disconnected", zap.Int("total", total))

		case payload := <-h.broadcast:
			h.fanOut(payload)

		case <-h.done:
			h.closeAllClients()
			return
		}
	}
}

// Stop shuts the hub down and disconnects every client
func (h *Hub) Stop() {
	close(h.done)
}

// Register queues a client for registration
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister queues a client for removal
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// HandleInbound processes one raw client frame: validate, persist, prune the
// log to the retention limit, then broadcast to every connected client.
func (h *Hub) HandleInbound(ctx context.Context, client *Client, data []byte) {
	inbound, err := ParseInbound(data)
	if err != nil {
		h.sendError(client, "Invalid message format")
		return
	}

	if inbound.Type != MsgTypeChatMessage {
		h.sendError(client, "Unknown message type")
		return
	}

	text := strings.TrimSpace(inbound.Message)
	if text == "" {
		h.sendError(client, "Message is required")
		return
	}
	// Limits count characters, not bytes, so multibyte text is not
	// penalized and truncation never splits a rune.
	if utf8.RuneCountInString(text) > entities.MaxMessageLength {
		h.sendError(client, "Message too long")
		return
	}

	username := strings.TrimSpace(inbound.Username)
	if username == "" {
		username = GenerateUsername()
	}
	if utf8.RuneCountInString(username) > entities.MaxUsernameLength {
		username = string([]rune(username)[:entities.MaxUsernameLength])
	}

	msg := &entities.ChatMessage{
		Username: username,
		Message:  text,
		UserIP:   client.UserIP(),
	}
	if err := h.repo.Create(ctx, msg); err != nil {
		h.logger.Error("failed to persist chat message", zap.Error(err))
		h.sendError(client, "Failed to send message")
		return
	}

	if pruned, err := h.repo.PruneToRecent(ctx, h.retentionLimit); err != nil {
		h.logger.Warn("chat log prune failed", zap.Error(err))
	} else if pruned > 0 {
		h.logger.Debug("chat log pruned", zap.Int64("removed", pruned))
	}

	payload, err := NewMessagePayload(msg)
	if err != nil {
		h.logger.Error("failed to encode chat message", zap.Error(err))
		return
	}
	h.Broadcast(payload)
}

// Broadcast queues a payload for delivery to all clients
func (h *Hub) Broadcast(payload []byte) {
	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("chat broadcast channel full, dropping message")
	}
}

func (h *Hub) sendBacklog(client *Client) {
	messages, err := h.repo.GetRecent(context.Background(), h.backlogLimit)
	if err != nil {
		h.logger.Error("failed to load chat backlog", zap.Error(err))
		h.sendError(client, "Failed to load recent messages")
		return
	}

	payload, err := BacklogPayload(messages)
	if err != nil {
		h.logger.Error("failed to encode chat backlog", zap.Error(err))
		return
	}
	client.Send(payload)
}

func (h *Hub) sendError(client *Client, text string) {
	payload, err := ErrorPayload(text)
	if err != nil {
		return
	}
	client.Send(payload)
}

// fanOut delivers a payload to a snapshot of the registry so a slow client
// cannot block iteration.
func (h *Hub) fanOut(payload []byte) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.clientsMu.RUnlock()

	for _, client := range clients {
		if !client.Send(payload) {
			h.logger.Debug("dropped chat payload for slow or closed client")
		}
	}
}

func (h *Hub) closeAllClients() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}
