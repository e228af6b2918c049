package live

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zhouzirui/shopfront/backend/internal/service/search"
	"github.com/zhouzirui/shopfront/backend/pkg/utils"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 25 * time.Second
	writeTimeout = 10 * time.Second
)

// Path is where the live search socket is mounted.
const Path = "/search/live"

// Handler answers search queries over a websocket, one reply per frame.
type Handler struct {
	search   *search.Service
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates the live search handler.
func New(searchSvc *search.Service, logger *zap.Logger) *Handler {
	return &Handler{
		search: searchSvc,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the socket at Path.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get(Path, h.handleWebSocket)
}

type queryMessage struct {
	Name string `json:"name"`
}

type errorMessage struct {
	Error string `json:"error"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	// Control frames may be written concurrently with data frames, so the
	// ping loop only uses WriteControl.
	go h.pingLoop(ctx, conn)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		if msgType != websocket.TextMessage {
			h.send(conn, errorMessage{Error: "text frames only"})
			continue
		}

		result := h.search.Search(ctx, parseQuery(data))
		if !h.send(conn, result) {
			return
		}
	}
}

// parseQuery accepts {"name": "..."} or a bare query string.
func parseQuery(data []byte) string {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var msg queryMessage
		if err := utils.DecodeJSON(data, &msg); err == nil {
			return msg.Name
		}
	}
	return string(data)
}

func (h *Handler) send(conn *websocket.Conn, payload interface{}) bool {
	data, err := utils.EncodeJSON(payload)
	if err != nil {
		h.logger.Error("encode live search reply", zap.Error(err))
		data = []byte(`{"error":"internal error"}`)
	}

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.logger.Debug("websocket write failed", zap.Error(err))
		return false
	}
	return true
}

func (h *Handler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
