package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/biblioteca-backend/internal/domain/ports"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// A política de origem é aplicada pelo middleware CORS da API
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub distribui eventos de mudança do catálogo para clientes websocket
// Implementa ports.Notifier
type Hub struct {
	logger ports.Logger

	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Publish envia um evento para todos os clientes conectados
// Clientes com escrita falhada são desconectados
func (h *Hub) Publish(event ports.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warn("dropping websocket client", "error", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Handle atende a rota websocket de notificações
// A conexão fica aberta até o cliente desconectar
func (h *Hub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.register(conn)
	h.logger.Info("websocket client connected", "remote_addr", conn.RemoteAddr().String())

	// Loop de leitura só para detectar desconexão; mensagens recebidas
	// são descartadas
	go func() {
		defer func() {
			h.unregister(conn)
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Close desconecta todos os clientes
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}
