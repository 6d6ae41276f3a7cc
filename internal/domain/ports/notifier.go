package ports

// Event representa um evento de mudança no catálogo
type Event struct {
	Type     string `json:"type"`
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

// Notifier publica eventos de mudança para clientes interessados
// (ex: hub websocket de notificações)
type Notifier interface {
	Publish(event Event)
}
