package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/realtime"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

var _ realtime.Notifier = (*Hub)(nil)

// sendBuffer mensajes encolados por cliente antes de considerarlo lento.
const sendBuffer = 256

// Feature hooks de un módulo sobre el ciclo de vida de las conexiones.
// OnConnect y OnDisconnect son opcionales.
type Feature struct {
	Name         string
	OnConnect    func(conn *websocket.Conn)
	OnDisconnect func(conn *websocket.Conn)
}

// Message envoltura de todo evento publicado por el canal.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// client conexión registrada. Todas las escrituras al socket pasan por la
// cola send y las ejecuta una única goroutine (writeLoop): websocket no
// admite escrituras concurrentes sobre la misma conexión.
type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

// Hub mantiene las conexiones websocket vivas y difunde eventos de entidad
// a todos los clientes. Implementa realtime.Notifier.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]*client
	features []Feature
	log      *logger.Logger
}

// NewHub construye el hub vacío.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
		log:     log,
	}
}

// Register agrega los hooks de un módulo. Debe llamarse antes de aceptar
// conexiones.
func (h *Hub) Register(f Feature) {
	h.features = append(h.features, f)
	h.log.Info().Str("feature", f.Name).Msg("feature de tiempo real registrada")
}

// ClientCount número de clientes conectados.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// UpgradeRequired middleware que rechaza con 426 las peticiones que no piden
// upgrade a websocket.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler acepta la conexión, la registra, lanza su goroutine de escritura y
// bloquea leyendo hasta que el cliente cierre. Los mensajes entrantes se
// descartan: el canal es solo de servidor a cliente.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		cl := h.add(conn)
		defer h.remove(cl)
		go h.writeLoop(cl)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

func (h *Hub) add(conn *websocket.Conn) *client {
	cl := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	h.mu.Lock()
	h.clients[conn] = cl
	h.mu.Unlock()
	h.log.Info().Str("remote", conn.RemoteAddr().String()).Msg("cliente CONNECTED")
	for _, f := range h.features {
		if f.OnConnect != nil {
			f.OnConnect(conn)
		}
	}
	return cl
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	delete(h.clients, cl.conn)
	h.mu.Unlock()
	close(cl.done)
	_ = cl.conn.Close()
	h.log.Info().Str("remote", cl.conn.RemoteAddr().String()).Msg("cliente DISCONNECTED")
	for _, f := range h.features {
		if f.OnDisconnect != nil {
			f.OnDisconnect(cl.conn)
		}
	}
}

// writeLoop drena la cola del cliente. Único punto de escritura sobre la
// conexión; al fallar cierra el socket, lo que desbloquea el read loop del
// Handler y dispara remove.
func (h *Hub) writeLoop(cl *client) {
	for {
		select {
		case payload := <-cl.send:
			if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.log.Warn().Err(err).Str("remote", cl.conn.RemoteAddr().String()).Msg("escritura fallida, expulsando cliente")
				_ = cl.conn.Close()
				return
			}
		case <-cl.done:
			return
		}
	}
}

// Publish serializa {event, data} y lo encola para todos los clientes. Los
// clientes con la cola llena se expulsan del hub.
func (h *Hub) Publish(event string, data any) {
	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("no se pudo serializar el evento")
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, cl := range h.clients {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		select {
		case cl.send <- payload:
		default:
			h.log.Warn().Str("remote", cl.conn.RemoteAddr().String()).Msg("cliente lento, expulsando")
			_ = cl.conn.Close()
		}
	}
}

// Saved notifica el alta o actualización de una entidad ("<entidad>:save").
func (h *Hub) Saved(entity string, payload any) {
	h.Publish(entity+":save", payload)
}

// Removed notifica la baja de una entidad ("<entidad>:remove").
func (h *Hub) Removed(entity string, id string) {
	h.Publish(entity+":remove", map[string]string{"id": id})
}
