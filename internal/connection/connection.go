// Package connection implements the WebSocket connection handler: the
// per-connection upgrade, receive loop, and teardown.
package connection

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/streamgo-dev/streamgo/internal/orchestrator"
	"github.com/streamgo-dev/streamgo/internal/session"
	"github.com/streamgo-dev/streamgo/internal/wire"
)

// StreamPath is the well-known upgrade path.
const StreamPath = "/_stcore/stream"

const subprotocol = "streamlit"

// Handler upgrades connections on StreamPath and runs one session per
// connection.
type Handler struct {
	UserFunc         orchestrator.UserFunc
	ActiveScriptHash string
	AllowedOrigins   []string
	Log              *zap.Logger

	upgrader websocket.Upgrader
}

// New builds a Handler. allowedOrigins of ["*"] accepts every origin.
func New(activeScriptHash string, userFn orchestrator.UserFunc, allowedOrigins []string, log *zap.Logger) *Handler {
	h := &Handler{
		UserFunc:         userFn,
		ActiveScriptHash: activeScriptHash,
		AllowedOrigins:   allowedOrigins,
		Log:              log,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin:      h.checkOrigin,
		Subprotocols:     []string{subprotocol},
		HandshakeTimeout: 10 * time.Second,
	}
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	for _, o := range h.AllowedOrigins {
		if o == "*" {
			return true
		}
		if o == r.Header.Get("Origin") {
			return true
		}
	}
	return len(h.AllowedOrigins) == 0
}

// ServeHTTP performs the upgrade, echoing the "streamlit" subprotocol
// when offered, and runs the connection's receive loop until the
// socket closes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sess := session.New(h.ActiveScriptHash)
	log := h.Log.With(zap.String("session_id", sess.ID))
	sink := &connSink{conn: conn}

	orch := orchestrator.New(sess, sink, h.UserFunc, log)
	log.Info("session started")

	// The orchestrator actor and the inbound decode loop run as two
	// independent tasks of the same connection: the inbound loop suspends
	// only on the socket's next-message read, while the render pipeline
	// suspends only on writes to the outbound sink. A long user function
	// never blocks StopScript or AppHeartbeat from being observed.
	var g errgroup.Group
	g.Go(func() error {
		orch.Run()
		return nil
	})
	g.Go(func() error {
		defer orch.Close()
		for {
			mt, data, err := conn.ReadMessage()
			if err != nil {
				log.Info("connection closed", zap.Error(err))
				return nil
			}

			switch mt {
			case websocket.BinaryMessage:
				h.handleBackMessage(sess, orch, conn, log, data)
			case websocket.TextMessage:
				log.Debug("ignoring text frame; protocol is binary")
			}
		}
	})
	g.Wait()
}

func (h *Handler) handleBackMessage(sess *session.Session, orch *orchestrator.Orchestrator, conn *websocket.Conn, log *zap.Logger, data []byte) {
	msg, err := wire.DecodeBack(data)
	if err != nil {
		log.Warn("dropping undecodable back-message", zap.Error(err))
		return
	}

	switch msg.Kind {
	case wire.BackRerunScript:
		// Ingestion happens here, before RequestRerun returns, so the
		// next run started by the actor always sees it: widget-state
		// updates from back-message N are visible to run N+1 and no
		// earlier.
		sess.Ingest(msg.WidgetStates)
		orch.RequestRerun()
	case wire.BackStopScript:
		orch.Stop()
	case wire.BackClearCache:
		// Reset only; an implicit rerun is not synthesized here. The
		// client is expected to issue its own rerun afterward.
		sess.ClearAll()
	case wire.BackAppHeartbeat:
	case wire.BackDebugDisconnectWebsocket:
		conn.Close()
	case wire.BackDebugShutdownRuntime:
		log.Warn("debug shutdown requested; closing connection only")
		conn.Close()
	}
}

// connSink adapts a *websocket.Conn to wire.Sink, serializing writes
// behind a mutex since gorilla/websocket connections are not safe for
// concurrent writers.
type connSink struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *connSink) Send(msg *wire.ForwardMessage) error {
	data, err := wire.EncodeForward(msg)
	if err != nil {
		return wire.Wrap(wire.KindInternalEncode, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.BinaryMessage, data)
}
