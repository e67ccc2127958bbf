package socketio

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	socket "github.com/zishang520/socket.io/socket"

	jwtutil "github.com/Nour-Ali/NodeBB-nour/internal/utils/jwt"
)

// Server wraps the Socket.IO server used to push forum events to browsers.
type Server struct {
	io        *socket.Server
	logger    *slog.Logger
	jwtSecret string

	heartbeatStop chan struct{}
	heartbeatWG   sync.WaitGroup

	connMutex   sync.RWMutex
	connections map[string]*socket.Socket
}

// NewServer creates a Socket.IO server. Clients may connect anonymously;
// a token, when sent, must be valid and places the socket in its user room.
func NewServer(logger *slog.Logger, jwtSecret string) (*Server, error) {
	opts := socket.DefaultServerOptions()
	opts.SetPingTimeout(60 * time.Second)
	opts.SetPingInterval(25 * time.Second)
	opts.SetServeClient(false)
	opts.SetPath("/socket.io")

	s := &Server{
		io:          socket.NewServer(nil, opts),
		logger:      logger,
		jwtSecret:   jwtSecret,
		connections: make(map[string]*socket.Socket),
	}

	s.setupEventHandlers()
	s.startHeartbeat()

	return s, nil
}

// GetHandler returns the HTTP handler for Socket.IO.
func (s *Server) GetHandler() http.Handler {
	return s.io.ServeHandler(nil)
}

// Broadcast emits event to every connected client on this node.
func (s *Server) Broadcast(event string, payload any) error {
	return s.io.Local().Emit(event, payload)
}

// EmitToUser emits event to every socket authenticated as uid.
func (s *Server) EmitToUser(uid, event string, payload any) error {
	return s.io.Local().To(userRoom(uid)).Emit(event, payload)
}

// ConnectionCount reports the number of open sockets.
func (s *Server) ConnectionCount() int {
	s.connMutex.RLock()
	defer s.connMutex.RUnlock()
	return len(s.connections)
}

// Close shuts down the Socket.IO server.
func (s *Server) Close() error {
	if stop := s.heartbeatStop; stop != nil {
		close(stop)
		s.heartbeatWG.Wait()
		s.heartbeatStop = nil
	}

	done := make(chan struct{})
	s.io.Close(func() {
		close(done)
	})

	<-done
	return nil
}

func (s *Server) setupEventHandlers() {
	s.io.Use(s.connectionMiddleware)
	s.io.On("connection", func(args ...any) {
		sock, ok := args[0].(*socket.Socket)
		if !ok {
			s.logger.Error("unexpected connection payload", slog.Any("payload", args))
			return
		}
		s.handleConnection(sock)
	})
}

func (s *Server) connectionMiddleware(sock *socket.Socket, next func(*socket.ExtendedError)) {
	token := s.extractToken(sock)
	if token == "" || s.jwtSecret == "" {
		next(nil)
		return
	}

	claims, err := jwtutil.VerifyToken(token, s.jwtSecret)
	if err != nil {
		s.logger.Warn("socket connection rejected: invalid token", slog.String("error", err.Error()))
		next(socket.NewExtendedError("invalid token", map[string]any{"code": "INVALID_TOKEN"}))
		return
	}

	sock.SetData(claims.UID)
	next(nil)
}

func (s *Server) handleConnection(sock *socket.Socket) {
	id := s.socketID(sock)

	s.connMutex.Lock()
	s.connections[id] = sock
	s.connMutex.Unlock()

	uid := s.uidFromSocket(sock)
	if uid != "" {
		sock.Join(userRoom(uid))
	}

	s.logger.Debug("socket connected", slog.String("connId", id), slog.String("uid", uid))

	if err := sock.Emit("connectionConfirmed", map[string]any{
		"uid":       uid,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		s.logger.Warn("failed to emit connection confirmation", slog.String("error", err.Error()))
	}

	sock.On("disconnect", func(args ...any) {
		s.connMutex.Lock()
		delete(s.connections, id)
		s.connMutex.Unlock()
		s.logger.Debug("socket disconnected", slog.String("connId", id))
	})
}

func (s *Server) startHeartbeat() {
	s.heartbeatStop = make(chan struct{})
	s.heartbeatWG.Add(1)

	go func() {
		defer s.heartbeatWG.Done()
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sendHeartbeat()
			case <-s.heartbeatStop:
				return
			}
		}
	}()
}

func (s *Server) sendHeartbeat() {
	s.connMutex.RLock()
	sockets := make(map[string]*socket.Socket, len(s.connections))
	for id, sock := range s.connections {
		sockets[id] = sock
	}
	s.connMutex.RUnlock()

	timestamp := time.Now().UnixMilli()
	for id, sock := range sockets {
		if err := sock.Emit("ping", timestamp); err != nil {
			s.logger.Debug("heartbeat emit failed", slog.String("connId", id), slog.String("error", err.Error()))
		}
	}
}

func (s *Server) uidFromSocket(sock *socket.Socket) string {
	if sock == nil {
		return ""
	}
	uid, _ := sock.Data().(string)
	return uid
}

func (s *Server) extractToken(sock *socket.Socket) string {
	if sock == nil {
		return ""
	}

	if hs := sock.Handshake(); hs != nil {
		if hs.Query != nil {
			if token, ok := hs.Query.Get("token"); ok && token != "" {
				return token
			}
		}
		if authMap, ok := hs.Auth.(map[string]any); ok {
			if token, ok := authMap["token"].(string); ok {
				return token
			}
		}
	}

	return ""
}

func (s *Server) socketID(sock *socket.Socket) string {
	if sock == nil {
		return ""
	}
	return string(sock.Id())
}

func userRoom(uid string) socket.Room {
	return socket.Room("uid_" + uid)
}
