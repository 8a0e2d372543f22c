package server

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"
	"zombies/utils"
	"zombies/world"

	"net/http/pprof"

	"nhooyr.io/websocket"
)

type subscriber struct {
	Messages chan []byte
	c        *websocket.Conn
}

// Server runs one simulation driven by the autopilot and streams every
// tick's state to websocket spectators.
type Server struct {
	cfg         *utils.Config
	logger      *slog.Logger
	subscribers map[*subscriber]struct{}
	mu          sync.RWMutex
	serveMux    http.ServeMux
	state       *world.World
	autopilot   *Autopilot
	history     *StateBuffer
}

func NewServer(cfg *utils.Config, logger *slog.Logger) *Server {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Server{
		cfg:         cfg,
		logger:      logger,
		subscribers: make(map[*subscriber]struct{}),
		state:       world.NewWorld(cfg.World, rand.New(rand.NewSource(seed)), logger),
		autopilot:   NewAutopilot(cfg.Server.AutopilotInterval),
		history:     NewStateBuffer(cfg.Server.History),
	}

	s.serveMux.HandleFunc("/", s.onConnection)
	s.serveMux.HandleFunc("/debug/pprof/", pprof.Index)
	s.serveMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	s.serveMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	s.serveMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	s.serveMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return s
}

// Start runs the tick loop until ctx is done.
func (s *Server) Start(ctx context.Context) {
	period := time.Second / time.Duration(s.cfg.Server.TickRate)
	go func() {
		tick := time.NewTicker(period)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				s.onTick(period.Seconds())
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *Server) onTick(dt float64) {
	frame := s.state.Update(dt, s.autopilot.Next(s.state, dt))
	for _, r := range frame.Requests {
		if d, ok := r.(world.DespawnRequest); ok && d.Kind == world.KindZombie {
			s.logger.Info("zombie down", "id", d.ID, "tick", frame.Tick)
		}
	}
	s.publish(frame.Tick, s.state.State().MarshalWire())
}

func (s *Server) addSubscriber(sub *subscriber) {
	s.mu.Lock()
	s.subscribers[sub] = struct{}{}
	s.history.ForEach(func(_ int64, msg []byte) {
		sub.Messages <- msg
	})
	s.mu.Unlock()
}

func (s *Server) removeSubscriber(sub *subscriber) {
	s.mu.Lock()
	delete(s.subscribers, sub)
	s.mu.Unlock()
}

func (s *Server) subscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serveMux.ServeHTTP(w, r)
}

func (s *Server) onConnection(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.Server.OriginPatterns,
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "")

	err = s.handleConnection(r.Context(), c)
	if errors.Is(err, context.Canceled) || websocket.CloseStatus(err) == websocket.StatusNormalClosure {
		return
	}
	if err != nil {
		log.Println(err)
	}
}

// handleConnection writes states to a spectator until it goes away.
// Spectators never send anything.
func (s *Server) handleConnection(ctx context.Context, c *websocket.Conn) error {
	ctx = c.CloseRead(ctx)
	sub := &subscriber{
		Messages: make(chan []byte, s.cfg.Server.History+64),
		c:        c,
	}
	s.addSubscriber(sub)
	defer s.removeSubscriber(sub)

	for {
		select {
		case msg := <-sub.Messages:
			if err := writeTimeout(ctx, time.Second*5, c, msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func writeTimeout(ctx context.Context, timeout time.Duration, c *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.Write(ctx, websocket.MessageBinary, msg)
}

// publish hands msg to every subscriber and keeps it for the ones still to
// join.
func (s *Server) publish(tick int64, msg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Add(tick, msg)
	for sub := range s.subscribers {
		select {
		case sub.Messages <- msg:
		default:
			go sub.c.Close(websocket.StatusPolicyViolation, "spectator too slow")
		}
	}
}

func Run(cfg *utils.Config, args []string) error {
	log.SetFlags(log.LstdFlags | log.Llongfile)
	address := cfg.Server.Address
	if len(args) > 1 {
		address = args[1]
	}
	l, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	log.Printf("Listening on http://%v", l.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	server := NewServer(cfg, utils.NewLogger(os.Stderr, cfg.Game.LogLevel))
	server.Start(ctx)

	s := &http.Server{
		Handler: server,
		// Spectator streams are hijacked and long lived, so only the
		// handshake is bounded.
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.Serve(l)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		log.Println(err)
	case sig := <-sigs:
		log.Printf("terminating: %v", sig)
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	return s.Shutdown(shutdownCtx)
}
