// Package server exposes the plant analysis over a websocket so interactive
// front ends can rerun it on every parameter change.
package server

import (
	"log/slog"
	"net/http"

	"github.com/energhx/adhtc/pkg/biomass"
	"github.com/energhx/adhtc/pkg/cycle"
	"github.com/gorilla/websocket"
)

// Analysis bundles one full plant evaluation: both cycles plus the biomass
// balance and the biogas supply check against the gas turbine's fuel demand.
type Analysis struct {
	Gas     cycle.GasResult   `json:"gas"`
	Steam   cycle.SteamResult `json:"steam"`
	Balance biomass.Balance   `json:"biomass"`
	Supply  biomass.Supply    `json:"supply"`
}

// Run evaluates the whole plant for one parameter set. Either everything
// succeeds or nothing is returned.
func Run(p cycle.Params) (Analysis, error) {
	g, err := cycle.EvaluateGas(p)
	if err != nil {
		return Analysis{}, err
	}
	s, err := cycle.EvaluateSteam(p)
	if err != nil {
		return Analysis{}, err
	}
	b := biomass.Evaluate(p)
	return Analysis{
		Gas:     g,
		Steam:   s,
		Balance: b,
		Supply:  b.Supply(g.FuelFlow, p.FuelLHV),
	}, nil
}

type errorReply struct {
	Error string `json:"error"`
}

// Server serves analyses over a websocket. Each inbound message is a JSON
// Params record; each reply is either an Analysis or an error object.
type Server struct {
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// New returns a Server logging through log. A nil log uses slog.Default.
func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the route table. Split out from ListenAndServe so tests can
// mount it on httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// ListenAndServe blocks serving websocket analyses on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	s.log.Info("client connected", "remote", conn.RemoteAddr())

	for {
		var p cycle.Params
		if err := conn.ReadJSON(&p); err != nil {
			s.log.Info("client gone", "remote", conn.RemoteAddr(), "err", err)
			return
		}
		a, err := Run(p)
		if err != nil {
			if werr := conn.WriteJSON(errorReply{Error: err.Error()}); werr != nil {
				s.log.Error("write failed", "err", werr)
				return
			}
			continue
		}
		if err := conn.WriteJSON(a); err != nil {
			s.log.Error("write failed", "err", err)
			return
		}
	}
}
