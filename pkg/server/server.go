package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/acfield/internal/logger"
	"github.com/bastiangx/acfield/pkg/autocomplete"
	"github.com/bastiangx/acfield/pkg/geometry"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrUnknownEvent is reported for events with an unsupported type.
var ErrUnknownEvent = errors.New("unknown event type")

// remoteHost stands in for the client's field: it answers geometry
// queries from the last metrics event and records commands for the reply.
type remoteHost struct {
	autocomplete.Recorder
	metrics Metrics
}

func (h *remoteHost) CharWidth() float64  { return h.metrics.CharWidth }
func (h *remoteHost) CharHeight() float64 { return h.metrics.CharHeight }
func (h *remoteHost) FieldScreenPosition() geometry.Point {
	return geometry.Point{X: h.metrics.FieldX, Y: h.metrics.FieldY}
}
func (h *remoteHost) FieldSize() geometry.Size {
	return geometry.Size{Width: h.metrics.FieldWidth, Height: h.metrics.FieldHeight}
}
func (h *remoteHost) ScreenHeight() float64 { return h.metrics.ScreenHeight }

// Server handles the IPC for one autocomplete field.
type Server struct {
	host *remoteHost
	ctl  *autocomplete.Controller
	dec  *msgpack.Decoder
	enc  *msgpack.Encoder
	log  *log.Logger
}

// NewServer creates a server for a field completing against words.
func NewServer(words []string, cfg autocomplete.Config, r io.Reader, w io.Writer) *Server {
	host := &remoteHost{metrics: Metrics{CharWidth: 1, CharHeight: 1}}
	l := logger.New("server")
	return &Server{
		host: host,
		ctl:  autocomplete.New(host, words, cfg, autocomplete.WithLogger(logger.New("field"))),
		dec:  msgpack.NewDecoder(r),
		enc:  msgpack.NewEncoder(w),
		log:  l,
	}
}

// Controller returns the field controller, e.g. to read the vocabulary on
// shutdown.
func (s *Server) Controller() *autocomplete.Controller {
	return s.ctl
}

// Start signals readiness and serves events until the input ends.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")
	if err := s.enc.Encode(StatusResponse{Status: "ready"}); err != nil {
		return fmt.Errorf("failed to send ready status: %w", err)
	}

	for {
		var ev Event
		if err := s.dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client disconnected (EOF)")
				return nil
			}
			s.log.Errorf("Decoding event: %v", err)
			s.sendError("", "invalid msgpack event", 400)
			return fmt.Errorf("failed to decode event: %w", err)
		}

		if err := s.handleEvent(ev); err != nil {
			if errors.Is(err, ErrUnknownEvent) {
				s.sendError(ev.ID, err.Error(), 400)
				continue
			}
			return err
		}
	}
}

// handleEvent runs one event through the controller and writes the reply.
func (s *Server) handleEvent(ev Event) error {
	start := time.Now()
	resp := Response{ID: ev.ID}

	switch ev.Type {
	case "metrics":
		if ev.Metrics == nil {
			s.sendError(ev.ID, "missing 'metrics' field", 400)
			return nil
		}
		s.host.metrics = *ev.Metrics
	case "text":
		s.ctl.TextChanged(ev.Text)
	case "key":
		resp.Consumed = s.ctl.KeyDown(autocomplete.ParseKey(ev.Key))
	case "focus":
		s.ctl.FocusGained()
	case "blur":
		s.ctl.FocusLost()
	case "vocab":
		resp.Vocab = s.ctl.Vocabulary()
	default:
		s.host.Take()
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}

	resp.Commands = s.host.Take()
	resp.State = s.ctl.State().State.String()
	resp.TimeTaken = time.Since(start).Microseconds()
	s.log.Debug("Handled event", "id", ev.ID, "type", ev.Type, "cmds", len(resp.Commands))

	if err := s.enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	if err := s.enc.Encode(ErrorResponse{ID: id, Error: message, Code: code}); err != nil {
		s.log.Errorf("Encoding error response: %v", err)
	}
}
