package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatSVG:  "image/svg+xml",
}

// healthBody is the JSON shape of GET /healthz.
type healthBody struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// validateBody summarizes an accepted room graph.
type validateBody struct {
	Valid       bool `json:"valid"`
	Width       int  `json:"width"`
	Height      int  `json:"height"`
	Rooms       int  `json:"rooms"`
	Connections int  `json:"connections"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, errors.HTTPStatus(err), errorBody{
		Code:      code,
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	})
}

func errNotFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}

func errMethod(method, path string) error {
	return errors.New(errors.ErrCodeMethodNotAllowed, "%s not allowed on %s", method, path)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	g, err := pipeline.Parse(r.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, validateBody{
		Valid:       true,
		Width:       g.Width,
		Height:      g.Height,
		Rooms:       len(g.Rooms),
		Connections: len(g.Pairs()),
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	opts, format, err := s.parseOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	g, err := pipeline.Parse(r.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), g, opts)
	if err != nil {
		s.logger.Warn("generation failed", "id", RequestID(r.Context()), "error", err)
		writeError(w, r, err)
		return
	}

	cached := "miss"
	if result.CacheInfo.GenerateHit {
		cached = "hit"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cached)
	w.Header().Set("X-Seed", strconv.FormatUint(opts.Seed, 10))
	w.Header().Set("X-Rooms-Placed", strconv.Itoa(result.Stats.Placed))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Artifacts[format]); err != nil {
		s.logger.Debug("write response", "error", err)
	}
}

// parseOptions reads generation options from the query string. A single
// output format is returned, json by default.
func (s *Server) parseOptions(r *http.Request) (pipeline.Options, string, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Style:     q.Get("style"),
		Hint:      q.Get("hint"),
		DoorWidth: s.cfg.DoorWidth,
		Budget:    s.cfg.Budget,
		Theme:     s.cfg.Theme,
		Logger:    s.logger,
	}

	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "seed %q is not an unsigned integer", v)
		}
		opts.Seed = seed
	}
	if v := q.Get("door_width"); v != "" {
		dw, err := strconv.Atoi(v)
		if err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "door_width %q is not an integer", v)
		}
		opts.DoorWidth = dw
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "scale %q is not an integer", v)
		}
		opts.Scale = scale
	}
	for _, flag := range []struct {
		name string
		dst  *bool
	}{{"mirror", &opts.Mirror}, {"labels", &opts.Labels}, {"refresh", &opts.Refresh}} {
		if v := q.Get(flag.name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "%s %q is not a boolean", flag.name, v)
			}
			*flag.dst = b
		}
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	opts.Formats = []string{format}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, "", err
	}
	return opts, format, nil
}
