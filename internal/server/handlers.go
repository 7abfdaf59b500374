package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/citymap/astar"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/dijkstra"
)

const (
	citiesEndpoint    = "/api/cities"
	cityEndpoint      = "/api/cities/{name}"
	neighborsEndpoint = "/api/cities/{name}/neighbors"
	reachableEndpoint = "/api/cities/{name}/reachable"
	roadsEndpoint     = "/api/roads"
	roadEndpoint      = "/api/roads/{from}/{to}"
	pathEndpoint      = "/api/path"
	statsEndpoint     = "/api/stats"
	mapEndpoint       = "/api/map"

	requestIDHeader = "X-Request-ID"
)

// errBadRequest marks a request body or query that could not be decoded.
var errBadRequest = errors.New("bad request")

func (svc *Service) routes() {
	svc.router.Use(svc.requestLogger)
	svc.router.HandleFunc(citiesEndpoint, svc.addCity).Methods(http.MethodPost)
	svc.router.HandleFunc(citiesEndpoint, svc.listCities).Methods(http.MethodGet)
	svc.router.HandleFunc(cityEndpoint, svc.removeCity).Methods(http.MethodDelete)
	svc.router.HandleFunc(neighborsEndpoint, svc.neighbors).Methods(http.MethodGet)
	svc.router.HandleFunc(reachableEndpoint, svc.reachable).Methods(http.MethodGet)
	svc.router.HandleFunc(roadsEndpoint, svc.addRoad).Methods(http.MethodPost)
	svc.router.HandleFunc(roadsEndpoint, svc.listRoads).Methods(http.MethodGet)
	svc.router.HandleFunc(roadEndpoint, svc.removeRoad).Methods(http.MethodDelete)
	svc.router.HandleFunc(pathEndpoint, svc.path).Methods(http.MethodGet)
	svc.router.HandleFunc(statsEndpoint, svc.stats).Methods(http.MethodGet)
	svc.router.HandleFunc(mapEndpoint, svc.clear).Methods(http.MethodDelete)
}

type cityJSON struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type roadJSON struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Length float64 `json:"length,omitempty"`
}

type pathJSON struct {
	Path     []string  `json:"path"`
	Length   float64   `json:"length"`
	Legs     []float64 `json:"legs"`
	Expanded int       `json:"expanded"`
	Policy   string    `json:"policy"`
}

type statsJSON struct {
	Cities      int     `json:"cities"`
	Roads       int     `json:"roads"`
	TotalLength float64 `json:"total_length"`
}

type errorJSON struct {
	Error       string `json:"error"`
	Reason      string `json:"reason,omitempty"`
	SubjectType string `json:"subject_type,omitempty"`
	Subject     string `json:"subject,omitempty"`
}

func (svc *Service) addCity(w http.ResponseWriter, r *http.Request) {
	var req cityJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		svc.writeError(w, r, errBadRequest)
		return
	}

	svc.mu.Lock()
	err := svc.m.AddCity(req.Name, req.X, req.Y)
	svc.mu.Unlock()
	if err != nil {
		svc.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

func (svc *Service) listCities(w http.ResponseWriter, _ *http.Request) {
	svc.mu.RLock()
	names := svc.m.Cities()
	out := make([]cityJSON, 0, len(names))
	for _, n := range names {
		p, _ := svc.m.Position(n)
		out = append(out, cityJSON{Name: n, X: p.X, Y: p.Y})
	}
	svc.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{"cities": out})
}

func (svc *Service) removeCity(w http.ResponseWriter, r *http.Request) {
	svc.mu.Lock()
	err := svc.m.RemoveCity(mux.Vars(r)["name"])
	svc.mu.Unlock()
	if err != nil {
		svc.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (svc *Service) neighbors(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	svc.mu.RLock()
	nb := svc.m.Neighbors(name)
	svc.mu.RUnlock()
	if nb == nil {
		svc.writeError(w, r, core.Fail(core.Discard, "Neighbors", core.ErrNotFound,
			core.Diagnostic{Reason: core.ReasonDoesntExist, SubjectType: core.SubjectCity, Subject: name}))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"city": name, "neighbors": nb})
}

// reachable lists the road distance to every city reachable from {name},
// optionally limited to ?max=<distance>.
func (svc *Service) reachable(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	opts := []dijkstra.Option{dijkstra.Source(name)}
	if s := r.URL.Query().Get("max"); s != "" {
		max, err := strconv.ParseFloat(s, 64)
		if err != nil || max < 0 || math.IsNaN(max) {
			svc.writeError(w, r, errBadRequest)
			return
		}
		opts = append(opts, dijkstra.WithMaxDistance(max))
	}

	svc.mu.RLock()
	dist, _, err := dijkstra.Dijkstra(svc.m, opts...)
	svc.mu.RUnlock()
	if errors.Is(err, core.ErrNotFound) {
		err = core.Fail(core.Discard, "Reachable", core.ErrNotFound,
			core.Diagnostic{Reason: core.ReasonDoesntExist, SubjectType: core.SubjectCity, Subject: name})
	}
	if err != nil {
		svc.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"city": name, "distances": dist})
}

func (svc *Service) addRoad(w http.ResponseWriter, r *http.Request) {
	var req roadJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		svc.writeError(w, r, errBadRequest)
		return
	}

	svc.mu.Lock()
	err := svc.m.AddRoad(req.From, req.To)
	if err == nil {
		req.Length, _ = svc.m.RoadLength(req.From, req.To)
	}
	svc.mu.Unlock()
	if err != nil {
		svc.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

func (svc *Service) listRoads(w http.ResponseWriter, _ *http.Request) {
	svc.mu.RLock()
	roads := svc.m.Roads()
	svc.mu.RUnlock()

	out := make([]roadJSON, len(roads))
	for i, rd := range roads {
		out[i] = roadJSON{From: rd.A, To: rd.B, Length: rd.Length}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"roads": out})
}

func (svc *Service) removeRoad(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	svc.mu.Lock()
	err := svc.m.RemoveRoad(vars["from"], vars["to"])
	svc.mu.Unlock()
	if err != nil {
		svc.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (svc *Service) path(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	policy := svc.cfg.Policy
	if s := q.Get("policy"); s != "" {
		p, err := astar.ParsePolicy(s)
		if err != nil {
			svc.writeError(w, r, err)
			return
		}
		policy = p
	}

	svc.mu.RLock()
	res, err := astar.FindPath(svc.m, q.Get("from"), q.Get("to"), astar.WithPolicy(policy))
	svc.mu.RUnlock()
	if err != nil {
		svc.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pathJSON{
		Path:     res.Path,
		Length:   res.Length,
		Legs:     res.Legs,
		Expanded: res.Expanded,
		Policy:   policy.String(),
	})
}

func (svc *Service) stats(w http.ResponseWriter, _ *http.Request) {
	svc.mu.RLock()
	st := svc.m.Stats()
	svc.mu.RUnlock()

	writeJSON(w, http.StatusOK, statsJSON{Cities: st.CityCount, Roads: st.RoadCount, TotalLength: st.TotalLength})
}

func (svc *Service) clear(w http.ResponseWriter, _ *http.Request) {
	svc.mu.Lock()
	svc.m.Clear()
	svc.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// statusOf maps an operation error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, core.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, core.ErrNotFound), errors.Is(err, astar.ErrNoPath):
		return http.StatusNotFound
	case errors.Is(err, core.ErrSelfLoop),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrBadPosition),
		errors.Is(err, astar.ErrBadPolicy),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (svc *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorJSON{Error: err.Error()}
	if d, ok := core.DiagnosticOf(err); ok {
		body.Reason, body.SubjectType, body.Subject = d.Reason, d.SubjectType, d.Subject
	}

	status := statusOf(err)
	if status == http.StatusInternalServerError {
		svc.cfg.Logger.WithFields(logrus.Fields{
			"request_id": w.Header().Get(requestIDHeader),
			"path":       r.URL.Path,
			"err":        err,
		}).Error("request failed")
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// requestLogger tags every request with an ID and logs its outcome.
func (svc *Service) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := svc.cfg.Clock.Now()
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		svc.cfg.Logger.WithFields(logrus.Fields{
			"request_id":   id,
			"method":       r.Method,
			"path":         r.URL.Path,
			"status":       rec.status,
			"elapsed_time": svc.cfg.Clock.Now().Sub(start).String(),
		}).Debug("served request")
	})
}
