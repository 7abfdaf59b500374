package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/citymap/internal/logging"
	"github.com/katalvlaran/citymap/internal/server"
)

type ServerSuite struct {
	suite.Suite
	svc  *server.Service
	logs *bytes.Buffer
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	svc, err := server.NewService(server.Config{
		ListenAddr: ":0",
		Logger:     logging.New("debug", logging.FormatJSON, s.logs),
		Clock:      testclock.NewClock(time.Unix(0, 0)),
	})
	s.Require().NoError(err)
	s.svc = svc
}

// do sends one request and decodes a JSON response into out when non-nil.
func (s *ServerSuite) do(method, target, body string, out interface{}) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	s.svc.Handler().ServeHTTP(w, r)
	if out != nil {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}

	return w
}

func (s *ServerSuite) seedSquare() {
	for _, c := range []string{
		`{"name":"A","x":0,"y":0}`,
		`{"name":"B","x":10,"y":0}`,
		`{"name":"C","x":0,"y":10}`,
		`{"name":"D","x":10,"y":10}`,
	} {
		s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/cities", c, nil).Code)
	}
	for _, r := range []string{
		`{"from":"A","to":"B"}`,
		`{"from":"B","to":"D"}`,
		`{"from":"A","to":"C"}`,
	} {
		s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/roads", r, nil).Code)
	}
}

type errBody struct {
	Error       string `json:"error"`
	Reason      string `json:"reason"`
	SubjectType string `json:"subject_type"`
	Subject     string `json:"subject"`
}

func (s *ServerSuite) TestAddCity() {
	var got struct {
		Name string  `json:"name"`
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
	}
	w := s.do(http.MethodPost, "/api/cities", `{"name":"A","x":3,"y":4}`, &got)
	s.Equal(http.StatusCreated, w.Code)
	s.Equal("A", got.Name)
	s.Equal(4.0, got.Y)
	s.Equal("application/json", w.Header().Get("Content-Type"))
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *ServerSuite) TestAddCity_Errors() {
	s.do(http.MethodPost, "/api/cities", `{"name":"A","x":0,"y":0}`, nil)

	var body errBody
	w := s.do(http.MethodPost, "/api/cities", `{"name":"A","x":1,"y":1}`, &body)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(errBody{
		Error:       "AddCity: core: already exists: City A",
		Reason:      "already exists",
		SubjectType: "City",
		Subject:     "A",
	}, body)

	w = s.do(http.MethodPost, "/api/cities", `{"name":"","x":1,"y":1}`, &body)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("must not be empty", body.Reason)

	w = s.do(http.MethodPost, "/api/cities", `{"name":`, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerSuite) TestListCities_Sorted() {
	s.seedSquare()
	var got struct {
		Cities []struct {
			Name string  `json:"name"`
			X    float64 `json:"x"`
			Y    float64 `json:"y"`
		} `json:"cities"`
	}
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/cities", "", &got).Code)
	s.Require().Len(got.Cities, 4)
	s.Equal("A", got.Cities[0].Name)
	s.Equal("D", got.Cities[3].Name)
	s.Equal(10.0, got.Cities[3].Y)
}

func (s *ServerSuite) TestRoads() {
	s.seedSquare()

	var road struct {
		From   string  `json:"from"`
		To     string  `json:"to"`
		Length float64 `json:"length"`
	}
	s.do(http.MethodPost, "/api/cities", `{"name":"E","x":13,"y":14}`, nil)
	w := s.do(http.MethodPost, "/api/roads", `{"from":"D","to":"E"}`, &road)
	s.Equal(http.StatusCreated, w.Code)
	s.Equal(5.0, road.Length)

	var body errBody
	w = s.do(http.MethodPost, "/api/roads", `{"from":"E","to":"D"}`, &body)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("Road", body.SubjectType)
	s.Equal("E - D", body.Subject)

	w = s.do(http.MethodPost, "/api/roads", `{"from":"A","to":"A"}`, &body)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("must be different", body.Reason)

	w = s.do(http.MethodPost, "/api/roads", `{"from":"A","to":"Z"}`, &body)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Z", body.Subject)

	var list struct {
		Roads []struct {
			From string `json:"from"`
		} `json:"roads"`
	}
	s.do(http.MethodGet, "/api/roads", "", &list)
	s.Len(list.Roads, 4)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/roads/E/D", "", nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/roads/E/D", "", nil).Code)
}

func (s *ServerSuite) TestNeighbors() {
	s.seedSquare()
	var got struct {
		City      string             `json:"city"`
		Neighbors map[string]float64 `json:"neighbors"`
	}
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/cities/A/neighbors", "", &got).Code)
	s.Equal(map[string]float64{"B": 10, "C": 10}, got.Neighbors)

	var body errBody
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/cities/Nowhere/neighbors", "", &body).Code)
	s.Equal("Nowhere", body.Subject)
}

func (s *ServerSuite) TestReachable() {
	s.seedSquare()
	var got struct {
		City      string             `json:"city"`
		Distances map[string]float64 `json:"distances"`
	}
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/cities/C/reachable", "", &got).Code)
	s.Equal(map[string]float64{"A": 10, "B": 20, "C": 0, "D": 30}, got.Distances)

	got.Distances = nil
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/cities/C/reachable?max=15", "", &got).Code)
	s.Equal(map[string]float64{"A": 10, "C": 0}, got.Distances)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/cities/C/reachable?max=-1", "", nil).Code)

	var body errBody
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/cities/Q/reachable", "", &body).Code)
	s.Equal("Q", body.Subject)
}

func (s *ServerSuite) TestPath() {
	s.seedSquare()
	var got struct {
		Path   []string  `json:"path"`
		Length float64   `json:"length"`
		Legs   []float64 `json:"legs"`
		Policy string    `json:"policy"`
	}
	w := s.do(http.MethodGet, "/api/path?from=C&to=D", "", &got)
	s.Equal(http.StatusOK, w.Code)
	s.Equal([]string{"C", "A", "B", "D"}, got.Path)
	s.Equal(30.0, got.Length)
	s.Equal([]float64{10, 10, 10}, got.Legs)
	s.Equal("relax", got.Policy)

	w = s.do(http.MethodGet, "/api/path?from=C&to=D&policy=first-opened", "", &got)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("first-opened", got.Policy)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/path?from=C&to=D&policy=greedy", "", nil).Code)
}

func (s *ServerSuite) TestPath_Errors() {
	s.seedSquare()
	s.do(http.MethodPost, "/api/cities", `{"name":"Island","x":50,"y":50}`, nil)

	var body errBody
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/path?from=A&to=Island", "", &body).Code)
	s.Equal(errBody{
		Error:       "FindPath: astar: no path: Path A - Island",
		Reason:      "doesn't exist",
		SubjectType: "Path",
		Subject:     "A - Island",
	}, body)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/path?from=A&to=Atlantis", "", &body).Code)
	s.Equal("City", body.SubjectType)
}

func (s *ServerSuite) TestRemoveCity() {
	s.seedSquare()
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/cities/B", "", nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/cities/B", "", nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/path?from=A&to=D", "", nil).Code)

	var st struct {
		Cities int `json:"cities"`
		Roads  int `json:"roads"`
	}
	s.do(http.MethodGet, "/api/stats", "", &st)
	s.Equal(3, st.Cities)
	s.Equal(1, st.Roads)
}

func (s *ServerSuite) TestClear() {
	s.seedSquare()
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/map", "", nil).Code)

	var st struct {
		Cities int     `json:"cities"`
		Total  float64 `json:"total_length"`
	}
	s.do(http.MethodGet, "/api/stats", "", &st)
	s.Zero(st.Cities)
	s.Zero(st.Total)
}

func (s *ServerSuite) TestRequestIDIsLogged() {
	r := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	r.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	s.svc.Handler().ServeHTTP(w, r)

	s.Equal("req-42", w.Header().Get("X-Request-ID"))
	s.Contains(s.logs.String(), `"request_id":"req-42"`)
	s.Contains(s.logs.String(), `"elapsed_time":"0s"`)
}

func (s *ServerSuite) TestDiagnosticsAreLogged() {
	s.do(http.MethodDelete, "/api/cities/Ghost", "", nil)
	s.Contains(s.logs.String(), `"subject":"Ghost"`)
	s.Contains(s.logs.String(), `"level":"warning"`)
}

func TestNewService_Validation(t *testing.T) {
	_, err := server.NewService(server.Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "listen address has not been specified")
}

func TestRun_StopsWithContext(t *testing.T) {
	svc, err := server.NewService(server.Config{ListenAddr: "127.0.0.1:0"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
