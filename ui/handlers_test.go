package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voyage/app"
	"voyage/domain/passenger"
	"voyage/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	records []passenger.Passenger
	err     error
}

func (s *stubSource) Read() ([]passenger.Passenger, error) { return s.records, s.err }
func (s *stubSource) Locator() string                      { return "stub://titanic" }

func age(v float64) *float64  { return &v }
func fare(v float64) *float64 { return &v }

func testServer(t *testing.T, source *stubSource) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	server, err := NewServer(app.NewInsightService(source, nil))
	require.NoError(t, err)
	return server
}

func testPassengers() []passenger.Passenger {
	return []passenger.Passenger{
		{ID: 1, Class: 1, Sex: "female", Age: age(38), Survived: true, SibSp: 1, Fare: fare(71.28), Name: "Cumings, Mrs. John Bradley"},
		{ID: 2, Class: 1, Sex: "male", Age: age(54), Survived: false, Fare: fare(51.86), Name: "McCarthy, Mr. Timothy"},
		{ID: 3, Class: 3, Sex: "male", Age: age(22), Survived: false, SibSp: 1, Fare: fare(7.25), Name: "Braund, Mr. Owen Harris"},
		{ID: 4, Class: 3, Sex: "female", Age: age(26), Survived: true, Fare: fare(7.92), Name: "Heikkinen, Miss. Laina"},
		{ID: 5, Class: 2, Sex: "male", Age: age(35), Survived: false, Fare: fare(26.0), Name: "McCarthy, Mr. Timothy Jr"},
	}
}

func doRequest(server *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	server.Router().ServeHTTP(w, req)
	return w
}

func TestHandleDashboard(t *testing.T) {
	server := testServer(t, &stubSource{records: testPassengers()})

	w := doRequest(server, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Titanic Data Exploration")
	assert.Contains(t, body, "stub://titanic")
	assert.Contains(t, body, "chart-demographics")
	assert.Contains(t, body, "Braund")
}

func TestHandleDemographicsJSON(t *testing.T) {
	server := testServer(t, &stubSource{records: testPassengers()})

	w := doRequest(server, "/api/demographics")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rows []struct {
			Class        int     `json:"pclass"`
			Sex          string  `json:"sex"`
			AgeGroup     string  `json:"age_group"`
			NPassengers  int     `json:"n_passengers"`
			SurvivalRate float64 `json:"survival_rate"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Rows)
	assert.Equal(t, 1, resp.Rows[0].Class)
}

func TestHandleLastNames_TopParam(t *testing.T) {
	server := testServer(t, &stubSource{records: testPassengers()})

	w := doRequest(server, "/api/last-names?top=2")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rows []struct {
			Surname string `json:"surname"`
			Count   int    `json:"count"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "McCarthy", resp.Rows[0].Surname)

	w = doRequest(server, "/api/last-names?top=zero")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_DataUnavailable(t *testing.T) {
	server := testServer(t, &stubSource{err: errors.DataUnavailable("boom", nil)})

	w := doRequest(server, "/api/report")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "boom"))
}

func TestHandlers_EmptyInput(t *testing.T) {
	server := testServer(t, &stubSource{records: nil})

	w := doRequest(server, "/api/report")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleHealth(t *testing.T) {
	server := testServer(t, &stubSource{records: testPassengers()})

	w := doRequest(server, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}
