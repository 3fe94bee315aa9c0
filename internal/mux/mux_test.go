package mux

import (
	"encoding/json"
	"hearts-client/pkg/feed"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGetWithResp(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode)
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()
	resp := assertGetWithResp(t, ts, path, respObj, statusCode)
	if resp != nil {
		_ = resp.Body.Close()
	}
}

func newEvent(kind string) *feed.Event {
	return &feed.Event{Kind: kind, GameID: "game-1", RoundID: 2, DealNumber: 5, Strategy: "defensive"}
}

func TestStatusHandler(t *testing.T) {
	a := assert.New(t)

	hub := feed.NewHub(nil)
	hub.StartShift()
	defer hub.EndShift()

	ts := httptest.NewServer(NewMux("", hub))
	defer ts.Close()

	assertGet(t, ts, "/status", nil, http.StatusNoContent)

	hub.Publish(newEvent("play"))

	var e feed.Event
	assertGet(t, ts, "/status", &e, http.StatusOK)
	a.Equal("play", e.Kind)
	a.Equal("game-1", e.GameID)
	a.Equal(5, e.DealNumber)

	assertGet(t, ts, "/nothing", nil, http.StatusNotFound)
}

func TestMux_Handler(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux("", feed.NewHub(nil)).Handler(false))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.domain")

	resp := assertDo(t, req, nil, http.StatusOK)
	if a.NotNil(resp) {
		a.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
	}
}

func TestWSHandler(t *testing.T) {
	a := assert.New(t)

	hub := feed.NewHub(nil)
	hub.StartShift()
	defer hub.EndShift()

	ts := httptest.NewServer(NewMux("", hub))
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	hub.Publish(newEvent("pass"))

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 2))
	var e feed.Event
	a.NoError(conn.ReadJSON(&e))
	a.Equal("pass", e.Kind)
	a.Equal("defensive", e.Strategy)
}
