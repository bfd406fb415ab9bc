package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"gallery_users/internal/models"
	"gallery_users/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", defaultInterval},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=90s", defaultInterval},
		{"interval_ms_too_large", "/ws?interval_ms=90000", defaultInterval},
		{"interval_invalid_string", "/ws?interval=bogus", defaultInterval},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func dialCollectionsWS(t *testing.T, s *service.Service) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	srv := httptest.NewServer(h.InitRoutes())
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/api/user/ws"
	q := u.Query()
	q.Set("interval_ms", "20") // fast ticks for the test
	u.RawQuery = q.Encode()

	header := http.Header{}
	header.Set("Authorization", "Bearer good")

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), header)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWebSocket_CollectionsStream_InitialAndPeriodic(t *testing.T) {
	auth := &mockAuth{parseClaim: models.AuthClaim{UserID: "u-1", Username: "alice"}}
	cols := &mockCollections{listResp: []string{"art-1"}}
	conn := dialCollectionsWS(t, &service.Service{Authorization: auth, Collections: cols})

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// Read the initial payload.
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "collections" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var payload wsCollections
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("unmarshal collections: %v", err)
	}
	if len(payload.Favourites) != 1 || payload.Favourites[0] != "art-1" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	// Read a subsequent tick.
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "collections" {
		t.Fatalf("expected type=collections, got %+v", env)
	}
}

func TestWebSocket_InitialListError_Closes(t *testing.T) {
	auth := &mockAuth{parseClaim: models.AuthClaim{UserID: "u-1", Username: "alice"}}
	cols := &mockCollections{listErr: errAny}
	conn := dialCollectionsWS(t, &service.Service{Authorization: auth, Collections: cols})

	// The server closes right after the initial List fails.
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}

func TestWebSocket_RequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := &mockAuth{parseErr: service.ErrInvalidToken}
	h := NewHandler(&service.Service{Authorization: auth}, nil)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/api/user/ws"

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	_, resp, err := dialer.Dial(u.String(), nil)
	if err == nil {
		t.Fatalf("expected dial to fail without a token")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 handshake response, got %+v", resp)
	}
}
