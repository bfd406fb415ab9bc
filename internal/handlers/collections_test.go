package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gallery_users/internal/models"
	"gallery_users/internal/repository"
	"gallery_users/internal/service"
)

func newCollectionRouter(cols *mockCollections) (http.Handler, *mockAuth) {
	auth := &mockAuth{parseClaim: models.AuthClaim{UserID: "u-1", Username: "alice"}}
	return newTestRouter(&service.Service{Authorization: auth, Collections: cols}), auth
}

func doAuthed(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)
	return w
}

func decodeItems(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var items []string
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("response is not a string array: %s", w.Body.String())
	}
	return items
}

func TestCollectionHandlers_List(t *testing.T) {
	cols := &mockCollections{listResp: []string{"art-1", "art-2"}}
	r, _ := newCollectionRouter(cols)

	w := doAuthed(r, http.MethodGet, "/api/user/favourites")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	items := decodeItems(t, w)
	if len(items) != 2 || items[0] != "art-1" {
		t.Fatalf("unexpected items: %v", items)
	}
	if cols.lastKind != repository.KindFavourites {
		t.Fatalf("expected kind favourites, got %q", cols.lastKind)
	}

	// history hits the same handler with its own kind
	w = doAuthed(r, http.MethodGet, "/api/user/history")
	if w.Code != http.StatusOK {
		t.Fatalf("history status=%d", w.Code)
	}
	if cols.lastKind != repository.KindHistory {
		t.Fatalf("expected kind history, got %q", cols.lastKind)
	}
}

func TestCollectionHandlers_AddTakesIDFromPath(t *testing.T) {
	cols := &mockCollections{addResp: []string{"art-1"}}
	r, _ := newCollectionRouter(cols)

	w := doAuthed(r, http.MethodPut, "/api/user/favourites/art-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	items := decodeItems(t, w)
	if len(items) != 1 || items[0] != "art-1" {
		t.Fatalf("unexpected items: %v", items)
	}
	if cols.lastItemID != "art-1" || cols.lastUserID != "u-1" {
		t.Fatalf("unexpected call: userID=%q itemID=%q", cols.lastUserID, cols.lastItemID)
	}

	// PUT without an id does not match the mutation route
	w = doAuthed(r, http.MethodPut, "/api/user/favourites")
	if w.Code == http.StatusOK {
		t.Fatalf("expected PUT without id to be rejected, got 200")
	}
	if cols.addCalls != 1 {
		t.Fatalf("expected no extra Add call, got %d", cols.addCalls)
	}
}

func TestCollectionHandlers_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"collection full", repository.ErrCollectionFull, http.StatusConflict},
		{"store failure", errAny, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := &mockCollections{addErr: tt.err}
			r, _ := newCollectionRouter(cols)

			w := doAuthed(r, http.MethodPut, "/api/user/history/art-51")
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (body=%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			var m map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &m)
			if m["error"] == nil || m["error"] == "" {
				t.Fatalf("expected error body, got %s", w.Body.String())
			}
		})
	}
}

func TestCollectionHandlers_ErrorBodyHidesStoreDetail(t *testing.T) {
	cols := &mockCollections{listErr: errAny}
	r, _ := newCollectionRouter(cols)

	w := doAuthed(r, http.MethodGet, "/api/user/favourites")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["error"] != "collection operation failed" {
		t.Fatalf("store detail leaked to client: %q", m["error"])
	}
}

func TestCollectionHandlers_Remove(t *testing.T) {
	cols := &mockCollections{removeResp: []string{}}
	r, _ := newCollectionRouter(cols)

	w := doAuthed(r, http.MethodDelete, "/api/user/favourites/art-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	items := decodeItems(t, w)
	if len(items) != 0 {
		t.Fatalf("expected empty array, got %v", items)
	}
	if cols.lastItemID != "art-1" {
		t.Fatalf("expected item id from path, got %q", cols.lastItemID)
	}
}
