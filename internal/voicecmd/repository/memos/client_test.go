package memos_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-notes/internal/voicecmd/repository/memos"
)

func TestMemosClient(t *testing.T) {
	var patchMask string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/memos", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var m memos.Memo
		json.NewDecoder(r.Body).Decode(&m)
		m.Name = "memos/uid-1"
		m.UID = "uid-1"
		json.NewEncoder(w).Encode(m)
	})
	mux.HandleFunc("/api/v1/memos/uid-1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch:
			patchMask = r.URL.Query().Get("updateMask")
			var req memos.UpdateMemoRequest
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(memos.Memo{Name: "memos/uid-1", UID: "uid-1", Content: req.Content})
		case http.MethodGet:
			json.NewEncoder(w).Encode(memos.Memo{Name: "memos/uid-1", UID: "uid-1", Content: "Got memo"})
		}
	})
	mux.HandleFunc("/api/v1/memos/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"memo not found"}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := memos.NewClient(ts.URL+"/", "test-token")
	ctx := context.Background()

	t.Run("CreateMemo", func(t *testing.T) {
		res, err := client.CreateMemo(ctx, memos.CreateMemoRequest{Content: "Hello", Visibility: "PRIVATE"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.UID != "uid-1" || res.Content != "Hello" {
			t.Errorf("unexpected memo response: %+v", res)
		}
	})

	t.Run("GetMemo accepts resource names", func(t *testing.T) {
		res, err := client.GetMemo(ctx, "memos/uid-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Content != "Got memo" {
			t.Errorf("unexpected content: %s", res.Content)
		}
	})

	t.Run("UpdateMemo", func(t *testing.T) {
		res, err := client.UpdateMemo(ctx, "uid-1", memos.UpdateMemoRequest{Content: "Updated"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Content != "Updated" {
			t.Errorf("unexpected content: %s", res.Content)
		}
		if patchMask != "content" {
			t.Errorf("updateMask = %q, want content", patchMask)
		}
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := client.GetMemo(ctx, "missing")
		var apiErr *memos.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Fatalf("expected APIError 404, got %v", err)
		}
	})
}
