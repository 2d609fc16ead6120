package httpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"faces":30}`))
		case "/bad":
			w.Write([]byte(`not json`))
		default:
			http.Error(w, "no such face", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	var got struct{ Faces int }
	if err := GetJSON(ctx, Client, srv.URL+"/ok", &got); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if got.Faces != 30 {
		t.Errorf("Faces = %d, want 30", got.Faces)
	}

	if err := GetJSON(ctx, Client, srv.URL+"/bad", &got); err == nil {
		t.Error("expected decode error")
	}

	err := GetJSON(ctx, Client, srv.URL+"/missing", &got)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.Status != http.StatusNotFound || se.Body != "no such face" {
		t.Errorf("StatusError = %+v", se)
	}
}
