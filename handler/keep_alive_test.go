package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AngeelRdz/resume-angeel-dev/handler/payload"
	"github.com/AngeelRdz/resume-angeel-dev/metal/env"
)

func pingEnv() *env.PingEnvironment {
	return &env.PingEnvironment{
		Username: "keep-alive-username",
		Password: "keep-alive-password",
	}
}

func TestKeepAliveHandler(t *testing.T) {
	h := MakeKeepAliveHandler(pingEnv())

	req := httptest.NewRequest("GET", "/ping", nil)
	req.SetBasicAuth("keep-alive-username", "keep-alive-password")
	rec := httptest.NewRecorder()

	if err := h.Handle(rec, req); err != nil {
		t.Fatalf("handle err: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp payload.KeepAliveResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Message != "pong" {
		t.Fatalf("unexpected message: %s", resp.Message)
	}

	if resp.DateTime == "" {
		t.Fatal("expected a timestamp")
	}
}

func TestKeepAliveHandlerRejectsBadCreds(t *testing.T) {
	h := MakeKeepAliveHandler(pingEnv())

	t.Run("missing auth", func(t *testing.T) {
		apiErr := h.Handle(httptest.NewRecorder(), httptest.NewRequest("GET", "/ping", nil))
		if apiErr == nil || apiErr.Status != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %+v", apiErr)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.SetBasicAuth("keep-alive-username", "nope")

		apiErr := h.Handle(httptest.NewRecorder(), req)
		if apiErr == nil || apiErr.Status != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %+v", apiErr)
		}
	})
}
