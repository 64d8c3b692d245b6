package adviceclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmadvice-backend/internal/services"
)

func TestClient_Advice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agricultural-advice", r.URL.Path)
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "how to plant yam", req["query"])
		assert.Equal(t, "ig", req["language"])

		w.Write([]byte(`{"response":"Plant yam setts in mounds.","origin":"model"}`))
	}))
	defer server.Close()

	c := New(server.URL+"/", 5*time.Second)
	resp, err := c.Advice(context.Background(), "how to plant yam", "ig")
	require.NoError(t, err)
	assert.Equal(t, "Plant yam setts in mounds.", resp.Response)
	assert.Equal(t, "model", resp.Origin)

	assert.Equal(t, "Plant yam setts in mounds.", c.Ask(context.Background(), "how to plant yam", "ig"))
}

func TestClient_AskFallsBackLocally(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"error only", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"error":"boom"}`)) }},
		{"empty reply", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{}`)) }},
		{"garbage", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`<html>`)) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			c := New(server.URL, 5*time.Second)
			_, err := c.Advice(context.Background(), "leaves yellowing", "en")
			assert.Error(t, err)
			assert.Equal(t, services.FallbackAdvice("leaves yellowing", "en"), c.Ask(context.Background(), "leaves yellowing", "en"))
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := New(url, time.Second)
	assert.Equal(t, services.FallbackAdvice("disease", "ha"), c.Ask(context.Background(), "disease", "ha"))
}

func TestClient_AskFallbackNormalizesLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := New(url, time.Second)
	for _, lang := range []string{"HA", " ha ", "Ha"} {
		t.Run(lang, func(t *testing.T) {
			got := c.Ask(context.Background(), "leaves yellowing", lang)
			assert.Equal(t, services.FallbackAdvice("leaves yellowing", "ha"), got)
			assert.NotEqual(t, services.FallbackAdvice("leaves yellowing", "en"), got)
		})
	}
}

func TestNew_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, New("", time.Second).baseURL)
}
