// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_SetsUserAgent(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	resp, err := Get(context.Background(), ts.Client(), ts.URL, "airlit-test/0.1")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "airlit-test/0.1", gotUA)
}

func TestGet_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, "airlit-test/0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestGetJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 3, "name": "pm2.5"}`))
	}))
	defer ts.Close()

	var got struct {
		Count int    `json:"count"`
		Name  string `json:"name"`
	}
	err := GetJSON(context.Background(), ts.Client(), ts.URL, "airlit-test/0.1", &got)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, "pm2.5", got.Name)
}

func TestGetJSON_ParseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer ts.Close()

	var got map[string]any
	err := GetJSON(context.Background(), ts.Client(), ts.URL, "airlit-test/0.1", &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON")
}

func TestGetXML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(`<Doc><Title>Ozone trends</Title></Doc>`))
	}))
	defer ts.Close()

	var got struct {
		Title string `xml:"Title"`
	}
	err := GetXML(context.Background(), ts.Client(), ts.URL, "airlit-test/0.1", &got)
	require.NoError(t, err)
	assert.Equal(t, "Ozone trends", got.Title)
}

func TestGet_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, "airlit-test/0.1")
	assert.Error(t, err)
}
