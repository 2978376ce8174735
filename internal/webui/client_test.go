package webui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGetDecodesPayload(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 5, "first_name": "Іван", "last_name": "Петренко", "is_donor": true}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL)

	var user UserRecord
	require.NoError(t, client.Get(context.Background(), "/auth/me/", &user))
	assert.Equal(t, uint(5), user.ID)
	assert.Equal(t, "Іван Петренко", user.FullName())
	assert.True(t, user.IsDonor)
}

func TestClientNonSuccessBecomesAPIError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "User already exists"}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL)

	err := client.Post(context.Background(), "/auth/register", map[string]string{"email": "a@b.c"}, nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.JSONEq(t, `{"detail": "User already exists"}`, string(apiErr.Body))
}

func TestClientForRequestForwardsCookies(t *testing.T) {
	var gotCookie string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("user_access_token"); err == nil {
			gotCookie = cookie.Value
		}
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	browser := httptest.NewRequest(http.MethodGet, "/pages/profile", nil)
	browser.AddCookie(&http.Cookie{Name: "user_access_token", Value: "jwt-value"})

	client := NewClient(backend.URL).ForRequest(browser)
	require.NoError(t, client.Get(context.Background(), "/auth/me/", nil))
	assert.Equal(t, "jwt-value", gotCookie)
}

func TestClientCapturesSetCookies(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			http.SetCookie(w, &http.Cookie{Name: "user_access_token", Value: "fresh-jwt", Path: "/"})
			w.Write([]byte(`{"message": "ok"}`))
			return
		}
		// The follow-up call must carry the cookie set moments earlier.
		cookie, err := r.Cookie("user_access_token")
		require.NoError(t, err)
		assert.Equal(t, "fresh-jwt", cookie.Value)
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL).ForRequest(httptest.NewRequest(http.MethodPost, "/pages/login", nil))

	require.NoError(t, client.Post(context.Background(), "/auth/login", map[string]string{}, nil))
	require.NoError(t, client.Get(context.Background(), "/auth/me/", nil))

	received := client.ReceivedCookies()
	require.NotEmpty(t, received)
	assert.Equal(t, "user_access_token", received[0].Name)
	assert.Equal(t, "fresh-jwt", received[0].Value)
}

func TestClientNetworkErrorIsNotAPIError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	client := NewClient(backend.URL)
	err := client.Get(context.Background(), "/auth/me/", nil)
	require.Error(t, err)

	_, ok := err.(*APIError)
	assert.False(t, ok)
	assert.False(t, IsUnauthorized(err))
}

func TestClientGetBlob(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte("id,status\n1,COMPLETED\n"))
	}))
	defer backend.Close()

	client := NewClient(backend.URL)
	data, contentType, err := client.GetBlob(context.Background(), "/api/donors/me/donations/export")
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", contentType)
	assert.Equal(t, "id,status\n1,COMPLETED\n", string(data))
}

func TestClientGetBlobCarriesReceivedCookies(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "user_access_token", Value: "fresh-jwt", Path: "/"})
			w.Write([]byte(`{"message": "ok"}`))
		case "/api/donors/me/donations/export":
			cookie, err := r.Cookie("user_access_token")
			require.NoError(t, err)
			assert.Equal(t, "fresh-jwt", cookie.Value)
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Write([]byte("id,status\n"))
		default:
			t.Errorf("unexpected call %s", r.URL.Path)
		}
	}))
	defer backend.Close()

	client := NewClient(backend.URL).ForRequest(httptest.NewRequest(http.MethodPost, "/pages/login", nil))
	require.NoError(t, client.Post(context.Background(), "/auth/login", map[string]string{}, nil))

	data, _, err := client.GetBlob(context.Background(), "/api/donors/me/donations/export")
	require.NoError(t, err)
	assert.Equal(t, "id,status\n", string(data))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{Status: http.StatusUnauthorized}))
	assert.False(t, IsUnauthorized(&APIError{Status: http.StatusForbidden}))
	assert.False(t, IsUnauthorized(nil))
}
