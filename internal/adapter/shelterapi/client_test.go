package shelterapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/miaudota/internal/config"
	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/pkg/ctxutil"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

type failingToken struct{}

func (failingToken) Token() (string, error) { return "", errors.New("session file corrupt") }

func newTestClient(t *testing.T, h http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg := config.UpstreamConfig{BaseURL: srv.URL + "/api/", Timeout: 5 * time.Second}
	return NewClient(cfg, tokens, newTestLogger())
}

func TestClient_SearchPets_QueryParameters(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pets", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "nome": "Rex", "especie": "CAO"}]`))
	}, nil)

	items, err := client.SearchPets(context.Background(), domain.FilterCriteria{Query: "rex", Species: "CAO"})
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{"q": {"rex"}, "species": {"CAO"}}, gotQuery)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Rex", items[0].Name)
}

func TestClient_SearchPets_EmptyCriteriaSendsNoParameters(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	}, nil)

	items, err := client.SearchPets(context.Background(), domain.FilterCriteria{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestClient_ListPets_Envelopes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantLen int
	}{
		{name: "bare array", body: `[{"nome": "A"}, {"nome": "B"}]`, wantLen: 2},
		{name: "data", body: `{"data": [{"nome": "A"}]}`, wantLen: 1},
		{name: "pets", body: `{"pets": [{"nome": "A"}]}`, wantLen: 1},
		{name: "items", body: `{"items": [{"nome": "A"}, {"nome": "B"}]}`, wantLen: 2},
		{name: "data.items", body: `{"data": {"items": [{"nome": "A"}]}}`, wantLen: 1},
		{name: "data.pets", body: `{"data": {"pets": [{"nome": "A"}]}}`, wantLen: 1},
		{name: "unexpected object", body: `{"total": 3}`, wantLen: 0},
		{name: "scalar", body: `"nope"`, wantLen: 0},
		{name: "empty body", body: ``, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}, nil)

			items, err := client.ListPets(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Len(t, items, tt.wantLen)
		})
	}
}

func TestClient_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusInternalServerError, domain.ErrUpstream},
		{http.StatusBadGateway, domain.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}, nil)

			_, err := client.GetPet(context.Background(), "7")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_NoRetryByDefault(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, nil)

	_, err := client.SearchPets(context.Background(), domain.FilterCriteria{Query: "rex"})
	require.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RetriesWhenConfigured(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"nome": "Rex"}]`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second, RetryMax: 1}, nil, newTestLogger())
	client.http.RetryWaitMin = time.Millisecond
	client.http.RetryWaitMax = time.Millisecond

	items, err := client.ListPets(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_ConnectionFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(config.UpstreamConfig{BaseURL: url, Timeout: time.Second}, nil, newTestLogger())

	_, err := client.ListPets(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, nil)
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.SearchPets(ctx, domain.FilterCriteria{Query: "rex"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Headers(t *testing.T) {
	t.Parallel()

	var auth, requestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get(RequestIDHeader)
		_, _ = w.Write([]byte(`[]`))
	}, staticToken("abc.def.ghi"))

	_, err := client.ListPets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc.def.ghi", auth)
	_, err = uuid.Parse(requestID)
	assert.NoError(t, err, "generated request id should be a uuid")
}

func TestClient_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	var requestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(RequestIDHeader)
		_, _ = w.Write([]byte(`[]`))
	}, staticToken(""))

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	_, err := client.ListPets(ctx)
	require.NoError(t, err)
	assert.Equal(t, "req-42", requestID)
}

func TestClient_AnonymousWithEmptyToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}, staticToken(""))

	_, err := client.ListPets(context.Background())
	require.NoError(t, err)
}

func TestClient_TokenSourceError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, failingToken{})

	_, err := client.ListAdoptions(context.Background())
	require.Error(t, err)
	assert.Zero(t, calls.Load())
}

func TestClient_GetAdoption(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/adocoes/5", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": 5,
			"petId": 9,
			"status": "pendente",
			"dataAdocao": "2025-03-01",
			"motivo": "Quero companhia",
			"aceitouTermo": true,
			"usuario": {"nomeCompleto": "Ana Souza", "email": "ana@example.com"}
		}`))
	}, nil)

	a, err := client.GetAdoption(context.Background(), "5")
	require.NoError(t, err)

	assert.Equal(t, "5", a.ID)
	assert.Equal(t, "9", a.PetID)
	assert.Equal(t, domain.AdoptionStatusPending, a.Status)
	assert.Equal(t, "2025-03-01", a.Date)
	assert.Equal(t, "Quero companhia", a.Reason)
	assert.True(t, a.AcceptedTerms)
	assert.Equal(t, domain.Applicant{Name: "Ana Souza", Email: "ana@example.com"}, a.Applicant)
	assert.False(t, a.HasPet())
}

func TestClient_ListAdoptions_NestedPet(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [
			{"id": 1, "status": "APROVADA", "pet": {"id": 3, "nome": "Thor"}},
			"junk"
		]}`))
	}, nil)

	list, err := client.ListAdoptions(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "3", list[0].PetID, "pet id falls back to the nested pet")
	assert.True(t, list[0].HasPet())
}

func TestClient_UpdateAdoptionStatus(t *testing.T) {
	t.Parallel()

	var gotBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/adocoes/5", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}, staticToken("t"))

	a, err := client.UpdateAdoptionStatus(context.Background(), "5", domain.AdoptionStatusApproved)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"status": "APROVADA"}, gotBody)
	assert.Equal(t, "5", a.ID)
	assert.Equal(t, domain.AdoptionStatusApproved, a.Status)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["email"] != "ana@example.com" || req["senha"] != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"token": "tok", "usuario": {"nomeCompleto": "Ana Souza", "email": "ana@example.com"}}`))
	}, nil)

	resp, err := client.Login(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "Ana Souza", resp.User.DisplayName())

	_, err = client.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_LoginWithoutToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"usuario": {"nome": "Ana"}}`))
	}, nil)

	_, err := client.Login(context.Background(), "ana@example.com", "x")
	assert.Error(t, err)
}
