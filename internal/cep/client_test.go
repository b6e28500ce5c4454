package cep_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PainelServices01/user-admin-GO/internal/cep"
	"github.com/PainelServices01/user-admin-GO/internal/httperr"
)

func TestLookup_NormalizesFormattedInput(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cep": "01310-100", "uf": "SP", "localidade": "São Paulo"}`))
	}))
	defer upstream.Close()

	client := cep.NewClient(upstream.URL)
	address, err := client.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)

	require.Equal(t, "/ws/01310100/json/", gotPath)
	require.Equal(t, "01310-100", address.CEP)
	require.Equal(t, "SP", address.State)
	require.Equal(t, "São Paulo", address.City)
}

func TestLookup_EmptyInput(t *testing.T) {
	client := cep.NewClient("http://viacep.invalid")

	_, err := client.Lookup(context.Background(), "")
	require.True(t, httperr.IsBusiness(err, cep.CodeRequired))

	_, err = client.Lookup(context.Background(), "   ")
	require.True(t, httperr.IsBusiness(err, cep.CodeRequired))
}

func TestLookup_RejectsShortCEPWithoutCallingUpstream(t *testing.T) {
	called := false
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer upstream.Close()

	client := cep.NewClient(upstream.URL)
	_, err := client.Lookup(context.Background(), "1234567")

	require.True(t, httperr.IsBusiness(err, cep.CodeInvalid))
	require.False(t, called)
}

func TestLookup_UnknownCEP(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"erro": true}`))
	}))
	defer upstream.Close()

	client := cep.NewClient(upstream.URL)
	_, err := client.Lookup(context.Background(), "00000000")
	require.True(t, httperr.IsBusiness(err, cep.CodeNotFound))
}

func TestLookup_UnknownCEPStringFlag(t *testing.T) {
	// Versões mais novas da API devolvem "erro": "true".
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"erro": "true"}`))
	}))
	defer upstream.Close()

	client := cep.NewClient(upstream.URL)
	_, err := client.Lookup(context.Background(), "00000000")
	require.True(t, httperr.IsBusiness(err, cep.CodeNotFound))
}

func TestLookup_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := cep.NewClient(upstream.URL)
	_, err := client.Lookup(context.Background(), "01310100")

	require.Error(t, err)
	require.False(t, httperr.IsBusiness(err, cep.CodeNotFound))
	require.False(t, httperr.IsBusiness(err, cep.CodeInvalid))
}

func TestLookup_MalformedBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer upstream.Close()

	client := cep.NewClient(upstream.URL)
	_, err := client.Lookup(context.Background(), "01310100")
	require.Error(t, err)
}
