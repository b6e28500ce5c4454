package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PainelServices01/user-admin-GO/internal/httperr"
	"github.com/PainelServices01/user-admin-GO/internal/validators"
)

// Códigos de negócio do proxy de CEP.
const (
	CodeRequired = "cep_required"
	CodeInvalid  = "cep_invalid"
	CodeNotFound = "cep_not_found"
)

type Address struct {
	CEP   string `json:"cep"`
	State string `json:"state"`
	City  string `json:"city"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type viaCEPResponse struct {
	Cep        string `json:"cep"`
	UF         string `json:"uf"`
	Localidade string `json:"localidade"`

	// O ViaCEP sinaliza CEP desconhecido com "erro": true (ou "true",
	// dependendo da versão da API).
	Erro any `json:"erro"`
}

// Lookup normaliza, valida e consulta o CEP no serviço upstream.
func (c *Client) Lookup(ctx context.Context, raw string) (*Address, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, httperr.ErrBusiness(CodeRequired)
	}

	clean := validators.NormalizeCEP(raw)
	if !validators.IsValidCEP(clean) {
		return nil, httperr.ErrBusiness(CodeInvalid)
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, clean)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cep upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cep upstream: status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("cep upstream: %w", err)
	}

	if isErroSet(body.Erro) {
		return nil, httperr.ErrBusiness(CodeNotFound)
	}

	return &Address{
		CEP:   body.Cep,
		State: body.UF,
		City:  body.Localidade,
	}, nil
}

func isErroSet(v any) bool {
	switch e := v.(type) {
	case nil:
		return false
	case bool:
		return e
	case string:
		return e != "false"
	default:
		return true
	}
}
