package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError erro devolvido pelo servidor no formato {code, message}.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsAuthError indica resposta 401 (token ausente, inválido ou expirado).
func (e *APIError) IsAuthError() bool {
	return e.Status == http.StatusUnauthorized
}

// apiClient encapsula as chamadas HTTP à API com o Bearer token. Erros de
// rede voltam como estão; respostas não-2xx viram *APIError.
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newAPIClient(baseURL, token string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do executa a requisição e decodifica a resposta em out (quando não nil).
func (a *apiClient) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: montar requisição: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = "UNKNOWN"
			apiErr.Message = resp.Status
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (a *apiClient) get(path string, out any) error {
	return a.do(http.MethodGet, path, nil, out)
}

func (a *apiClient) post(path string, body, out any) error {
	return a.do(http.MethodPost, path, body, out)
}

func (a *apiClient) put(path string, body, out any) error {
	return a.do(http.MethodPut, path, body, out)
}

func (a *apiClient) del(path string) error {
	return a.do(http.MethodDelete, path, nil, nil)
}
