package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiRequest is a request captured by ApiMock.
type ApiRequest struct {
	Headers map[string]string
	Queries map[string]string
	Body    map[string]any
}

type apiResponse struct {
	status int
	body   any
}

// ApiMock is an HTTP server standing in for a third-party JSON API. Requests are recorded
// per "METHOD/path" and answered with the configured response, 200 and {} by default.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]ApiRequest
	responses map[string]apiResponse
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:  map[string][]ApiRequest{},
		responses: map[string]apiResponse{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	request := ApiRequest{
		Headers: map[string]string{},
		Queries: map[string]string{},
		Body:    map[string]any{},
	}
	_ = json.Unmarshal(body, &request.Body)
	for name, values := range r.Header {
		request.Headers[name] = values[0]
	}
	for name, values := range r.URL.Query() {
		request.Queries[name] = values[0]
	}

	a.mu.Lock()
	a.requests[key] = append(a.requests[key], request)
	resp, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		resp = apiResponse{status: http.StatusOK, body: map[string]any{}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(resp.body)
}

// SetResponse configures the answer for every later request to method and path.
func (a *ApiMock) SetResponse(method, path string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = apiResponse{status: status, body: body}
}

// GetRequests returns the requests received on method and path, oldest first.
func (a *ApiMock) GetRequests(method, path string) []ApiRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]ApiRequest(nil), a.requests[method+path]...)
}

// Reset drops recorded requests and configured responses.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = map[string][]ApiRequest{}
	a.responses = map[string]apiResponse{}
}
