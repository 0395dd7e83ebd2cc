package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// envelope is the backend's response wrapper
type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

// API is the REST transport shared by every workflow.
// Requests carry the bearer token of whatever session the store holds at send time.
type API struct {
	http  *resty.Client
	store SessionStore
	log   *zap.Logger
}

// NewAPI creates a client for the backend rooted at baseURL, e.g. http://localhost:8080/api
func NewAPI(baseURL string, store SessionStore, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	a := &API{store: store, log: log}
	a.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if s, ok := a.store.Load(); ok && s.AccessToken != "" {
				r.SetAuthToken(s.AccessToken)
			}
			return nil
		})
	return a
}

// Store returns the session store the API reads tokens from
func (a *API) Store() SessionStore {
	return a.store
}

// SetTimeout overrides the per-request timeout
func (a *API) SetTimeout(d time.Duration) {
	a.http.SetTimeout(d)
}

func (a *API) get(ctx context.Context, path string, out interface{}) error {
	return a.do(ctx, http.MethodGet, path, nil, out)
}

func (a *API) post(ctx context.Context, path string, body, out interface{}) error {
	return a.do(ctx, http.MethodPost, path, body, out)
}

func (a *API) patch(ctx context.Context, path string, body, out interface{}) error {
	return a.do(ctx, http.MethodPatch, path, body, out)
}

func (a *API) delete(ctx context.Context, path string) error {
	return a.do(ctx, http.MethodDelete, path, nil, nil)
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	req := a.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	return a.send(req, method, path, out)
}

// upload sends a multipart form with one file part
func (a *API) upload(ctx context.Context, method, path string, form map[string]string,
	field, filename string, file io.Reader, out interface{}) error {
	req := a.http.R().
		SetContext(ctx).
		SetFormData(form).
		SetMultipartField(field, filename, "application/octet-stream", file)
	return a.send(req, method, path, out)
}

func (a *API) send(req *resty.Request, method, path string, out interface{}) error {
	var env envelope
	resp, err := req.SetResult(&env).SetError(&env).Execute(method, path)
	if err != nil {
		a.log.Debug("API request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &Error{Kind: KindRequest, Err: err}
	}
	if resp.IsError() {
		a.log.Debug("API request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.String("error", env.Error),
		)
		return classify(resp.StatusCode(), env)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Kind: KindRequest, Status: resp.StatusCode(), Message: "malformed response", Err: err}
	}
	return nil
}

// stream returns the raw body of a successful GET; the caller closes it
func (a *API) stream(ctx context.Context, path string) (io.ReadCloser, string, error) {
	resp, err := a.http.R().SetContext(ctx).SetDoNotParseResponse(true).Get(path)
	if err != nil {
		return nil, "", &Error{Kind: KindRequest, Err: err}
	}
	body := resp.RawBody()
	if resp.IsError() {
		defer body.Close()
		var env envelope
		if raw, rerr := io.ReadAll(body); rerr == nil {
			_ = json.Unmarshal(raw, &env)
		}
		return nil, "", classify(resp.StatusCode(), env)
	}
	return body, resp.Header().Get("Content-Disposition"), nil
}

// classify turns a non-2xx response into an *Error
func classify(status int, env envelope) *Error {
	msg := env.Error
	if msg == "" {
		msg = env.Message
	}

	switch {
	case status == http.StatusBadRequest && len(env.Fields) > 0:
		e := validationError(env.Fields)
		e.Status = status
		return e
	case status == http.StatusBadRequest:
		return &Error{Kind: KindValidation, Status: status, Message: fallback(msg, "request was rejected")}
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return &Error{Kind: KindAuth, Status: status, Message: fallback(msg, "not authorized")}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: status, Message: fallback(msg, "not found")}
	case status == http.StatusConflict:
		return &Error{Kind: KindConflict, Status: status, Message: fallback(msg, "conflict")}
	}
	return &Error{Kind: KindRequest, Status: status, Message: fallback(msg, http.StatusText(status))}
}

func fallback(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}
