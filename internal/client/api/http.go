package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dpetrovs/userdeck/internal/client/models"
	"github.com/dpetrovs/userdeck/internal/logging"
)

// HTTPClient talks to the backend over plain net/http. The origin is injected
// at construction so tests can point it at a mock server. Per the backend
// contract no auth headers, retries or timeouts are configured.
type HTTPClient struct {
	origin string
	hc     *http.Client
	log    logging.Logger
}

func NewHTTPClient(origin string, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.NewNop()
	}
	return &HTTPClient{
		origin: strings.TrimRight(origin, "/"),
		hc:     &http.Client{},
		log:    log.With("component", "api"),
	}
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) ([]models.User, error) {
	u := c.origin + "/api/user?page=" + strconv.Itoa(page)
	c.log.Debug(ctx, "listing users", "page", page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, form models.NewUserForm) (*models.User, error) {
	c.log.Debug(ctx, "creating user", "username", form.Username)

	body, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+"/api/user", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var created models.User
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return &created, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, draft models.EditDraft) error {
	c.log.Debug(ctx, "updating user", "id", id)

	body, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.userURL(id), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	// 2xx response bodies are ignored on update.
	return checkStatus(resp)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	c.log.Debug(ctx, "deleting user", "id", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.userURL(id), nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	c.log.Debug(ctx, "fetching user", "id", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userURL(id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		drain(resp)
		return nil, ErrNotFound
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return &user, nil
}

func (c *HTTPClient) UploadProfileImage(ctx context.Context, id string, filename string, content []byte) error {
	c.log.Debug(ctx, "uploading profile image", "id", id, "file", filename, "size", len(content))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(content); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.userURL(id)+"/upload", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	// The 2xx body is unused beyond the status.
	return checkStatus(resp)
}

func (c *HTTPClient) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.origin + path
}

func (c *HTTPClient) userURL(id string) string {
	return c.origin + "/api/user/" + url.PathEscape(id)
}

// checkStatus turns a non-2xx response into a StatusError carrying the
// backend's {"message": ...} body when one is present.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&envelope)
	return &StatusError{Code: resp.StatusCode, Message: envelope.Message}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
}
