package devserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := New(Config{UploadDir: t.TempDir()}, zerolog.Nop())
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func createUser(t *testing.T, ts *httptest.Server, username, email string) user {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":"secret"}`, username, email)
	resp, err := http.Post(ts.URL+"/api/user", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created user
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func TestCreateAndGetUser(t *testing.T) {
	ts := newTestServer(t)

	created := createUser(t, ts, "alice", "alice@example.com")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ACTIVE", created.Status, "status defaulted by the backend")

	resp, err := http.Get(ts.URL + "/api/user/" + created.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret", "password is never serialized back")
}

func TestCreateUser_Validation(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/user", "application/json",
		strings.NewReader(`{"username":"","email":"a@example.com","password":"x"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var envelope map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "Username, email and password are required", envelope["message"])
}

func TestCreateUser_Duplicate(t *testing.T) {
	ts := newTestServer(t)
	createUser(t, ts, "alice", "alice@example.com")

	resp, err := http.Post(ts.URL+"/api/user", "application/json",
		strings.NewReader(`{"username":"ALICE","email":"other@example.com","password":"x"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetUser_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/user/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListUsers_Pagination(t *testing.T) {
	ts := newTestServer(t)
	for i := 0; i < 12; i++ {
		createUser(t, ts, fmt.Sprintf("user%02d", i), fmt.Sprintf("user%02d@example.com", i))
	}

	page := func(n int) []user {
		resp, err := http.Get(fmt.Sprintf("%s/api/user?page=%d", ts.URL, n))
		require.NoError(t, err)
		defer resp.Body.Close()
		var users []user
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
		return users
	}

	assert.Len(t, page(1), 10)
	assert.Len(t, page(2), 2)
	// Past the end: empty array, not an error. The client offers "next"
	// unconditionally.
	assert.Len(t, page(3), 0)
	assert.Equal(t, "user10", page(2)[0].Username)
}

func TestUpdateAndDeleteUser(t *testing.T) {
	ts := newTestServer(t)
	created := createUser(t, ts, "alice", "alice@example.com")

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/user/"+created.ID,
		strings.NewReader(`{"username":"alice","email":"alice@example.com","firstname":"Alice","lastname":"Smith"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/user/" + created.ID)
	require.NoError(t, err)
	var got user
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	resp.Body.Close()
	assert.Equal(t, "Alice", got.Firstname)

	req, err = http.NewRequest(http.MethodDelete, ts.URL+"/api/user/"+created.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/user/" + created.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadImage_SetsProfileImageAndServesFile(t *testing.T) {
	ts := newTestServer(t)
	created := createUser(t, ts, "alice", "alice@example.com")

	content := []byte("fake image bytes")
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "avatar.jpg")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.URL+"/api/user/"+created.ID+"/upload", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(ts.URL + "/api/user/" + created.ID)
	require.NoError(t, err)
	var got user
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&got))
	resp2.Body.Close()
	require.True(t, strings.HasPrefix(got.ProfileImage, "/uploads/"), "profileImage is a relative path")

	// The uploaded bytes are served back under the image path.
	resp3, err := http.Get(ts.URL + got.ProfileImage)
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	served, err := io.ReadAll(resp3.Body)
	require.NoError(t, err)
	assert.Equal(t, content, served)
}

func TestUploadImage_MissingFileField(t *testing.T) {
	ts := newTestServer(t)
	created := createUser(t, ts, "alice", "alice@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.URL+"/api/user/"+created.ID+"/upload", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
