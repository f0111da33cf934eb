package devserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxUploadBytes mirrors the client-side cap with headroom for the
// multipart framing.
const maxUploadBytes = 6 * 1024 * 1024

type handler struct {
	store     *userStore
	uploadDir string
	log       zerolog.Logger
}

func newHandler(store *userStore, uploadDir string, log zerolog.Logger) (*handler, error) {
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o770); err != nil {
		return nil, err
	}
	return &handler{store: store, uploadDir: uploadDir, log: log}, nil
}

func (h *handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	writeJSON(w, http.StatusOK, h.store.list(page))
}

func (h *handler) createUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(body.Username) == "" || strings.TrimSpace(body.Email) == "" || strings.TrimSpace(body.Password) == "" {
		writeMessage(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	created, err := h.store.create(user{
		Username:  body.Username,
		Email:     body.Email,
		Password:  body.Password,
		Firstname: body.Firstname,
		Lastname:  body.Lastname,
	})
	if err != nil {
		writeMessage(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.get(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.store.update(chi.URLParam(r, "id"), body.Username, body.Email, body.Firstname, body.Lastname)
	if errors.Is(err, errNotFound) {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.store.remove(chi.URLParam(r, "id")); err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.store.get(id); err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	name := id + "-" + uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		h.log.Error().Err(err).Msg("cannot create upload file")
		writeMessage(w, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.log.Error().Err(err).Msg("cannot write upload file")
		writeMessage(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	path := "/uploads/" + name
	if err := h.store.setImage(id, path); err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":      "Profile image uploaded",
		"profileImage": path,
	})
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
