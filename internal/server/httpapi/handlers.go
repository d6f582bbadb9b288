package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/filehub/internal/server/files"
	"github.com/dmitrijs2005/filehub/internal/server/models"
)

// maxUploadBytes caps the JSON upload body (content arrives base64-inline).
const maxUploadBytes = 50 << 20

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type nodeResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	// ParentID serializes as the number 0 at root, otherwise the parent's
	// id string.
	ParentID any `json:"parentId"`
}

func toNodeResponse(n *models.FileNode) nodeResponse {
	var parent any = n.ParentID
	if n.ParentID == models.RootParentID {
		parent = 0
	}
	return nodeResponse{
		ID:       n.ID,
		UserID:   n.OwnerID,
		Name:     n.Name,
		Type:     n.Kind,
		IsPublic: n.IsPublic,
		ParentID: parent,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := basicCredentials(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.users.Verify(r.Context(), email, password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	token, err := s.sessions.Create(r.Context(), user.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// basicCredentials decodes the Authorization: Basic header into its
// email:password parts.
func basicCredentials(r *http.Request) (string, string, bool) {
	header := r.Header.Get("Authorization")
	encoded, found := strings.CutPrefix(header, "Basic ")
	if !found {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", false
	}

	email, password, found := strings.Cut(string(decoded), ":")
	if !found || email == "" || password == "" {
		return "", "", false
	}
	return email, password, true
}

func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Revoke(r.Context(), r.Header.Get(TokenHeaderName)); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetByID(r.Context(), actingUser(r))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Email: user.Email})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	var req struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		ParentID string `json:"parentId"`
		IsPublic bool   `json:"isPublic"`
		Data     string `json:"data"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	node, err := s.files.Create(r.Context(), actingUser(r), files.CreateParams{
		Name:     req.Name,
		Kind:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNodeResponse(node))
}

func (s *Server) handleShowFile(w http.ResponseWriter, r *http.Request) {
	node, err := s.files.Get(r.Context(), actingUser(r), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNodeResponse(node))
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	nodes, err := s.files.List(r.Context(), actingUser(r), r.URL.Query().Get("parentId"), page)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	result := make([]nodeResponse, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, toNodeResponse(n))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	s.setVisibility(w, r, true)
}

func (s *Server) handleUnpublish(w http.ResponseWriter, r *http.Request) {
	s.setVisibility(w, r, false)
}

func (s *Server) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	node, err := s.files.SetVisibility(r.Context(), actingUser(r), chi.URLParam(r, "id"), isPublic)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNodeResponse(node))
}

func (s *Server) handleFileData(w http.ResponseWriter, r *http.Request) {
	requester := s.requesterOrAnonymous(r)

	data, mimeType, err := s.files.ReadContent(r.Context(), requester, chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	dbAlive := true
	if conn := s.rm.Conn(); conn != nil {
		dbAlive = conn.PingContext(r.Context()) == nil
	}
	storageAlive := s.blobs.Ping(r.Context()) == nil

	writeJSON(w, http.StatusOK, map[string]bool{"db": dbAlive, "storage": storageAlive})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	nbUsers, err := s.users.Count(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	nbFiles, err := s.files.Count(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"users": nbUsers, "files": nbFiles})
}
