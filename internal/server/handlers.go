package server

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/db"
	"github.com/jonathan/achievement-blocks/internal/logger"
	"github.com/jonathan/achievement-blocks/internal/parsing"
	"github.com/jonathan/achievement-blocks/internal/ranking"
	"github.com/jonathan/achievement-blocks/internal/types"
)

// maxDocumentBytes bounds an imported document
const maxDocumentBytes = 8 << 20

// maxRequestBytes bounds JSON request bodies other than imports
const maxRequestBytes = 1 << 20

// maxLoggedText bounds client-supplied strings echoed into log lines
const maxLoggedText = 120

// ImportRequest is the JSON form of POST /blocks/import
type ImportRequest struct {
	Document string `json:"document"`
	Source   string `json:"source,omitempty"`
	Persist  bool   `json:"persist,omitempty"`
}

// ImportResponse describes the catalog installed by an import
type ImportResponse struct {
	Blocks     int                  `json:"blocks"`
	Categories []string             `json:"categories"`
	Meta       parsing.DocumentMeta `json:"meta"`
	Report     parsing.Report       `json:"report"`
	Persisted  *db.ImportRun        `json:"persisted,omitempty"`
}

// BlocksResponse is the body of GET /blocks
type BlocksResponse struct {
	Blocks []types.Block `json:"blocks"`
	Total  int           `json:"total"`
}

// SelectResponse is the body of POST /blocks/select
type SelectResponse struct {
	Ranked    []types.RankedBlock `json:"ranked"`
	Coverage  []ranking.Coverage  `json:"coverage"`
	Uncovered []string            `json:"uncovered"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"blocks": s.store.Load().Len(),
	})
}

// handleSearchBlocks filters the catalog by query parameters.
// Skills may be repeated or comma separated: ?skills=Go,AWS&skills=Redis
func (s *Server) handleSearchBlocks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := types.SearchFilters{
		Skills:        splitList(q["skills"]),
		RoleType:      q.Get("role_type"),
		Category:      q.Get("category"),
		Keywords:      q.Get("keywords"),
		StrengthLevel: q.Get("strength_level"),
	}
	if err := filters.Validate(); err != nil {
		s.failure(w, err)
		return
	}

	blocks, err := s.store.Load().Search(filters)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, BlocksResponse{Blocks: blocks, Total: len(blocks)})
}

// handleCategories returns the blocks grouped by category
func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	groups := s.store.Load().GroupByCategory()
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": groups})
}

// handleStats returns catalog statistics; ?top_n= overrides the configured list size
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	topN := s.topN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.failure(w, &ErrValidation{Field: "top_n", Message: "must be a positive integer"})
			return
		}
		topN = n
	}
	s.jsonResponse(w, http.StatusOK, s.store.Load().Stats(topN))
}

// handleImport parses a document and installs the resulting catalog.
// The body is either raw markdown or an ImportRequest when sent as application/json.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes)

	req := ImportRequest{
		Source:  r.URL.Query().Get("source"),
		Persist: r.URL.Query().Get("persist") == "true",
	}
	var (
		next *catalog.Catalog
		err  error
	)
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.failure(w, &ErrValidation{Field: "body", Message: "invalid JSON", Cause: err})
			return
		}
		if strings.TrimSpace(req.Document) == "" {
			s.failure(w, &ErrValidation{Field: "document", Message: "is required"})
			return
		}
		next = s.loader.Load(req.Document)
	} else {
		next, err = s.loader.LoadReader(r.Body)
		if err != nil {
			s.failure(w, err)
			return
		}
	}

	resp := ImportResponse{
		Blocks:     next.Len(),
		Categories: next.Categories(),
		Meta:       next.Meta(),
		Report:     next.Report(),
	}

	if req.Persist {
		if s.saver == nil {
			s.failure(w, &ErrPersistenceDisabled{})
			return
		}
		run, err := s.saver.SaveCatalog(r.Context(), db.ImportInput{
			Source:  req.Source,
			Owner:   next.Meta().Owner,
			Version: next.Meta().Version,
			Blocks:  next.Blocks(),
		})
		if err != nil {
			s.failure(w, fmt.Errorf("failed to persist catalog: %w", err))
			return
		}
		resp.Persisted = run
	}

	s.store.Swap(next)
	importLog := logger.WithFields(s.logger, zap.String(logger.FieldDocument, logger.Truncate(req.Source, maxLoggedText)))
	importLog.Info("catalog imported",
		zap.Int(logger.FieldBlocks, resp.Blocks),
		zap.Int(logger.FieldSkipped, len(resp.Report.Skipped)),
		zap.Bool("persisted", resp.Persisted != nil),
	)
	for _, skipped := range resp.Report.Skipped {
		importLog.Debug("achievement skipped",
			zap.String(logger.FieldTitle, logger.Truncate(skipped.Title, maxLoggedText)),
			zap.String("reason", skipped.Reason),
		)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRank ranks the catalog against a job target
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRankRequest(w, r)
	if !ok {
		return
	}
	ranked, err := ranking.RankCatalog(s.store.Load(), req)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ranked)
}

// handleSelect ranks the catalog and returns the top blocks with requirement coverage
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRankRequest(w, r)
	if !ok {
		return
	}
	if req.MaxBlocks == 0 {
		req.MaxBlocks = s.maxBlocks
	}
	selected, err := ranking.SelectFromCatalog(s.store.Load(), req)
	if err != nil {
		s.failure(w, err)
		return
	}
	matrix := ranking.CoverageMatrix(selected.Ranked, req.JobTarget)
	s.jsonResponse(w, http.StatusOK, SelectResponse{
		Ranked:    selected.Ranked,
		Coverage:  matrix,
		Uncovered: ranking.Uncovered(matrix),
	})
}

// handleGetImportRun returns a persisted import run by ID
func (s *Server) handleGetImportRun(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	run, err := s.saver.GetImportRun(r.Context(), id)
	if err != nil {
		s.failure(w, err)
		return
	}
	if run == nil {
		s.failure(w, &ErrNotFound{Resource: "import run", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleGetStoredBlock returns a persisted block by ID
func (s *Server) handleGetStoredBlock(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	block, err := s.saver.GetBlock(r.Context(), id)
	if err != nil {
		s.failure(w, err)
		return
	}
	if block == nil {
		s.failure(w, &ErrNotFound{Resource: "block", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, block)
}

// pathID parses the {id} path value of a stored-record lookup
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if s.saver == nil {
		s.failure(w, &ErrPersistenceDisabled{})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.failure(w, &ErrValidation{Field: "id", Message: "must be a UUID", Cause: err})
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) decodeRankRequest(w http.ResponseWriter, r *http.Request) (types.RankRequest, bool) {
	var req types.RankRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		s.failure(w, &ErrValidation{Field: "body", Message: "invalid JSON", Cause: err})
		return req, false
	}
	if err := req.Validate(); err != nil {
		s.failure(w, err)
		return req, false
	}
	if req.Filters != nil {
		if err := req.Filters.Validate(); err != nil {
			s.failure(w, err)
			return req, false
		}
	}
	return req, true
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// splitList flattens repeated and comma separated query values
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
