package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/fundomain/pkg/buildinfo"
	"github.com/matzehuels/fundomain/pkg/cache"
	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/errors"
	"github.com/matzehuels/fundomain/pkg/pipeline"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type cosetResponse struct {
	Index    int      `json:"index"`
	Label    string   `json:"label"`
	Matrix   [4]int64 `json:"matrix"`
	Distance int      `json:"distance"`
	T        int      `json:"t"`
	TInv     int      `json:"t_inv"`
	S        int      `json:"s"`
}

type cosetsResponse struct {
	Group  string          `json:"group"`
	Index  int             `json:"index,omitempty"`
	Rounds int             `json:"rounds"`
	Cosets []cosetResponse `json:"cosets"`
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) cosets(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromRequest(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	d, err := s.runner.Enumerate(r.Context(), opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCosetsResponse(d))
}

func (s *Server) domain(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromRequest(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	format := chi.URLParam(r, "format")
	opts.Formats = []string{format}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeDomainError(w, err)
		return
	}

	key := cache.ArtifactKey(cache.ArtifactKeyOpts{
		Group:  opts.Group,
		Choice: opts.Choice,
		Seed:   opts.Seed,
		Limit:  opts.Limit,
		Labels: opts.Labels,
		Format: format,
	})
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		writeArtifact(w, r, format, data, "hit")
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	data := res.Artifacts[format]
	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		s.logger.Warn("cache set failed", "error", err)
	}
	writeArtifact(w, r, format, data, "miss")
}

// writeArtifact serves data with an ETag derived from its content.
func writeArtifact(w http.ResponseWriter, r *http.Request, format string, data []byte, cacheStatus string) {
	etag := `"` + cache.Hash(data)[:16] + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("X-Cache", cacheStatus)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func optionsFromRequest(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Group:  chi.URLParam(r, "group"),
		Choice: q.Get("choice"),
		Seed:   pipeline.DefaultSeed,
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "seed must be a non-negative integer, got %q", v)
		}
		opts.Seed = seed
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "limit must be an integer, got %q", v)
		}
		opts.Limit = limit
	}
	if v := q.Get("labels"); v != "" {
		labels, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "labels must be a boolean, got %q", v)
		}
		opts.Labels = labels
	}
	return opts, nil
}

func newCosetsResponse(d *domain.Domain) cosetsResponse {
	resp := cosetsResponse{
		Group:  d.Group.String(),
		Rounds: d.Rounds,
		Cosets: make([]cosetResponse, len(d.Reps)),
	}
	if idx, ok := d.Group.Index(); ok {
		resp.Index = idx
	}
	for i, rep := range d.Reps {
		m := rep.Matrix
		resp.Cosets[i] = cosetResponse{
			Index:    i,
			Label:    rep.Label(),
			Matrix:   [4]int64{m.A, m.B, m.C, m.D},
			Distance: rep.Distance,
			T:        int(rep.T),
			TInv:     int(rep.TInv),
			S:        int(rep.S),
		}
	}
	return resp
}
