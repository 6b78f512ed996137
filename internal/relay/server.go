package relay

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"timecapsule/internal/domain"
	"timecapsule/internal/logging"
	"timecapsule/internal/services/custody"
)

// maxBody bounds deposit request bodies.
const maxBody = 64 << 10

// Handler serves the custodian API.
func Handler(custodian domain.ShareCustodian, log logging.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /shares", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req depositRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.LetterID == uuid.Nil || req.Share == "" || req.UnlockAt.IsZero() {
			http.Error(w, "letter_id, share and unlock_at are required", http.StatusBadRequest)
			return
		}
		err := custodian.Deposit(r.Context(), req.LetterID, req.Share, req.UnlockAt)
		switch {
		case errors.Is(err, domain.ErrShareExists):
			http.Error(w, err.Error(), http.StatusConflict)
			return
		case err != nil:
			log.Errorf("deposit %s: %v", req.LetterID, err)
			http.Error(w, "deposit failed", http.StatusInternalServerError)
			return
		}
		log.Infof("deposited share for %s, unlocks %s", req.LetterID, req.UnlockAt.UTC().Format(time.RFC3339))
		w.WriteHeader(http.StatusCreated)
	})

	mux.HandleFunc("GET /shares/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			http.Error(w, "invalid letter id", http.StatusBadRequest)
			return
		}
		share, err := custodian.Release(r.Context(), id)
		var sealed *custody.SealedError
		switch {
		case errors.As(err, &sealed):
			secs := math.Ceil(sealed.Remaining.Seconds())
			w.Header().Set("Retry-After", strconv.FormatInt(int64(math.Max(secs, 1)), 10))
			http.Error(w, err.Error(), http.StatusLocked)
			return
		case errors.Is(err, domain.ErrStillSealed):
			http.Error(w, err.Error(), http.StatusLocked)
			return
		case errors.Is(err, domain.ErrLetterNotFound):
			http.Error(w, "not found", http.StatusNotFound)
			return
		case err != nil:
			log.Errorf("release %s: %v", id, err)
			http.Error(w, "release failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(releaseResponse{Share: share})
	})

	return accessLog(mux, log)
}

// statusRecorder captures the status code and byte count for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

func accessLog(next http.Handler, log logging.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		log.Infof("%s %s %s %d %dB %s",
			r.Method, r.URL.Path, r.RemoteAddr, rec.status, rec.bytes, time.Since(start).Round(time.Microsecond))
	})
}
