package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

type recordingObserver struct {
	method string
	path   string
	calls  int
}

func (o *recordingObserver) ObserveRequest(method, path string, start time.Time) {
	o.method = method
	o.path = path
	o.calls++
}

func TestLatencyLabelsParameterizedRoutesByPattern(t *testing.T) {
	obs := &recordingObserver{}
	r := chi.NewRouter()
	r.Use(Latency(obs))
	r.Delete("/bootcamp/{bootcampId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"1", "2", "42"} {
		req := httptest.NewRequest(http.MethodDelete, "/bootcamp/"+id, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if obs.path != "/bootcamp/{bootcampId}" {
			t.Fatalf("expected route pattern label for id %s, got %q", id, obs.path)
		}
	}
	if obs.method != http.MethodDelete {
		t.Fatalf("expected DELETE method label, got %q", obs.method)
	}
	if obs.calls != 3 {
		t.Fatalf("expected 3 observations, got %d", obs.calls)
	}
}

func TestRequestIDHonorsInboundHeader(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got != "upstream-id" {
		t.Fatalf("expected inbound request id to be reused, got %q", got)
	}
	if rec.Header().Get("X-Request-ID") != "upstream-id" {
		t.Fatalf("expected request id echoed in response header")
	}
}
