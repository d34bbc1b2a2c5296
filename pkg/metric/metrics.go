package metric

import (
	"net/http"
	"time"
)

type (
	Factory interface {
		HTTP() HTTP
		Store() Store
		Cache() Cache
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	// Store tracks inventory operations by outcome plus the duration of
	// derived computations.
	Store interface {
		Operation(op string, outcome string)
		ObserveDuration(op string, duration time.Duration)
	}

	Cache interface {
		Hit(cacheType string)
		Miss(cacheType string)
		Eviction(cacheType string, reason string)
	}
)
