package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/pubgate/internal/domain/types"
	"github.com/okian/pubgate/internal/domain/validation"
	"github.com/okian/pubgate/pkg/metrics"
)

// ResourceHandler serves the upstream-backed routes.
type ResourceHandler struct {
	deps Dependencies
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(deps Dependencies) *ResourceHandler {
	return &ResourceHandler{deps: deps}
}

// HandleDog handles GET /dog/ requests.
func (h *ResourceHandler) HandleDog(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "dog", validation.None, func(ctx context.Context, _ validation.Params) (types.DogImage, error) {
		return h.deps.Dog(ctx)
	})
}

// HandleCat handles GET /cat/ requests.
func (h *ResourceHandler) HandleCat(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "cat", validation.None, func(ctx context.Context, _ validation.Params) (types.CatImage, error) {
		return h.deps.Cat(ctx)
	})
}

// HandleJoke handles GET /joke/ requests.
func (h *ResourceHandler) HandleJoke(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "joke", validation.None, func(ctx context.Context, _ validation.Params) (types.Joke, error) {
		return h.deps.Joke(ctx)
	})
}

// HandleAdvice handles GET /advice/ requests.
func (h *ResourceHandler) HandleAdvice(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "advice", validation.None, func(ctx context.Context, _ validation.Params) (types.Advice, error) {
		return h.deps.Advice(ctx)
	})
}

// HandleAge handles GET /age/?name= requests.
func (h *ResourceHandler) HandleAge(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "age", validation.NameQuery, func(ctx context.Context, p validation.Params) (types.AgePrediction, error) {
		return h.deps.Age(ctx, p.Get("name"))
	})
}

// HandleCountry handles GET /country/?name= requests.
func (h *ResourceHandler) HandleCountry(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "country", validation.NameQuery, func(ctx context.Context, p validation.Params) (types.CountryDetail, error) {
		return h.deps.Country(ctx, p.Get("name"))
	})
}

// HandleUniversities handles GET /universities/?country= requests.
func (h *ResourceHandler) HandleUniversities(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "universities", validation.CountryQuery, func(ctx context.Context, p validation.Params) (types.CountryUniversities, error) {
		return h.deps.Universities(ctx, p.Get("country"))
	})
}

// HandleUniversitiesGrouped handles GET /universities/pro/?country= requests.
func (h *ResourceHandler) HandleUniversitiesGrouped(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "universities_pro", validation.CountryQuery, func(ctx context.Context, p validation.Params) (types.CountryUniversities, error) {
		return h.deps.UniversitiesGrouped(ctx, p.Get("country"))
	})
}

// HandleBored handles GET /bored/?type= requests.
func (h *ResourceHandler) HandleBored(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "bored", validation.BoredQuery, func(ctx context.Context, p validation.Params) (types.Activity, error) {
		return h.deps.Bored(ctx, p.Get("type"))
	})
}

// HandleQuote handles GET /quotes/ requests.
func (h *ResourceHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "quotes", validation.None, func(ctx context.Context, _ validation.Params) (types.Quote, error) {
		return h.deps.Quote(ctx)
	})
}

// serve validates the query against schema, runs fetch and writes the result.
// Invalid input never reaches fetch.
func serve[T any](
	w http.ResponseWriter,
	r *http.Request,
	endpoint string,
	schema validation.Schema,
	fetch func(context.Context, validation.Params) (T, error),
) {
	params, err := schema.Validate(r.URL.Query())
	if err != nil {
		var verr *validation.Error
		if !errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, msgInvalidQuery, nil)
			return
		}
		for field := range verr.Fields {
			metrics.RecordValidationFailure(endpoint, field)
		}
		writeError(w, http.StatusBadRequest, msgInvalidQuery, verr.Fields)
		return
	}

	out, err := fetch(r.Context(), params)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, msgUnavailable, nil)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
