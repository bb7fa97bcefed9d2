package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"business-directory/internal/dto/response"
	"business-directory/internal/usecase"
	"business-directory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies at 1 MiB
const maxBodyBytes = 1 << 20

var errBodyTooLarge = errors.New("request body too large")

type Handler struct {
	Business *BusinessHandler
	Review   *ReviewHandler
	Health   *HealthHandler
}

func NewHandler(service *usecase.Service, pinger Pinger, config *utils.Config, log *zap.Logger) *Handler {
	links := linkBuilder(config.App.PublicBaseURL)

	return &Handler{
		Business: NewBusinessHandler(service.Business, links, log),
		Review:   NewReviewHandler(service.Review, links, log),
		Health:   NewHealthHandler(pinger, log),
	}
}

// linkBuilder returns the function handlers use to derive hyperlinks from
// the incoming request.
func linkBuilder(publicBaseURL string) func(*http.Request) response.Links {
	return func(r *http.Request) response.Links {
		return response.NewLinks(utils.BaseURL(r, publicBaseURL))
	}
}

// pathID reads a numeric {name} URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	return utils.ParseID(chi.URLParam(r, name))
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return body, nil
}

// decodeJSON unmarshals body into dst. Malformed JSON, or JSON that is not
// an object, counts as a missing body; an attribute of the wrong type is an
// invalid one.
func decodeJSON(body []byte, dst any) error {
	err := json.Unmarshal(body, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Errorf("%w: %s: must be %s", usecase.ErrInvalidAttributes, typeErr.Field, typeErr.Type)
	}
	return usecase.ErrMissingAttributes
}

// handleServiceError maps service errors onto status codes and the
// {"Error": ...} body.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMissingAttributes):
		log.Warn(operation+" failed - missing attributes",
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, usecase.ErrMissingAttributes.Error())

	case errors.Is(err, usecase.ErrInvalidAttributes):
		log.Warn(operation+" failed - invalid attributes",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, usecase.ErrBusinessNotFound):
		log.Warn(operation+" failed - business not found",
			zap.String("operation", operation))
		utils.ResponseNotFound(w, usecase.ErrBusinessNotFound.Error())

	case errors.Is(err, usecase.ErrReviewNotFound):
		log.Warn(operation+" failed - review not found",
			zap.String("operation", operation))
		utils.ResponseNotFound(w, usecase.ErrReviewNotFound.Error())

	case errors.Is(err, usecase.ErrReviewConflict):
		log.Warn(operation+" failed - review already exists",
			zap.String("operation", operation))
		utils.ResponseConflict(w, usecase.ErrReviewConflict.Error())

	case errors.Is(err, errBodyTooLarge):
		log.Warn(operation+" failed - body too large",
			zap.String("operation", operation))
		utils.ResponseTooLarge(w)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w)
	}
}
