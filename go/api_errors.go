package dealershipserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	salesapp "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/application"
	salesports "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
	"github.com/edwingd18/Prueba-motorcycles/internal/shared/crud"
	apierrors "github.com/edwingd18/Prueba-motorcycles/internal/shared/errors"
)

// parseIDParam extracts a positive integer path parameter, responding with a
// 400 problem when it is malformed.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("invalid identifier: "+raw))
		return 0, false
	}
	return id, true
}

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

func isNotFound(err error) bool {
	return errors.Is(err, crud.ErrNotFound) ||
		errors.Is(err, salesports.ErrNotFound) ||
		errors.Is(err, salesports.ErrDetailNotFound)
}

func isInvalidInput(err error) bool {
	return errors.Is(err, crud.ErrInvalidInput) || errors.Is(err, salesapp.ErrInvalidInput)
}

// respondReadError renders errors from lookups: missing records produce a
// 404 problem, anything else a 500.
func respondReadError(c *gin.Context, err error) {
	if isNotFound(err) {
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
		return
	}
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}

// respondMutationError renders errors from create and update: missing
// records produce a 404 problem, every other failure a 400.
func respondMutationError(c *gin.Context, err error) {
	if isNotFound(err) {
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
		return
	}
	if isInvalidInput(err) {
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}

// respondBindError renders payload deserialization failures.
func respondBindError(c *gin.Context, err error) {
	respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}

func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
