package server

import (
	"errors"
	"net/http"

	"github.com/prezlab/letter-generator/internal/letters"
	"github.com/prezlab/letter-generator/internal/odoo"
	"github.com/prezlab/letter-generator/internal/record"
)

// HTTPStatus maps generation errors to response status codes. Unrecognized
// errors are internal failures.
func HTTPStatus(err error) int {
	var (
		notFound        *record.NotFoundError
		incomplete      *record.IncompleteError
		schemaGap       *record.SchemaError
		unknownTemplate *letters.UnknownTemplateError
		tplNotFound     *letters.TemplateNotFoundError
		tplCorrupt      *letters.TemplateCorruptError
		auth            *odoo.AuthError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unknownTemplate):
		return http.StatusBadRequest
	case errors.As(err, &incomplete), errors.As(err, &schemaGap):
		return http.StatusUnprocessableEntity
	case errors.As(err, &auth):
		return http.StatusBadGateway
	case errors.As(err, &tplNotFound), errors.As(err, &tplCorrupt):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
