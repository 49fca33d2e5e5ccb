package api

import (
	"net/http"
	"net/url"

	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/gorilla/schema"
)

// GetStructFromQuery converts r query into a struct
func GetStructFromQuery(i interface{}, v url.Values) error {
	var decoder = schema.NewDecoder()

	err := decoder.Decode(i, v)
	if err != nil {
		return errors.NewValidation("query", err)
	}
	return nil
}

func errorNotFound(r *http.Request) error {
	return errors.NewNotFound("route", r.Method+" "+r.URL.Path)
}
