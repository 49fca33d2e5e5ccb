package api

import (
	"encoding/json"
	"net/http"

	"github.com/Optum/guardduty-enabler/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// WriteAPIErrorResponse writes an error to the ResponseWriter
func WriteAPIErrorResponse(w http.ResponseWriter, err error) {
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("%+v", err)
	} else {
		log.Errorf("%v", err)
	}

	switch t := err.(type) {
	case *errors.StatusError:
		WriteAPIResponse(w, t.HTTPCode(), t)
		return
	}
	WriteAPIResponse(
		w,
		http.StatusInternalServerError,
		errors.NewInternalServer("unknown error", err),
	)
}

// WriteAPIResponse writes the response out to the provided ResponseWriter
func WriteAPIResponse(w http.ResponseWriter, status int, body interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
