package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"rwrd/core"

	"github.com/sirupsen/logrus"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	if err := enc.Encode(H{"data": v}); err != nil {
		logrus.Errorln(err)
	}
}

// Error write error
func Error(w http.ResponseWriter, statusCode, errCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	enc := json.NewEncoder(w)
	if err := enc.Encode(H{"code": errCode, "msg": err.Error()}); err != nil {
		logrus.Errorln(err)
	}
}

// Code renders a business error with its code; unrecognized errors become
// internal errors without leaking the message
func Code(w http.ResponseWriter, err error) {
	code, ok := err.(core.ErrorCode)
	if !ok {
		code = core.ErrUnknown
	}

	status := http.StatusBadRequest
	switch code {
	case core.ErrUnknown:
		status = http.StatusInternalServerError
	case core.ErrUnauthorized:
		status = http.StatusUnauthorized
	case core.ErrPoolNotFound,
		core.ErrDepositNotFound,
		core.ErrMerchantNotFound,
		core.ErrLoanNotFound:
		status = http.StatusNotFound
	}

	Error(w, status, int(code), errors.New(code.Msg()))
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, -1, err)
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, -1, err)
}
