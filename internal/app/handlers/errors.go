package handlers

import (
	"errors"
	"net/http"

	"github.com/mailru/easyjson"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/logger"
	"go.uber.org/zap"
)

const (
	errMsgEnableReadBody = "Unable to read body"
	errMsgParseBody      = "Unable to parse body"
)

//easyjson:json
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
}

func PrepareError(w http.ResponseWriter, err error) {
	var codeErr appErrors.ResponseCodeError
	if errors.As(err, &codeErr) {
		if codeErr.Code() >= http.StatusInternalServerError {
			logger.Log.Error("internal error", zap.Error(err))
		} else {
			logger.Log.Debug("request rejected", zap.Int("code", codeErr.Code()), zap.Error(err))
		}
		WriteJSONErrorResponse(w, codeErr.Msg(), codeErr.Code())
		return
	}
	logger.Log.Error("internal error", zap.Error(err))
	// Store failures and anything untyped
	WriteJSONErrorResponse(w, "Internal Server Error", http.StatusInternalServerError)
}

func WriteJSONErrorResponse(w http.ResponseWriter, message string, code int) {
	er := ErrorResponse{
		Error: message,
		Code:  code,
	}
	w.Header().Set("Content-Type", "application/json")
	json, err := ErrorResponse.MarshalJSON(er)
	if err != nil {
		logger.Log.Error("failed to marshal error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	w.Write(json)
}

func writeJSON(w http.ResponseWriter, code int, v easyjson.Marshaler) {
	rawBytes, err := easyjson.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to marshal response", zap.Error(err))
		WriteJSONErrorResponse(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(rawBytes)
}
