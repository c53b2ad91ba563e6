package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// parseIDVar reads a numeric path variable.
func parseIDVar(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
