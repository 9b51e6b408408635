package restapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"residash.io/internal/utils"
)

// queryInt reads an integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int, fieldErrors map[string][]string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		fieldErrors[name] = append(fieldErrors[name], fmt.Sprintf("%s must be an integer", name))
		return def
	}
	return value
}

// queryFloat reads a float query parameter, returning def when absent.
func queryFloat(r *http.Request, name string, def float64, fieldErrors map[string][]string) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fieldErrors[name] = append(fieldErrors[name], fmt.Sprintf("%s must be a number", name))
		return def
	}
	return value
}

// queryDateRange reads the from/to parameters as YYYY-MM-DD dates. The
// to bound covers the whole named day, matching the [from, to) reads
// the working copy performs.
func queryDateRange(r *http.Request, fieldErrors map[string][]string) (from, to time.Time) {
	fromRaw := r.URL.Query().Get("from")
	toRaw := r.URL.Query().Get("to")

	if err := utils.ValidateDate(fromRaw); err != nil {
		fieldErrors["from"] = append(fieldErrors["from"], err.Error())
	} else {
		from, _ = utils.ParseDate(fromRaw)
	}

	if err := utils.ValidateDate(toRaw); err != nil {
		fieldErrors["to"] = append(fieldErrors["to"], err.Error())
	} else if to, _ = utils.ParseDate(toRaw); !to.IsZero() {
		to = to.AddDate(0, 0, 1)
	}

	return from, to
}

// validateSystemID runs the shared ID checks and records failures.
func validateSystemID(id string, fieldErrors map[string][]string) {
	if err := utils.ValidateID(id); err != nil {
		fieldErrors["id"] = append(fieldErrors["id"], err.Error())
	}
}
