package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// reportRange resolves the optional start/end query parameters into an
// inclusive date range. A missing start means the beginning of time, a
// missing end means today. The end bound is pushed to the last instant of
// its day so orders placed during that day are counted.
func reportRange(r *http.Request) (time.Time, time.Time, error) {
	start, err := parseDateQuery(r, "start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateQuery(r, "end")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	from := time.Time{}
	if start != nil {
		from = *start
	}
	to := time.Now()
	if end != nil {
		to = *end
	}
	to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), to.Location())
	return from, to, nil
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
