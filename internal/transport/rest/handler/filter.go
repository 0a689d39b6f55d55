package handler

import (
	"fmt"
	"net/http"
	"time"

	"myvoice/internal/model"
)

const filterDateLayout = "2006-01-02"

// parseFilter reads the shared reporting filter from query parameters:
// repeated session_id values plus from/to bounds. Bounds accept RFC 3339
// timestamps or plain dates; a plain "to" date covers its whole day.
func parseFilter(r *http.Request) (model.Filter, error) {
	var filter model.Filter
	query := r.URL.Query()

	if ids := query["session_id"]; len(ids) > 0 {
		filter.SessionIDs = ids
	}

	if raw := query.Get("from"); raw != "" {
		ts, _, err := parseBound(raw)
		if err != nil {
			return model.Filter{}, fmt.Errorf("invalid from parameter %q", raw)
		}
		filter.From = &ts
	}

	if raw := query.Get("to"); raw != "" {
		ts, dateOnly, err := parseBound(raw)
		if err != nil {
			return model.Filter{}, fmt.Errorf("invalid to parameter %q", raw)
		}
		if dateOnly {
			ts = ts.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = &ts
	}

	return filter, nil
}

func parseBound(raw string) (time.Time, bool, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, false, nil
	}
	ts, err := time.Parse(filterDateLayout, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return ts, true, nil
}
