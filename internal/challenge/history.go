package challenge

import (
	"encoding/json"
	"time"
)

// History maps ISO dates to a checked-in marker. A missing key means false.
type History map[string]bool

// Has reports whether the calendar date of t is checked in.
func (h History) Has(t time.Time) bool {
	return h[FormatDate(t)]
}

// Completed counts the days marked true.
func (h History) Completed() int {
	n := 0
	for _, ok := range h {
		if ok {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (h History) Clone() History {
	out := make(History, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

func encodeHistory(h History) (string, error) {
	if h == nil {
		h = History{}
	}
	b, err := json.Marshal(h)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeHistory(raw string) (History, error) {
	var h History
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, err
	}
	if h == nil {
		h = History{}
	}
	return h, nil
}
