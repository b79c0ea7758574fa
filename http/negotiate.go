package http

import (
	"strconv"
	"strings"
	"sync"
)

const (
	contentTypeHTML  = "text/html"
	contentTypePlain = "text/plain"
	contentTypeJSON  = "application/json"
)

// offeredTypes lists the representations in server preference order. Ties
// on client quality resolve to the earliest entry.
var offeredTypes = []string{contentTypeHTML, contentTypePlain, contentTypeJSON}

// renderers maps representation content types to their render functions.
// Built-ins are installed here and SetRenderer swaps entries process-wide.
var renderers = struct {
	sync.RWMutex
	m map[string]RenderFunc
}{
	m: map[string]RenderFunc{
		contentTypeHTML:  renderHTML,
		contentTypePlain: renderPlain,
		contentTypeJSON:  renderJSON,
	},
}

// SetRenderer replaces the renderer for one representation across the whole
// process and returns the previous one, so callers can restore it. A nil fn
// removes the entry, so restoring a previous renderer that never existed
// leaves the type unregistered rather than registering a nil function.
// Types outside the offered set are stored but never negotiated.
func SetRenderer(contentType string, fn RenderFunc) RenderFunc {
	renderers.Lock()
	defer renderers.Unlock()

	prev := renderers.m[contentType]
	if fn == nil {
		delete(renderers.m, contentType)
		return prev
	}
	renderers.m[contentType] = fn
	return prev
}

func rendererFor(contentType string) (RenderFunc, bool) {
	renderers.RLock()
	defer renderers.RUnlock()

	fn, ok := renderers.m[contentType]
	return fn, ok
}

// acceptRange is one parsed media range from an Accept header.
type acceptRange struct {
	typ     string
	subtype string
	q       float64
}

// negotiate picks the offered media type the Accept header likes best, or
// "" when none is acceptable. A missing or empty header accepts everything.
// Precedence follows RFC 7231: an exact match governs over type/*, which
// governs over */*; between acceptable offers the highest quality wins and
// ties fall to offer order.
func negotiate(header string, offers []string) string {
	ranges := parseAccept(header)

	best := -1
	bestQ := 0.0
	for i, offer := range offers {
		q, ok := quality(offer, ranges)
		if !ok || q <= 0 {
			continue
		}
		if q > bestQ {
			bestQ = q
			best = i
		}
	}

	if best < 0 {
		return ""
	}
	return offers[best]
}

// quality returns the client quality for offer under the most specific
// matching range. ok is false when no range matches.
func quality(offer string, ranges []acceptRange) (float64, bool) {
	typ, subtype, _ := strings.Cut(offer, "/")

	bestPrecedence := 0
	q := 0.0
	for _, r := range ranges {
		var precedence int
		switch {
		case r.typ == typ && r.subtype == subtype:
			precedence = 3
		case r.typ == typ && r.subtype == "*":
			precedence = 2
		case r.typ == "*" && r.subtype == "*":
			precedence = 1
		default:
			continue
		}
		if precedence > bestPrecedence {
			bestPrecedence = precedence
			q = r.q
		}
	}

	return q, bestPrecedence > 0
}

// parseAccept splits an Accept header into media ranges with qualities.
// Malformed ranges are dropped; a header with nothing usable accepts
// everything, like a missing header.
func parseAccept(header string) []acceptRange {
	header = strings.TrimSpace(header)
	if header == "" {
		return []acceptRange{{typ: "*", subtype: "*", q: 1}}
	}

	var ranges []acceptRange
	for _, field := range strings.Split(header, ",") {
		parts := strings.Split(field, ";")

		mediaRange := strings.TrimSpace(parts[0])
		typ, subtype, found := strings.Cut(mediaRange, "/")
		if !found || typ == "" || subtype == "" {
			continue
		}

		r := acceptRange{
			typ:     strings.ToLower(typ),
			subtype: strings.ToLower(subtype),
			q:       1,
		}

		for _, param := range parts[1:] {
			key, value, found := strings.Cut(strings.TrimSpace(param), "=")
			if !found || !strings.EqualFold(strings.TrimSpace(key), "q") {
				continue
			}
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				r.q = min(max(parsed, 0), 1)
			}
		}

		ranges = append(ranges, r)
	}

	if len(ranges) == 0 {
		return []acceptRange{{typ: "*", subtype: "*", q: 1}}
	}
	return ranges
}
