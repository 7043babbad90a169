package breadcrumb

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode"
)

// LabelResolver derives a display label from a pathname and query string.
// Routes map exact paths or patterns with ":param" segments to labels.
// QueryLabels map a query parameter to a label prefix: when the parameter is
// present the label becomes "<prefix>: <value>".
// Route segments and parameter names match case-insensitively, since config
// loaders such as viper lowercase map keys.
type LabelResolver struct {
	routes      []route
	queryParams []string
	queryLabels map[string]string
}

type route struct {
	segments []string
	params   int
	label    string
}

// NewLabelResolver compiles the route and query label tables.
func NewLabelResolver(routes map[string]string, queryLabels map[string]string) *LabelResolver {
	r := &LabelResolver{queryLabels: make(map[string]string, len(queryLabels))}

	for pattern, label := range routes {
		segs := splitPath(pattern)
		params := 0
		for _, s := range segs {
			if strings.HasPrefix(s, ":") {
				params++
			}
		}
		r.routes = append(r.routes, route{segments: segs, params: params, label: label})
	}
	// Fewer parameters means more specific; ties resolve deterministically.
	sort.Slice(r.routes, func(i, j int) bool {
		if r.routes[i].params != r.routes[j].params {
			return r.routes[i].params < r.routes[j].params
		}
		return strings.Join(r.routes[i].segments, "/") < strings.Join(r.routes[j].segments, "/")
	})

	for param, prefix := range queryLabels {
		param = strings.ToLower(param)
		r.queryParams = append(r.queryParams, param)
		r.queryLabels[param] = prefix
	}
	sort.Strings(r.queryParams)

	return r
}

// Label returns the label of pathname+search. The root path is always HomeLabel.
func (r *LabelResolver) Label(pathname, search string) string {
	segs := splitPath(pathname)
	if len(segs) == 0 {
		return HomeLabel
	}

	if label, ok := r.fromQuery(search); ok {
		return label
	}

	for _, rt := range r.routes {
		if rt.match(segs) {
			return rt.label
		}
	}

	return humanize(segs[len(segs)-1])
}

func (r *LabelResolver) fromQuery(search string) (string, bool) {
	if len(r.queryParams) == 0 || search == "" {
		return "", false
	}
	values, err := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if err != nil {
		return "", false
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lowered := make(map[string]string, len(keys))
	for _, k := range keys {
		lk := strings.ToLower(k)
		if _, seen := lowered[lk]; !seen {
			lowered[lk] = values.Get(k)
		}
	}
	for _, param := range r.queryParams {
		if v := strings.TrimSpace(lowered[param]); v != "" {
			return fmt.Sprintf("%s: %s", r.queryLabels[param], v), true
		}
	}
	return "", false
}

func (rt route) match(segs []string) bool {
	if len(rt.segments) != len(segs) {
		return false
	}
	for i, s := range rt.segments {
		if strings.HasPrefix(s, ":") {
			continue
		}
		if !strings.EqualFold(s, segs[i]) {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// humanize turns a path segment like "task-details" into "Task Details".
func humanize(seg string) string {
	if unescaped, err := url.PathUnescape(seg); err == nil {
		seg = unescaped
	}
	words := strings.FieldsFunc(seg, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	if len(words) == 0 {
		return seg
	}
	return strings.Join(words, " ")
}

// Path joins pathname and search into the trail path.
func Path(pathname, search string) string {
	if pathname == "" {
		pathname = "/"
	}
	search = strings.TrimPrefix(search, "?")
	if search == "" {
		return pathname
	}
	return pathname + "?" + search
}
