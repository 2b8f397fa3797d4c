// Package templates holds the transactional email templates and the
// placeholder renderer that fills them. Templates are plain HTML with
// {{dotted.path}} markers - no loops, no conditionals. A marker whose
// path is missing from the data bag renders as the empty string, so
// rendering can never fail once a template has been loaded.
package templates

import (
	"embed"
	"fmt"
	"regexp"
	"strings"

	"portfoliobook/pkg/apperr"
)

//go:embed *.html
var templateFS embed.FS

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.]+)\s*\}\}`)

// Load resolves a named template from the embedded set. The ".html"
// suffix is optional. Unknown names are the only failure mode.
func Load(name string) (string, error) {
	key := name
	if !strings.HasSuffix(key, ".html") {
		key += ".html"
	}
	b, err := templateFS.ReadFile(key)
	if err != nil {
		return "", apperr.New(apperr.CodeValidation, fmt.Sprintf("template not found: %s", name))
	}
	return string(b), nil
}

// Render substitutes every {{path}} marker in tpl with the stringified
// value at that path in data. Missing or nil values become "".
func Render(tpl string, data map[string]interface{}) string {
	return placeholderRe.ReplaceAllStringFunc(tpl, func(match string) string {
		path := placeholderRe.FindStringSubmatch(match)[1]
		return stringify(resolvePath(data, path))
	})
}

func resolvePath(data map[string]interface{}, path string) interface{} {
	var current interface{} = data
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = m[segment]
		if current == nil {
			return nil
		}
	}
	return current
}

func stringify(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
