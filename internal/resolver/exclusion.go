package resolver

import (
	"path"
	"regexp"
	"strings"
)

// SourcePattern limits exclusion rules to script sources; stylesheets and
// assets under a rejected theme are left to other loaders.
const SourcePattern = `\.(tsx?|jsx?)$`

var sourceRe = regexp.MustCompile(SourcePattern)

// ExclusionRule drops every source file under one rejected theme's
// subdirectory of any component.
type ExclusionRule struct {
	Theme   string `json:"theme" yaml:"theme"`
	Pattern string `json:"pattern" yaml:"pattern"`

	re *regexp.Regexp
}

func newExclusionRule(componentsRoot, token string) ExclusionRule {
	prefix := ""
	if root := path.Clean(componentsRoot); root != "." {
		prefix = regexp.QuoteMeta(strings.TrimPrefix(root, "./")) + "/"
	}
	pattern := prefix + `[^/]+/` + regexp.QuoteMeta(token) + `/`
	return ExclusionRule{
		Theme:   token,
		Pattern: pattern,
		re:      regexp.MustCompile(pattern),
	}
}

// Matches reports whether the rule removes the file at slash path p.
func (r ExclusionRule) Matches(p string) bool {
	if !sourceRe.MatchString(p) {
		return false
	}
	re := r.re
	if re == nil {
		re = regexp.MustCompile(r.Pattern)
	}
	return re.MatchString(p)
}
