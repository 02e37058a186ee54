// Package rewrite classifies module specifiers before they reach the
// bundler: network-origin imports are externalized, and in alias mode the
// React package names are redirected to their preact counterparts.
package rewrite

import (
	"path/filepath"
	"regexp"
)

type Action int

const (
	Unchanged Action = iota
	Externalize
	Redirect
)

// Decision is the outcome of applying the policy to one specifier. Path is
// only set for Redirect.
type Decision struct {
	Action Action
	Path   string
}

// Rule matches a specifier pattern to an action. Rules are evaluated in
// order, first match wins.
type Rule struct {
	Pattern *regexp.Regexp
	Action  Action
	Target  string
}

type Policy struct {
	aliasMode bool
	rules     []Rule
}

const (
	uiLibraryName   = "react"
	domRendererName = "react-dom"
	testUtilsName   = "react-dom/test-utils"
)

var networkImportPattern = regexp.MustCompile(`^https?://`)

// NewPolicy builds the rule set. projectRoot anchors the alias redirect
// targets inside the project's node_modules tree; it is not checked for
// existence here, the bundler reports unresolvable paths itself.
func NewPolicy(aliasMode bool, projectRoot string) *Policy {
	rules := []Rule{
		{Pattern: networkImportPattern, Action: Externalize},
	}

	if aliasMode {
		compatEntry := filepath.Join(projectRoot, "node_modules", "preact", "compat", "dist", "compat.module.js")
		testUtilsEntry := filepath.Join(projectRoot, "node_modules", "preact", "test-utils", "dist", "testUtils.module.js")

		rules = append(rules,
			Rule{Pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(testUtilsName) + `$`), Action: Redirect, Target: testUtilsEntry},
			Rule{Pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(domRendererName) + `$`), Action: Redirect, Target: compatEntry},
			Rule{Pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(uiLibraryName) + `$`), Action: Redirect, Target: compatEntry},
		)
	}

	return &Policy{
		aliasMode: aliasMode,
		rules:     rules,
	}
}

// Apply classifies a specifier. An unmatched specifier falls through as
// Unchanged; there is no error path.
func (p *Policy) Apply(specifier string) Decision {
	for _, rule := range p.rules {
		if !rule.Pattern.MatchString(specifier) {
			continue
		}
		if rule.Action == Redirect {
			return Decision{Action: Redirect, Path: rule.Target}
		}
		return Decision{Action: rule.Action}
	}
	return Decision{Action: Unchanged}
}

func (p *Policy) AliasMode() bool {
	return p.aliasMode
}

func (p *Policy) Rules() []Rule {
	return p.rules
}
