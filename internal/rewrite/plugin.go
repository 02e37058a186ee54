package rewrite

import (
	"github.com/evanw/esbuild/pkg/api"
)

// EsbuildPlugin adapts the policy into an esbuild resolution hook. One
// OnResolve hook is registered per rule; esbuild runs them in registration
// order, which preserves first-match-wins.
func (p *Policy) EsbuildPlugin() api.Plugin {
	return api.Plugin{
		Name: "import-rewrite",
		Setup: func(build api.PluginBuild) {
			for _, rule := range p.rules {
				rule := rule
				build.OnResolve(api.OnResolveOptions{Filter: rule.Pattern.String()}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					switch rule.Action {
					case Externalize:
						return api.OnResolveResult{Path: args.Path, External: true}, nil
					case Redirect:
						return api.OnResolveResult{Path: rule.Target}, nil
					default:
						return api.OnResolveResult{}, nil
					}
				})
			}
		},
	}
}
