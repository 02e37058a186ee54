package rewrite

import (
	"testing"
)

func TestNetworkImportsAlwaysExternalized(t *testing.T) {
	specifiers := []string{
		"https://cdn.example.com/lib.js",
		"http://localhost:9000/mod.js",
		"https://unpkg.com/preact@10",
	}

	for _, aliasMode := range []bool{false, true} {
		policy := NewPolicy(aliasMode, "/project")
		for _, spec := range specifiers {
			decision := policy.Apply(spec)
			if decision.Action != Externalize {
				t.Errorf("Apply(%q) with aliasMode=%v = %v, want Externalize", spec, aliasMode, decision.Action)
			}
		}
	}
}

func TestAliasModeRedirectsReactImports(t *testing.T) {
	policy := NewPolicy(true, "/project")

	for _, spec := range []string{"react", "react-dom", "react-dom/test-utils"} {
		decision := policy.Apply(spec)
		if decision.Action != Redirect {
			t.Fatalf("Apply(%q) = %v, want Redirect", spec, decision.Action)
		}
		if decision.Path == "" {
			t.Errorf("Apply(%q) returned empty redirect target", spec)
		}
		if decision.Path == spec {
			t.Errorf("Apply(%q) redirected to itself", spec)
		}
	}
}

func TestAliasModeSharesCompatEntry(t *testing.T) {
	policy := NewPolicy(true, "/project")

	react := policy.Apply("react")
	reactDOM := policy.Apply("react-dom")
	testUtils := policy.Apply("react-dom/test-utils")

	if react.Path != reactDOM.Path {
		t.Errorf("react and react-dom should share a compat entry, got %q and %q", react.Path, reactDOM.Path)
	}
	if testUtils.Path == react.Path {
		t.Errorf("test-utils should not resolve to the compat entry, got %q", testUtils.Path)
	}
}

func TestAliasModeDisabledLeavesReactUnchanged(t *testing.T) {
	policy := NewPolicy(false, "/project")

	for _, spec := range []string{"react", "react-dom", "react-dom/test-utils"} {
		decision := policy.Apply(spec)
		if decision.Action != Unchanged {
			t.Errorf("Apply(%q) without alias mode = %v, want Unchanged", spec, decision.Action)
		}
	}
}

func TestUnmatchedSpecifierFallsThrough(t *testing.T) {
	tests := []struct {
		name      string
		aliasMode bool
		specifier string
	}{
		{name: "relative import", aliasMode: true, specifier: "./utils"},
		{name: "bare package", aliasMode: true, specifier: "lodash"},
		{name: "react submodule not in rules", aliasMode: true, specifier: "react-dom/server"},
		{name: "react prefix but longer", aliasMode: true, specifier: "react-router"},
		{name: "anything without alias mode", aliasMode: false, specifier: "some/deep/path.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewPolicy(tt.aliasMode, "/project")
			decision := policy.Apply(tt.specifier)
			if decision.Action != Unchanged {
				t.Errorf("Apply(%q) = %v, want Unchanged", tt.specifier, decision.Action)
			}
			if decision.Path != "" {
				t.Errorf("Unchanged decision carries path %q", decision.Path)
			}
		})
	}
}

func TestRuleOrderNetworkFirst(t *testing.T) {
	policy := NewPolicy(true, "/project")

	// A network URL that happens to mention react must still externalize.
	decision := policy.Apply("https://esm.sh/react")
	if decision.Action != Externalize {
		t.Errorf("network react URL = %v, want Externalize", decision.Action)
	}
}

func TestEsbuildPluginShape(t *testing.T) {
	plugin := NewPolicy(true, "/project").EsbuildPlugin()

	if plugin.Name != "import-rewrite" {
		t.Errorf("plugin name = %q, want import-rewrite", plugin.Name)
	}
	if plugin.Setup == nil {
		t.Error("plugin has no setup function")
	}
}
