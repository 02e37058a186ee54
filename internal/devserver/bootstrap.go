package devserver

// bootstrapSource is the wrapper module served for dev-flagged requests.
// On every render it re-imports the plugin under development with a
// cache-busting query so the browser never serves a stale copy; draw and
// destroy forward to the held instance only when it is present.
const bootstrapSource = `class Plugin {
	constructor() {
		this.plugin = null;
	}

	async render(container) {
		const bust = Date.now();
		const module = await import(` + "`/PluginTemplate.js?${bust}`" + `);
		this.plugin = new module.default();
		this.plugin.render(container);
	}

	draw() {
		if (this.plugin && this.plugin.draw) {
			this.plugin.draw();
		}
	}

	destroy() {
		if (this.plugin && this.plugin.destroy) {
			this.plugin.destroy();
		}
	}
}

export default Plugin;
`

// GenerateBootstrap produces the bootstrap module source for a request
// path. The source is generated fresh on every request, never read from
// disk. The pathname is part of the contract for path-specific bootstraps
// but does not affect the body yet.
func GenerateBootstrap(pathname string) string {
	_ = pathname
	return bootstrapSource
}
