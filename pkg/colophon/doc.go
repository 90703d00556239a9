// Package colophon renders the site's closing "Get in touch" section.
//
// Section content and its scroll animations live in section.yaml, embedded
// into the binary and validated at startup. Each animated element carries a
// data-animate attribute holding its GSAP tween; static/colophon.js reads
// those attributes and wires the contact dialog to the contact endpoint.
//
//	section, err := colophon.Default()
//	app := site.New(
//	    site.WithHandlers(colophon.NewHandler(section)),
//	    site.WithStaticFiles("/static/", colophon.Assets, "static"),
//	    site.WithHealthChecks(site.WithReadinessCheck("content", section.Healthcheck)),
//	)
package colophon
