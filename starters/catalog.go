package starters

import "github.com/a-h/templ"

const ViewAllURL = "/p/public/starters"

func icon(svg string) templ.Component {
	return templ.Raw(svg)
}

func newStarter(title, description, slug, svg string) Starter {
	return Starter{
		Title:       title,
		Description: description,
		Icon:        icon(svg),
		BG:          Image{Src: "/static/img/starters/bg.svg"},
		Stars:       Image{Src: "/static/img/starters/stars.svg"},
		Stars2:      Image{Src: "/static/img/starters/stars2.svg", Class: "opacity-50"},
		DeployLink:  "https://skyhook.sh/new/template/" + slug,
		SourceLink:  "https://github.com/skyhook-sh/starter-" + slug,
		PostLink:    "/p/public/articles",
	}
}

// Catalog backs the starters page grid. Entries render in order.
var Catalog = []Starter{
	newStarter(
		"Next.js",
		"A Next.js app with file-based routing, ready to deploy.",
		"nextjs",
		`<svg viewBox="0 0 24 24" aria-hidden="true"><circle cx="12" cy="12" r="10"/></svg>`,
	),
	newStarter(
		"Django",
		"Django with Postgres wired up and migrations on boot.",
		"django",
		`<svg viewBox="0 0 24 24" aria-hidden="true"><rect x="4" y="4" width="16" height="16"/></svg>`,
	),
	newStarter(
		"Discord bot",
		"A discord.js bot skeleton with slash-command registration.",
		"discord-bot",
		`<svg viewBox="0 0 24 24" aria-hidden="true"><path d="M4 6h16v12H4z"/></svg>`,
	),
	newStarter(
		"Ghost",
		"The Ghost publishing platform, storage volume included.",
		"ghost",
		`<svg viewBox="0 0 24 24" aria-hidden="true"><path d="M12 2a8 8 0 0 0-8 8v12l4-3 4 3 4-3 4 3V10a8 8 0 0 0-8-8z"/></svg>`,
	),
	newStarter(
		"Strapi",
		"Headless CMS with an admin panel and a seeded content type.",
		"strapi",
		`<svg viewBox="0 0 24 24" aria-hidden="true"><path d="M4 4h12v12H4z"/></svg>`,
	),
	newStarter(
		"Telegram bot",
		"A Telegraf bot with webhook mode preconfigured.",
		"telegram-bot",
		`<svg viewBox="0 0 24 24" aria-hidden="true"><path d="M2 12l20-8-4 18-6-5-4 4z"/></svg>`,
	),
	newStarter(
		"Rails",
		"Rails 7 with Sidekiq, Redis and Postgres attached.",
		"rails",
		`<svg viewBox="0 0 24 24" aria-hidden="true"><path d="M2 20h20L14 4H8z"/></svg>`,
	),
	{
		Title:  "More starters",
		BG:     Image{Src: "/static/img/starters/bg.svg", Class: "grayscale"},
		Stars:  Image{Src: "/static/img/starters/stars.svg"},
		Stars2: Image{Src: "/static/img/starters/stars2.svg"},
	},
}
