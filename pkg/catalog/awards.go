package catalog

// Awards defines the per-award poster variants. Award labels sit in a
// narrower box than the default so they clear the statue artwork.
var Awards = Category{
	Name:         "award",
	Font:         DefaultFont,
	BoxWidth:     1600,
	BoxHeight:    800,
	MinPointSize: DefaultMinPointSize,
	MaxPointSize: DefaultMaxPointSize,
	Entries: []Entry{
		{Key: "award_oscars", Slug: "oscars", Background: "award_oscars.png", FillColor: "#c5a572", OffsetY: 700},
		{Key: "award_emmys", Slug: "emmys", Background: "award_emmys.png", FillColor: "#d4c28a", OffsetY: 700},
		{Key: "award_golden_globes", Slug: "golden_globes", Background: "award_golden_globes.png", FillColor: "#e3c565", OffsetY: 700},
		{Key: "award_bafta", Slug: "bafta", Background: "award_bafta.png", FillColor: "#d9b979", OffsetY: 700},
		{Key: "award_cannes", Slug: "cannes", Background: "award_cannes.png", FillColor: "#e8d8a0", OffsetY: 700},
	},
}
