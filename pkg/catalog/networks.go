package catalog

// Networks defines the per-network poster variants. Networks with brand
// artwork reference a background asset; the label is drawn below center so
// it clears the logo.
var Networks = base("network", []Entry{
	{Key: "network_abc", Slug: "abc", Background: "network_abc.png", FillColor: "#ffffff", OffsetY: 600},
	{Key: "network_amc", Slug: "amc", Background: "network_amc.png", FillColor: "#e8b004", OffsetY: 600},
	{Key: "network_bbc", Slug: "bbc", Background: "network_bbc.png", FillColor: "#ffffff", OffsetY: 600},
	{Key: "network_hbo", Slug: "hbo", Background: "network_hbo.png", FillColor: "#b8b8b8", OffsetY: 600},
	{Key: "network_netflix", Slug: "netflix", Background: "network_netflix.png", FillColor: "#e50914", OffsetY: 600},
})
