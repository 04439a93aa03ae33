package catalog

// Decades defines the per-decade poster variants.
var Decades = base("decade", []Entry{
	{Key: "decade_1950", Slug: "1950", BackColor: "#384048", FillColor: "#e8e3d3"},
	{Key: "decade_1960", Slug: "1960", BackColor: "#705438", FillColor: "#ffe08a"},
	{Key: "decade_1970", Slug: "1970", BackColor: "#8a5a2b", FillColor: "#f7e0a1"},
	{Key: "decade_1980", Slug: "1980", BackColor: "#35175e", FillColor: "#ff6ec7"},
	{Key: "decade_1990", Slug: "1990", BackColor: "#134f5c", FillColor: "#b3f0e8"},
	{Key: "decade_2000", Slug: "2000", BackColor: "#2b2b40", FillColor: "#c0c0d8"},
	{Key: "decade_2010", Slug: "2010", BackColor: "#14303e", FillColor: "#e1edf2"},
	{Key: "decade_2020", Slug: "2020", BackColor: "#101820", FillColor: "#f2aa4c"},
})
