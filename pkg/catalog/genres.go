package catalog

// Genres defines the per-genre poster variants.
var Genres = base("genre", []Entry{
	{Key: "genre_action", Slug: "action", BackColor: "#6f1d1b", FillColor: "#ffffff"},
	{Key: "genre_adventure", Slug: "adventure", BackColor: "#2a5d34", FillColor: "#f2e8c9"},
	{Key: "genre_animation", Slug: "animation", BackColor: "#24537a", FillColor: "#ffd166"},
	{Key: "genre_comedy", Slug: "comedy", BackColor: "#b07d13", FillColor: "#1b1b1b"},
	{Key: "genre_crime", Slug: "crime", BackColor: "#232323", FillColor: "#c9a227"},
	{Key: "genre_documentary", Slug: "documentary", BackColor: "#44546a", FillColor: "#e9eef5"},
	{Key: "genre_drama", Slug: "drama", BackColor: "#4a274f", FillColor: "#e4d3e8"},
	{Key: "genre_fantasy", Slug: "fantasy", BackColor: "#2d2a55", FillColor: "#cdbdf5"},
	{Key: "genre_horror", Slug: "horror", BackColor: "#0f0f0f", FillColor: "#b11226"},
	{Key: "genre_mystery", Slug: "mystery", BackColor: "#1f2f3f", FillColor: "#9fd0cb", OffsetY: -40},
	{Key: "genre_romance", Slug: "romance", BackColor: "#7c1f3c", FillColor: "#f7d6de"},
	{Key: "genre_science_fiction", Slug: "science_fiction", BackColor: "#10243e", FillColor: "#7fdbff"},
	{Key: "genre_thriller", Slug: "thriller", BackColor: "#33272a", FillColor: "#e0e0e0"},
	{Key: "genre_western", Slug: "western", BackColor: "#5b4223", FillColor: "#f1dcb0"},
})
