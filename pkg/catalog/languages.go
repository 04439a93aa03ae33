package catalog

// Languages defines the per-language poster variants.
var Languages = base("language", []Entry{
	{Key: "language_english", Slug: "english", BackColor: "#0c3b6e", FillColor: "#ffffff"},
	{Key: "language_french", Slug: "french", BackColor: "#1d468c", FillColor: "#ffffff"},
	{Key: "language_german", Slug: "german", BackColor: "#3b3b3b", FillColor: "#ffce00"},
	{Key: "language_spanish", Slug: "spanish", BackColor: "#a4271c", FillColor: "#f6b511"},
	{Key: "language_italian", Slug: "italian", BackColor: "#00803d", FillColor: "#ffffff"},
	{Key: "language_japanese", Slug: "japanese", BackColor: "#8c1515", FillColor: "#ffffff"},
	{Key: "language_korean", Slug: "korean", BackColor: "#123262", FillColor: "#d9d9d9"},
})
