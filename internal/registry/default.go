package registry

// defaultCompetitors is used when no registry file is configured
var defaultCompetitors = []Competitor{
	{
		ID:   "doriyar",
		Name: "دوریار",
		Sources: map[Source]string{
			SourceCafeBazaar: "https://cafebazaar.ir/app/com.servicapp",
			SourceMyket:      "https://myket.ir/app/com.servicapp",
		},
	},
	{
		ID:   "mashin-man",
		Name: "ماشین من",
		Sources: map[Source]string{
			SourceCafeBazaar: "https://cafebazaar.ir/app/com.anasoftco.mycar",
			SourceMyket:      "https://myket.ir/app/com.solu.mycar",
		},
	},
	{
		ID:   "khodroyar",
		Name: "خودرویار",
		Sources: map[Source]string{
			SourceMyket:   "https://myket.ir/app/com.serendip.carfriend.persian",
			SourceWebsite: "https://khodroyar.org/apps/khodroyar-app/",
		},
	},
	{
		ID:   "soupop",
		Name: "سوپاپ",
		Sources: map[Source]string{
			SourceWebsite: "https://soupop.ir",
		},
	},
	{
		ID:   "virazh",
		Name: "ویراژ",
		Sources: map[Source]string{
			SourceMyket:   "https://myket.ir/app/ir.virazh.owner.twa",
			SourceWebsite: "https://virazh.ir/",
		},
	},
}

// Default returns the built-in competitor registry
func Default() *Registry {
	r, err := New(defaultCompetitors)
	if err != nil {
		panic(err)
	}
	return r
}
