package siteconfig

// Default returns the raw, un-normalized configuration of the blog.
func Default() SiteConfig {
	return SiteConfig{
		Title:      "Basket's dev blog",
		TitleShort: "Dev blog",
		TitleAlt:   "Web Development",
		Logo:       "/logos/logo-1024.png",

		URL:         "https://basket-blog.netlify.app",
		PathPrefix:  "",
		FixedFooter: false,
		Description: "My dev blog.",
		RSS:         "/rss.xml",

		FBAppID:               "1825356251115265",
		GATrackingID:          "UA-47311644-4",
		DisqusShortname:       "baskets-dev-blog",
		PostDefaultCategoryID: "Tech",
		DateFromFormat:        "YYYY-MM-DD",
		DateFormat:            "DD/MM/YYYY",

		UserName:        "Victor Gil",
		UserEmail:       "baskeboler@gmail.com",
		UserTwitter:     "baskeboler",
		UserLocation:    "Montevideo, Uruguay",
		UserAvatar:      "/assets/myAvatar.png",
		UserDescription: "Hi, I'm Victor.",
		UserLinks: []UserLink{
			{Label: "GitHub", URL: "https://github.com/baskeboler", IconClassName: "fa fa-github"},
			{Label: "Twitter", URL: "https://twitter.com/baskeboler", IconClassName: "fa fa-twitter"},
			{Label: "Email", URL: "mailto:baskeboler@gmail.com", IconClassName: "fa fa-envelope"},
		},

		Copyright: "Copyright © 2021. Victor Gil",
	}
}
