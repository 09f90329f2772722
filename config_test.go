package siteconfig

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteIsNormalizedDefault(t *testing.T) {
	assert.Equal(t, Normalize(Default()), Site())
}

func TestSiteValues(t *testing.T) {
	cfg := Site()

	assert.Equal(t, "Basket's dev blog", cfg.Title)
	assert.Equal(t, "https://basket-blog.netlify.app", cfg.URL)
	assert.Equal(t, "/", cfg.PathPrefix)
	assert.Equal(t, "/rss.xml", cfg.RSS)
	require.Len(t, cfg.UserLinks, 3)
	assert.Equal(t, []string{"GitHub", "Twitter", "Email"}, []string{
		cfg.UserLinks[0].Label, cfg.UserLinks[1].Label, cfg.UserLinks[2].Label,
	})
}

func TestSiteReturnsCopy(t *testing.T) {
	first := Site()
	first.Title = "mutated"
	first.UserLinks[0].URL = "https://evil.example"
	first.UserLinks = append(first.UserLinks, UserLink{Label: "extra"})

	second := Site()
	assert.Equal(t, "Basket's dev blog", second.Title)
	assert.Equal(t, "https://github.com/baskeboler", second.UserLinks[0].URL)
	assert.Len(t, second.UserLinks, 3)
}

func TestSiteConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg := Site()
			cfg.UserLinks[0].Label = "local"
		}()
	}
	wg.Wait()

	assert.Equal(t, "GitHub", Site().UserLinks[0].Label)
}

func TestCloneNilLinks(t *testing.T) {
	cfg := SiteConfig{Title: "t"}
	assert.Nil(t, cfg.Clone().UserLinks)
}
