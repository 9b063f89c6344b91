package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielterto2000/broadcastmotion-api/models"
)

func fakeTemplates(category string, n int) []models.Template {
	out := make([]models.Template, n)
	for i := range out {
		out[i] = models.Template{ID: string(rune('a' + i)), Category: category}
	}
	return out
}

func TestPagerVisibleTruncates(t *testing.T) {
	p := NewPager(fakeTemplates("news", 10), 4, 4)

	assert.Len(t, p.Visible(), 4)
	assert.True(t, p.CanLoadMore())
}

func TestPagerLoadMoreClampsToFilteredCount(t *testing.T) {
	p := NewPager(fakeTemplates("news", 6), 4, 4)

	p.LoadMore()
	assert.Equal(t, 6, p.VisibleCount())
	assert.Len(t, p.Visible(), 6)
	assert.False(t, p.CanLoadMore())
}

func TestPagerCategoryChangeResetsVisibleCount(t *testing.T) {
	data := append(fakeTemplates("news", 10), fakeTemplates("sports", 2)...)
	p := NewPager(data, 4, 4)

	p.LoadMore()
	assert.Equal(t, 8, p.VisibleCount())

	p.SetCategory("sports")
	assert.Equal(t, 4, p.VisibleCount())
	assert.Len(t, p.Visible(), 2)
	assert.False(t, p.CanLoadMore())

	// Back to "all" resets again rather than restoring the old count
	p.SetCategory("all")
	assert.Equal(t, 4, p.VisibleCount())
	assert.Len(t, p.Visible(), 4)
}

func TestPagerAllSentinelKeepsEverything(t *testing.T) {
	data := append(fakeTemplates("news", 3), fakeTemplates("sports", 3)...)
	p := NewPager(data, 10, 4)

	assert.Len(t, p.Visible(), 6)
}

func TestServiceInitialCounts(t *testing.T) {
	s := NewService()

	assert.Equal(t, InitialVisibleTemplates, s.Templates.VisibleCount())
	assert.Equal(t, InitialVisibleChromaKeyMain, s.ChromaMain.VisibleCount())
	assert.Equal(t, InitialVisibleMogrtMain, s.MogrtMain.VisibleCount())

	// Dedicated pages start with the whole list visible
	assert.Equal(t, len(ChromaKeyTemplates), s.ChromaPage.VisibleCount())
	assert.Equal(t, len(MogrtTemplates), s.MogrtPage.VisibleCount())
}

func TestServiceCategoryChangeResetsBothPagersOfAKind(t *testing.T) {
	s := NewService()
	s.ChromaPage.LoadMore()

	s.SetChromaKeyCategory("estudios")
	assert.Equal(t, "estudios", s.ChromaMain.ActiveCategory())
	assert.Equal(t, "estudios", s.ChromaPage.ActiveCategory())
	assert.Equal(t, InitialVisibleChromaKeyMain, s.ChromaMain.VisibleCount())
	assert.Equal(t, len(ChromaKeyTemplates), s.ChromaPage.VisibleCount())
}

func TestServiceFindItemAcrossKinds(t *testing.T) {
	s := NewService()

	tmpl, ok := s.FindItem(Templates[0].ID)
	assert.True(t, ok)
	assert.Equal(t, models.ItemTypeTemplate, tmpl.Type)

	chroma, ok := s.FindItem(ChromaKeyTemplates[0].ID)
	assert.True(t, ok)
	assert.Equal(t, models.ItemTypeChromaKey, chroma.Type)

	mogrt, ok := s.FindItem(MogrtTemplates[0].ID)
	assert.True(t, ok)
	assert.Equal(t, models.ItemTypeMogrt, mogrt.Type)
	// MOGRT cart lines use the static thumbnail as their image
	assert.Equal(t, MogrtTemplates[0].StaticThumbnailURL, mogrt.ImageURL)

	_, ok = s.FindItem("nope")
	assert.False(t, ok)
}
