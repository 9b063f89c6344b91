package catalog

import "github.com/danielterto2000/broadcastmotion-api/models"

// Visible-count defaults per catalog section. The dedicated MOGRT and
// chroma-key pages start with the whole list visible.
const (
	InitialVisibleTemplates     = 8
	InitialVisibleChromaKeyMain = 4
	InitialVisibleMogrtMain     = 4

	TemplatesIncrement = 8
	MainIncrement      = 4
	PageIncrement      = 8
)

// Service owns one pager per catalog section. The main-section and
// dedicated-page pagers of a kind share their active category: changing it
// resets both to their own initial defaults.
type Service struct {
	Templates  *Pager[models.Template]
	ChromaMain *Pager[models.ChromaKeyTemplate]
	ChromaPage *Pager[models.ChromaKeyTemplate]
	MogrtMain  *Pager[models.MogrtTemplate]
	MogrtPage  *Pager[models.MogrtTemplate]
}

func NewService() *Service {
	return &Service{
		Templates:  NewPager(Templates, InitialVisibleTemplates, TemplatesIncrement),
		ChromaMain: NewPager(ChromaKeyTemplates, InitialVisibleChromaKeyMain, MainIncrement),
		ChromaPage: NewPager(ChromaKeyTemplates, len(ChromaKeyTemplates), PageIncrement),
		MogrtMain:  NewPager(MogrtTemplates, InitialVisibleMogrtMain, MainIncrement),
		MogrtPage:  NewPager(MogrtTemplates, len(MogrtTemplates), PageIncrement),
	}
}

func (s *Service) SetTemplateCategory(category string) {
	s.Templates.SetCategory(category)
}

func (s *Service) SetChromaKeyCategory(category string) {
	s.ChromaMain.SetCategory(category)
	s.ChromaPage.SetCategory(category)
}

func (s *Service) SetMogrtCategory(category string) {
	s.MogrtMain.SetCategory(category)
	s.MogrtPage.SetCategory(category)
}

// FindItem looks an id up across the three catalog kinds and returns it as
// a cart line.
func (s *Service) FindItem(id string) (models.CartItem, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t.CartLine(), true
		}
	}
	for _, t := range ChromaKeyTemplates {
		if t.ID == id {
			return t.CartLine(), true
		}
	}
	for _, t := range MogrtTemplates {
		if t.ID == id {
			return t.CartLine(), true
		}
	}
	return models.CartItem{}, false
}

// FindTemplate returns a broadcast template by id, for the detail view.
func (s *Service) FindTemplate(id string) (models.Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.Template{}, false
}
