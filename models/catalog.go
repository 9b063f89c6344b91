package models

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FilterValue string `json:"filterValue"`
}

type Template struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	ImageURL              string   `json:"imageUrl"`
	Price                 float64  `json:"price"`
	Category              string   `json:"category"`
	CategoryDisplayName   string   `json:"categoryDisplayName"`
	DetailedDescription   string   `json:"detailedDescription"`
	Features              []string `json:"features"`
	SoftwareCompatibility []string `json:"softwareCompatibility"`
	Resolution            string   `json:"resolution"`
	Duration              string   `json:"duration,omitempty"`
	FileFormat            string   `json:"fileFormat,omitempty"`
}

type ChromaKeyTemplate struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	ImageURL            string  `json:"imageUrl"`
	Price               float64 `json:"price"`
	Category            string  `json:"category"`
	CategoryDisplayName string  `json:"categoryDisplayName"`
}

type MogrtSpecification struct {
	PremiereVersion string   `json:"premiereVersion"`
	Resolution      string   `json:"resolution"`
	Customizable    []string `json:"customizable"`
	Background      string   `json:"background"`
}

type NichePackageDetails struct {
	Icon           string `json:"icon"`
	TitleHighlight string `json:"titleHighlight"`
}

type MogrtTemplate struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	StaticThumbnailURL   string               `json:"staticThumbnailUrl"`
	AnimatedThumbnailURL string               `json:"animatedThumbnailUrl,omitempty"`
	Price                float64              `json:"price"`
	Category             string               `json:"category"`
	CategoryDisplayName  string               `json:"categoryDisplayName"`
	Specifications       MogrtSpecification   `json:"specifications"`
	IsNichePackage       bool                 `json:"isNichePackage,omitempty"`
	NichePackageDetails  *NichePackageDetails `json:"nichePackageDetails,omitempty"`
}

func (t Template) CategoryKey() string          { return t.Category }
func (t ChromaKeyTemplate) CategoryKey() string { return t.Category }
func (t MogrtTemplate) CategoryKey() string     { return t.Category }

// CartLine converts the template into a cart line.
func (t Template) CartLine() CartItem {
	return CartItem{ID: t.ID, Name: t.Name, ImageURL: t.ImageURL, Price: t.Price, Quantity: 1, Type: ItemTypeTemplate}
}

func (t ChromaKeyTemplate) CartLine() CartItem {
	return CartItem{ID: t.ID, Name: t.Name, ImageURL: t.ImageURL, Price: t.Price, Quantity: 1, Type: ItemTypeChromaKey}
}

// CartLine converts the MOGRT into a cart line. The static thumbnail is
// the cart image; the other kinds have a direct image attribute.
func (t MogrtTemplate) CartLine() CartItem {
	return CartItem{ID: t.ID, Name: t.Name, ImageURL: t.StaticThumbnailURL, Price: t.Price, Quantity: 1, Type: ItemTypeMogrt}
}
