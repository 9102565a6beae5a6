package valueobjects

import "fmt"

// Category is the intervention type of an assistance ticket.
type Category string

const (
	CategoryPlumbing   Category = "canalizacao"
	CategoryElectrical Category = "eletricidade"
	CategoryElevators  Category = "elevadores"
	CategoryHVAC       Category = "avac"
	CategoryCleaning   Category = "limpeza"
	CategoryStructural Category = "estrutura"
	CategoryGardening  Category = "jardinagem"
	CategoryOther      Category = "outros"
)

var validCategories = map[Category]bool{
	CategoryPlumbing:   true,
	CategoryElectrical: true,
	CategoryElevators:  true,
	CategoryHVAC:       true,
	CategoryCleaning:   true,
	CategoryStructural: true,
	CategoryGardening:  true,
	CategoryOther:      true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", raw)
	}
	return c, nil
}

// PhotoCategory classifies an attachment within a ticket's thread.
type PhotoCategory string

const (
	PhotoCategoryProblem   PhotoCategory = "problema"
	PhotoCategoryProgress  PhotoCategory = "progresso"
	PhotoCategoryResult    PhotoCategory = "resultado"
	PhotoCategoryDiagnosis PhotoCategory = "diagnostico"
	PhotoCategoryOther     PhotoCategory = "outros"
)

var validPhotoCategories = map[PhotoCategory]bool{
	PhotoCategoryProblem:   true,
	PhotoCategoryProgress:  true,
	PhotoCategoryResult:    true,
	PhotoCategoryDiagnosis: true,
	PhotoCategoryOther:     true,
}

func (pc PhotoCategory) String() string {
	return string(pc)
}

func (pc PhotoCategory) IsValid() bool {
	return validPhotoCategories[pc]
}

func NewPhotoCategory(raw string) (PhotoCategory, error) {
	pc := PhotoCategory(raw)
	if !pc.IsValid() {
		return "", fmt.Errorf("invalid photo category: %s", raw)
	}
	return pc, nil
}
