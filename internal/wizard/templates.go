package wizard

import (
	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/types"
)

// Template is a catalogue entry shown on the template selection page.
type Template struct {
	ID          types.ResumeType `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StepCount   int              `json:"stepCount"`
	Selected    bool             `json:"selected"`
}

type templateText struct {
	name        string
	description string
}

var templateTexts = map[types.ResumeType]map[locale.Locale]templateText{
	types.ResumeTypeStandard: {
		locale.Korean:   {"스탠다드 이력서", "고민되면 이 이력서! 지원동기, 특기가 포함된 이력서 양식으로 학력, 경력, 자격사항이 세부적으로 분류되어 있습니다."},
		locale.Japanese: {"スタンダード履歴書", "迷ったらこの履歴書！志望動機・特技を含み、学歴・職歴・資格が詳しく分類された様式です。"},
		locale.English:  {"Standard Résumé", "The safe choice: motivation and strengths included, with education, career and certifications laid out in detail."},
	},
	types.ResumeTypeOriginal: {
		locale.Korean:   {"오리지널 이력서", "차별화된 디자인의 이력서입니다. A4 2장 이상으로 작성 가능합니다."},
		locale.Japanese: {"オリジナル履歴書", "デザイン性の高い履歴書です。A4で2枚以上作成できます。"},
		locale.English:  {"Original Résumé", "A distinctive design that can span two or more A4 pages."},
	},
	types.ResumeTypeCareer: {
		locale.Korean:   {"경력기술서", "경력직 지원자를 위한 목적별 작성이 가능한 경력기술서입니다."},
		locale.Japanese: {"職務経歴書", "経験者向けに目的別で作成できる職務経歴書です。"},
		locale.English:  {"Career Statement", "A career statement for experienced applicants, organised by purpose."},
	},
	types.ResumeTypeFreeForm: {
		locale.Korean:   {"프리폼 이력서", "외국계 기업 지원을 위한 영문 스타일의 1단 이력서입니다."},
		locale.Japanese: {"フリーフォーム履歴書", "外資系企業向けの英文スタイル1カラム履歴書です。"},
		locale.English:  {"Free-form Résumé", "A single-column international layout for global applications."},
	},
}

// Catalogue lists the templates in l, marking selected as preselected.
func Catalogue(l locale.Locale, selected types.ResumeType) []Template {
	out := make([]Template, 0, len(types.ResumeTypes))
	for _, t := range types.ResumeTypes {
		text, ok := templateTexts[t][l]
		if !ok {
			text = templateTexts[t][locale.Default]
		}
		out = append(out, Template{
			ID:          t,
			Name:        text.name,
			Description: text.description,
			StepCount:   len(Registry(t)),
			Selected:    t == selected,
		})
	}
	return out
}
