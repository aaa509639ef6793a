package types

// Option vocabularies offered by the language-skill step. Values outside these
// sets are accepted; the lists only seed the client's selects.
var (
	LanguageOptions = []string{"영어", "일본어", "중국어", "한국어", "독일어", "프랑스어", "스페인어"}
	ExamOptions     = []string{"TOEIC", "TOEFL", "IELTS", "JLPT", "HSK", "DELF/DALF", "TestDaF"}
	GradeOptions    = []string{"Native", "N1", "N2", "N3", "N4", "N5", "HSK 6급", "HSK 5급", "C2", "C1", "B2", "B1", "A2", "A1"}
)

// Options bundles every closed vocabulary for API consumers.
type Options struct {
	Languages         []string          `json:"languages"`
	Exams             []string          `json:"exams"`
	Grades            []string          `json:"grades"`
	EducationStatuses []EducationStatus `json:"educationStatuses"`
	ResumeTypes       []ResumeType      `json:"resumeTypes"`
}

// AllOptions returns copies of the option vocabularies.
func AllOptions() Options {
	return Options{
		Languages:         append([]string(nil), LanguageOptions...),
		Exams:             append([]string(nil), ExamOptions...),
		Grades:            append([]string(nil), GradeOptions...),
		EducationStatuses: append([]EducationStatus(nil), EducationStatuses...),
		ResumeTypes:       append([]ResumeType(nil), ResumeTypes...),
	}
}
