package locale

// Message keys shared by the wizard, preview and template catalogue.
const (
	MsgNotEntered     = "notEntered"
	MsgResumeTitle    = "resumeTitle"
	MsgBasicInfo      = "basicInfo"
	MsgEducation      = "education"
	MsgCareer         = "career"
	MsgCertifications = "certifications"
	MsgCertsLanguages = "certsLanguages"
	MsgLanguages      = "languages"
	MsgSelfIntro      = "selfIntro"
	MsgPortfolio      = "portfolio"
	MsgProjects       = "projects"
	MsgName           = "name"
	MsgEmail          = "email"
	MsgPhone          = "phone"
	MsgAddress        = "address"
	MsgBirthDate      = "birthDate"
	MsgResumeDate     = "resumeDate"
	MsgPeriod         = "period"
	MsgMajor          = "major"
	MsgStatus         = "status"
	MsgPosition       = "position"
	MsgIssuer         = "issuer"
	MsgAcquiredDate   = "acquiredDate"
	MsgExam           = "exam"
	MsgGrade          = "grade"
	MsgScore          = "score"
	MsgMotivation     = "motivation"
	MsgStrengths      = "strengths"
	MsgHobbies        = "hobbies"
	MsgSaved          = "saved"
)

var messages = map[Locale]map[string]string{
	Korean: {
		MsgNotEntered:     "미입력",
		MsgResumeTitle:    "이력서",
		MsgBasicInfo:      "기본 정보",
		MsgEducation:      "학력",
		MsgCareer:         "경력",
		MsgCertifications: "자격증",
		MsgCertsLanguages: "자격/어학",
		MsgLanguages:      "어학",
		MsgSelfIntro:      "자기소개",
		MsgPortfolio:      "포트폴리오",
		MsgProjects:       "프로젝트",
		MsgName:           "이름",
		MsgEmail:          "이메일",
		MsgPhone:          "연락처",
		MsgAddress:        "주소",
		MsgBirthDate:      "생년월일",
		MsgResumeDate:     "작성일",
		MsgPeriod:         "기간",
		MsgMajor:          "전공",
		MsgStatus:         "상태",
		MsgPosition:       "직위",
		MsgIssuer:         "발행처",
		MsgAcquiredDate:   "취득일",
		MsgExam:           "시험",
		MsgGrade:          "등급",
		MsgScore:          "점수",
		MsgMotivation:     "지원동기",
		MsgStrengths:      "장점",
		MsgHobbies:        "취미/특기",
		MsgSaved:          "이력서가 저장되었습니다!",

		"status.graduated": "졸업",
		"status.enrolled":  "재학",
		"status.leave":     "휴학",
		"status.dropout":   "중퇴",
		"status.expected":  "졸업예정",
	},
	Japanese: {
		MsgNotEntered:     "未入力",
		MsgResumeTitle:    "履歴書",
		MsgBasicInfo:      "基本情報",
		MsgEducation:      "学歴",
		MsgCareer:         "職歴",
		MsgCertifications: "資格",
		MsgCertsLanguages: "資格・語学",
		MsgLanguages:      "語学",
		MsgSelfIntro:      "自己紹介",
		MsgPortfolio:      "ポートフォリオ",
		MsgProjects:       "プロジェクト",
		MsgName:           "氏名",
		MsgEmail:          "メール",
		MsgPhone:          "電話番号",
		MsgAddress:        "住所",
		MsgBirthDate:      "生年月日",
		MsgResumeDate:     "作成日",
		MsgPeriod:         "期間",
		MsgMajor:          "専攻",
		MsgStatus:         "状態",
		MsgPosition:       "役職",
		MsgIssuer:         "発行元",
		MsgAcquiredDate:   "取得日",
		MsgExam:           "試験",
		MsgGrade:          "級",
		MsgScore:          "スコア",
		MsgMotivation:     "志望動機",
		MsgStrengths:      "長所",
		MsgHobbies:        "趣味・特技",
		MsgSaved:          "履歴書を保存しました！",

		"status.graduated": "卒業",
		"status.enrolled":  "在学",
		"status.leave":     "休学",
		"status.dropout":   "中退",
		"status.expected":  "卒業見込",
	},
	English: {
		MsgNotEntered:     "Not entered",
		MsgResumeTitle:    "Résumé",
		MsgBasicInfo:      "Basic Info",
		MsgEducation:      "Education",
		MsgCareer:         "Career",
		MsgCertifications: "Certifications",
		MsgCertsLanguages: "Certifications / Languages",
		MsgLanguages:      "Languages",
		MsgSelfIntro:      "Self-Introduction",
		MsgPortfolio:      "Portfolio",
		MsgProjects:       "Projects",
		MsgName:           "Name",
		MsgEmail:          "Email",
		MsgPhone:          "Phone",
		MsgAddress:        "Address",
		MsgBirthDate:      "Date of Birth",
		MsgResumeDate:     "Date",
		MsgPeriod:         "Period",
		MsgMajor:          "Major",
		MsgStatus:         "Status",
		MsgPosition:       "Position",
		MsgIssuer:         "Issuer",
		MsgAcquiredDate:   "Acquired",
		MsgExam:           "Exam",
		MsgGrade:          "Grade",
		MsgScore:          "Score",
		MsgMotivation:     "Motivation",
		MsgStrengths:      "Strengths",
		MsgHobbies:        "Hobbies",
		MsgSaved:          "Your résumé has been saved!",

		"status.graduated": "Graduated",
		"status.enrolled":  "Enrolled",
		"status.leave":     "On leave",
		"status.dropout":   "Withdrawn",
		"status.expected":  "Expected",
	},
}

// Text returns the message for key in l, falling back to Default and then to
// the key itself.
func Text(l Locale, key string) string {
	if m, ok := messages[l]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[Default][key]; ok {
		return s
	}
	return key
}

// StatusText returns the localized label of an education status value.
func StatusText(l Locale, status string) string {
	if status == "" {
		return ""
	}
	return Text(l, "status."+status)
}
