package models

// ResumeFields holds the free-text form input for the composer. Values are not
// validated; the templates escape them on render.
type ResumeFields struct {
	Name       string `json:"name" form:"name"`
	Email      string `json:"email" form:"email"`
	Phone      string `json:"phone" form:"phone"`
	Role       string `json:"role" form:"role"`
	Skills     string `json:"skills" form:"skills"`
	Experience string `json:"experience" form:"experience"`
	Goals      string `json:"goals" form:"goals"`
	Education  string `json:"education" form:"education"`
}

type ComposedDocuments struct {
	ResumeHTML      string `json:"resume_html"`
	CoverLetterHTML string `json:"cover_letter_html"`
}
