package model

// View — активный экран сессии
type View string

const (
	ViewHome          View = "HOME"
	ViewDashboard     View = "DASHBOARD"
	ViewPrograms      View = "PROGRAMS"
	ViewResearch      View = "RESEARCH"
	ViewCoursePreview View = "COURSE_PREVIEW"
)

// ParseView разбирает имя экрана из callback data
func ParseView(s string) (View, bool) {
	switch v := View(s); v {
	case ViewHome, ViewDashboard, ViewPrograms, ViewResearch, ViewCoursePreview:
		return v, true
	}
	return "", false
}
