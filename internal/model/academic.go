package model

// StudentResult — результат пробного экзамена
type StudentResult struct {
	CourseID string `json:"course_id" yaml:"course_id"`
	Score    int    `json:"score" yaml:"score"`
	Total    int    `json:"total" yaml:"total"`
}

// Ratio возвращает score/total, ноль при total <= 0
func (r StudentResult) Ratio() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}

// Publication — запись исследовательской библиотеки
type Publication struct {
	Title     string   `json:"title" yaml:"title"`
	Author    string   `json:"author" yaml:"author"`
	Year      string   `json:"year" yaml:"year"`
	Type      string   `json:"type" yaml:"type"`
	Tags      []string `json:"tags" yaml:"tags"`
	Date      string   `json:"date,omitempty" yaml:"date"`
	Downloads int      `json:"downloads,omitempty" yaml:"downloads"`
}

// Mission — незавершённое задание на дашборде студента
type Mission struct {
	Title    string `json:"title" yaml:"title"`
	Progress int    `json:"progress" yaml:"progress"` // проценты
	Deadline string `json:"deadline" yaml:"deadline"`
}
