package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var seedYAML []byte

// document — структура catalog.yaml
type document struct {
	Courses             []model.Course            `yaml:"courses"`
	MockStudent         model.User                `yaml:"mock_student"`
	Results             []model.StudentResult     `yaml:"results"`
	Publications        []model.Publication       `yaml:"publications"`
	FacultyPublications []model.Publication       `yaml:"faculty_publications"`
	Missions            []model.Mission           `yaml:"missions"`
	TeacherUploads      []string                  `yaml:"teacher_uploads"`
	MentorNote          string                    `yaml:"mentor_note"`
	LearningEffort      int                       `yaml:"learning_effort"`
	DemoNumbers         []model.DemoPaymentNumber `yaml:"demo_numbers"`
}

// Catalog — статичные справочные данные платформы. После Load не меняется,
// все методы отдают копии.
type Catalog struct {
	doc document
}

// Load разбирает встроенный документ
func Load() (*Catalog, error) {
	return Parse(seedYAML)
}

// Parse строит каталог из YAML документа
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(doc.Courses))
	for _, c := range doc.Courses {
		if c.ID == "" {
			return nil, fmt.Errorf("course %q has no id", c.Title)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate course id %q", c.ID)
		}
		if !c.Category.Valid() {
			return nil, fmt.Errorf("course %q: unknown category %q", c.ID, c.Category)
		}
		seen[c.ID] = true
	}

	if doc.MockStudent.ID == "" {
		return nil, fmt.Errorf("catalog has no mock student")
	}

	return &Catalog{doc: doc}, nil
}

// Courses возвращает курсы в порядке каталога
func (c *Catalog) Courses() []model.Course {
	courses := make([]model.Course, len(c.doc.Courses))
	for i, course := range c.doc.Courses {
		courses[i] = cloneCourse(course)
	}
	return courses
}

// CourseByID возвращает nil, если курса нет в каталоге
func (c *Catalog) CourseByID(id string) *model.Course {
	for _, course := range c.doc.Courses {
		if course.ID == id {
			cc := cloneCourse(course)
			return &cc
		}
	}
	return nil
}

func (c *Catalog) Contains(id string) bool {
	return c.CourseByID(id) != nil
}

// MockStudent возвращает свежую копию эталонного студента
func (c *Catalog) MockStudent() *model.User {
	return c.doc.MockStudent.Clone()
}

func (c *Catalog) Results() []model.StudentResult {
	return append([]model.StudentResult(nil), c.doc.Results...)
}

func (c *Catalog) Publications() []model.Publication {
	return clonePublications(c.doc.Publications)
}

// FacultyPublications — собственные материалы профессора со счётчиком скачиваний
func (c *Catalog) FacultyPublications() []model.Publication {
	return clonePublications(c.doc.FacultyPublications)
}

func (c *Catalog) Missions() []model.Mission {
	return append([]model.Mission(nil), c.doc.Missions...)
}

func (c *Catalog) TeacherUploads() []string {
	return append([]string(nil), c.doc.TeacherUploads...)
}

func (c *Catalog) MentorNote() string {
	return c.doc.MentorNote
}

// LearningEffort — процент вовлечённости для родителей
func (c *Catalog) LearningEffort() int {
	return c.doc.LearningEffort
}

// DemoNumbers возвращает начальные демо-номера кошелька
func (c *Catalog) DemoNumbers() []model.DemoPaymentNumber {
	return append([]model.DemoPaymentNumber(nil), c.doc.DemoNumbers...)
}

// FilterCourses оставляет курсы, у которых название, категория или описание
// содержат search без учёта регистра. Пустой search оставляет всё.
func FilterCourses(courses []model.Course, search string) []model.Course {
	needle := strings.ToLower(search)
	filtered := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Title), needle) ||
			strings.Contains(strings.ToLower(string(c.Category)), needle) ||
			strings.Contains(strings.ToLower(c.Description), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// FilterPublications ищет по названию, автору или любому тегу
func FilterPublications(pubs []model.Publication, search string) []model.Publication {
	needle := strings.ToLower(search)
	filtered := make([]model.Publication, 0, len(pubs))
	for _, p := range pubs {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Author), needle) ||
			anyContains(p.Tags, needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func cloneCourse(c model.Course) model.Course {
	c.Syllabus = append([]model.SyllabusTopic(nil), c.Syllabus...)
	return c
}

func clonePublications(pubs []model.Publication) []model.Publication {
	out := make([]model.Publication, len(pubs))
	for i, p := range pubs {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}
