package model

// Category — закрытый список направлений каталога
type Category string

const (
	CategorySSC              Category = "SSC"
	CategoryHSC              Category = "HSC"
	CategoryAdmission        Category = "Admission"
	CategoryCoding           Category = "Coding"
	CategoryAI               Category = "AI"
	CategoryEntrepreneurship Category = "Entrepreneurship"
)

// Categories возвращает закрытый набор категорий
func Categories() []Category {
	return []Category{
		CategorySSC,
		CategoryHSC,
		CategoryAdmission,
		CategoryCoding,
		CategoryAI,
		CategoryEntrepreneurship,
	}
}

// Valid проверяет, что категория из закрытого набора
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type SyllabusTopic struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	IsDemo bool   `json:"is_demo" yaml:"is_demo"` // доступно без оплаты
}

type Course struct {
	ID            string          `json:"id" yaml:"id"`
	Title         string          `json:"title" yaml:"title"`
	TeacherName   string          `json:"teacher_name" yaml:"teacher_name"`
	TeacherBio    string          `json:"teacher_bio" yaml:"teacher_bio"`
	Description   string          `json:"description" yaml:"description"`
	Price         int             `json:"price" yaml:"price"` // в таках
	Image         string          `json:"image" yaml:"image"`
	Duration      string          `json:"duration" yaml:"duration"`
	ClassLevel    string          `json:"class_level" yaml:"class_level"`
	Syllabus      []SyllabusTopic `json:"syllabus" yaml:"syllabus"`
	IsLocked      bool            `json:"is_locked" yaml:"is_locked"`
	Subject       string          `json:"subject" yaml:"subject"`
	SymbolicTheme string          `json:"symbolic_theme" yaml:"symbolic_theme"`
	Category      Category        `json:"category" yaml:"category"`
}

// DemoTopics возвращает темы, открытые для предпросмотра
func (c *Course) DemoTopics() []SyllabusTopic {
	var topics []SyllabusTopic
	for _, t := range c.Syllabus {
		if t.IsDemo {
			topics = append(topics, t)
		}
	}
	return topics
}

// LockedTopics возвращает темы, требующие записи на курс
func (c *Course) LockedTopics() []SyllabusTopic {
	var topics []SyllabusTopic
	for _, t := range c.Syllabus {
		if !t.IsDemo {
			topics = append(topics, t)
		}
	}
	return topics
}
