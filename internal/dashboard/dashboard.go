package dashboard

import "github.com/Freeeeeet/mgcc_bot/internal/model"

// Dashboard — один из Student, Teacher, Admin, Parent, Professor.
// Набор закрыт: варианты добавляются только в этом пакете.
type Dashboard interface {
	Role() model.Role
	dashboard()
}

// Catalog — справочные данные, из которых строятся дашборды
type Catalog interface {
	Courses() []model.Course
	Missions() []model.Mission
	Results() []model.StudentResult
	TeacherUploads() []string
	MentorNote() string
	LearningEffort() int
	FacultyPublications() []model.Publication
}

// Sources — всё, что нужно для построения кабинета.
// Queue заполняется только для администратора.
type Sources struct {
	Catalog Catalog
	Queue   QueueSnapshot
}

// QueueSnapshot — очередь оплат на момент отрисовки
type QueueSnapshot struct {
	Pending     []*model.PaymentRequest
	DemoNumbers []*model.DemoPaymentNumber
}

type Student struct {
	User         *model.User
	Enrolled     []model.Course
	Achievements []string
	Attendance   int
	Performance  int
	Missions     []model.Mission
}

type Teacher struct {
	User         *model.User
	Subject      string
	Distribution []Bucket
	Uploads      []string
}

type Admin struct {
	User        *model.User
	Pending     []*model.PaymentRequest
	DemoNumbers []*model.DemoPaymentNumber
}

type Parent struct {
	User           *model.User
	StudentPhone   string
	LearningEffort int
	Results        []model.StudentResult
	MentorNote     string
}

type Professor struct {
	User         *model.User
	Subject      string
	Publications []model.Publication
}

func (Student) Role() model.Role   { return model.RoleStudent }
func (Teacher) Role() model.Role   { return model.RoleTeacher }
func (Admin) Role() model.Role     { return model.RoleAdmin }
func (Parent) Role() model.Role    { return model.RoleParent }
func (Professor) Role() model.Role { return model.RoleProfessor }

func (Student) dashboard()   {}
func (Teacher) dashboard()   {}
func (Admin) dashboard()     {}
func (Parent) dashboard()    {}
func (Professor) dashboard() {}

// Select выбирает дашборд по роли. Возвращает false, если входа нет
// или роль неизвестна.
func Select(user *model.User, src Sources) (Dashboard, bool) {
	if user == nil {
		return nil, false
	}

	switch user.Role {
	case model.RoleStudent:
		return Student{
			User:         user,
			Enrolled:     enrolledCourses(src.Catalog.Courses(), user.EnrolledCourses),
			Achievements: user.Achievements,
			Attendance:   user.Attendance,
			Performance:  user.PerformanceScore,
			Missions:     src.Catalog.Missions(),
		}, true
	case model.RoleTeacher:
		return Teacher{
			User:         user,
			Subject:      subjectOrAll(user.Subject),
			Distribution: Distribute(src.Catalog.Results()),
			Uploads:      src.Catalog.TeacherUploads(),
		}, true
	case model.RoleAdmin:
		return Admin{
			User:        user,
			Pending:     src.Queue.Pending,
			DemoNumbers: src.Queue.DemoNumbers,
		}, true
	case model.RoleParent:
		return Parent{
			User:           user,
			StudentPhone:   user.StudentPhone,
			LearningEffort: src.Catalog.LearningEffort(),
			Results:        src.Catalog.Results(),
			MentorNote:     src.Catalog.MentorNote(),
		}, true
	case model.RoleProfessor:
		return Professor{
			User:         user,
			Subject:      user.Subject,
			Publications: src.Catalog.FacultyPublications(),
		}, true
	}

	return nil, false
}

// enrolledCourses сохраняет порядок каталога
func enrolledCourses(courses []model.Course, ids []string) []model.Course {
	enrolled := make([]model.Course, 0, len(ids))
	for _, c := range courses {
		for _, id := range ids {
			if c.ID == id {
				enrolled = append(enrolled, c)
				break
			}
		}
	}
	return enrolled
}

func subjectOrAll(subject string) string {
	if subject == "" {
		return "All Subjects"
	}
	return subject
}
