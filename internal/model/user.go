package model

import "strings"

// Role определяет, какой кабинет и какие экраны доступны пользователю
type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleTeacher   Role = "TEACHER"
	RoleParent    Role = "PARENT"
	RoleAdmin     Role = "ADMIN"
	RoleProfessor Role = "PROFESSOR"
)

// Roles возвращает все роли в порядке отображения
func Roles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleParent, RoleAdmin, RoleProfessor}
}

// ParseRole разбирает имя роли без учёта регистра
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Roles() {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// IsFaculty проверяет, может ли роль публиковать материалы
func (r Role) IsFaculty() bool {
	return r == RoleTeacher || r == RoleProfessor || r == RoleAdmin
}

// RegistrationDetails — заполненная студентом форма регистрации
type RegistrationDetails struct {
	Class   string `json:"class" yaml:"class"`
	GPA     string `json:"gpa" yaml:"gpa"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
	Address string `json:"address" yaml:"address"`
}

// User — личность, от которой зависит сессия. Поля прогресса только для показа.
type User struct {
	ID                  string               `json:"id" yaml:"id"`
	Name                string               `json:"name" yaml:"name"`
	Role                Role                 `json:"role" yaml:"role"`
	EmailOrPhone        string               `json:"email_or_phone,omitempty" yaml:"email_or_phone"`
	ParentPhone         string               `json:"parent_phone,omitempty" yaml:"parent_phone"`   // для студента
	StudentPhone        string               `json:"student_phone,omitempty" yaml:"student_phone"` // для родителя
	Address             string               `json:"address,omitempty" yaml:"address"`
	TeacherID           string               `json:"teacher_id,omitempty" yaml:"teacher_id"`
	Subject             string               `json:"subject,omitempty" yaml:"subject"` // для учителя/профессора
	RegistrationDetails *RegistrationDetails `json:"registration_details,omitempty" yaml:"registration_details"`
	Achievements        []string             `json:"achievements" yaml:"achievements"`
	EnrolledCourses     []string             `json:"enrolled_courses" yaml:"enrolled_courses"`
	Attendance          int                  `json:"attendance" yaml:"attendance"`
	PerformanceScore    int                  `json:"performance_score" yaml:"performance_score"`
}

// Clone возвращает глубокую копию, эталонные записи не делятся между сессиями
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Achievements = append([]string{}, u.Achievements...)
	c.EnrolledCourses = append([]string{}, u.EnrolledCourses...)
	if u.RegistrationDetails != nil {
		details := *u.RegistrationDetails
		c.RegistrationDetails = &details
	}
	return &c
}

// IsEnrolled проверяет, записан ли пользователь на курс
func (u *User) IsEnrolled(courseID string) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
