package session

import (
	"testing"
	"time"

	"github.com/Freeeeeet/mgcc_bot/internal/catalog"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed(t *testing.T) Seed {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return Seed{
		MockStudent: c.MockStudent,
		NewUserID:   func() string { return "usr-abcde" },
	}
}

func testCourse(t *testing.T, id string) model.Course {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	course := c.CourseByID(id)
	require.NotNil(t, course)
	return *course
}

func TestNewSessionIsAnonymousOnHome(t *testing.T) {
	s := New(testSeed(t))

	snap := s.Snapshot()
	assert.Nil(t, snap.Identity)
	assert.Equal(t, model.ViewHome, snap.View)
	assert.Nil(t, snap.SelectedCourse)
	assert.Empty(t, snap.SearchText)
	assert.False(t, snap.AuthPromptOpen)
}

func TestLoginKeepsRequestedRole(t *testing.T) {
	for _, role := range model.Roles() {
		t.Run(string(role), func(t *testing.T) {
			s := New(testSeed(t))
			user := s.Login(role, "01700000000", "Physics")

			require.NotNil(t, user)
			assert.Equal(t, role, user.Role)
			assert.Equal(t, role, s.Identity().Role)

			switch role {
			case model.RoleStudent, model.RoleParent:
				assert.Equal(t, "std-123", user.ID)
				assert.Equal(t, []string{"Early Bird", "Quiz Master", "Top 10%"}, user.Achievements)
				assert.Equal(t, []string{"ssc-path"}, user.EnrolledCourses)
			default:
				assert.Equal(t, "usr-abcde", user.ID)
				assert.Equal(t, "01700000000", user.Name)
				assert.Equal(t, "Physics", user.Subject)
				assert.Empty(t, user.Achievements)
				assert.Empty(t, user.EnrolledCourses)
				assert.Zero(t, user.Attendance)
				assert.Zero(t, user.PerformanceScore)
			}
		})
	}
}

func TestLoginStudentOverridesContact(t *testing.T) {
	s := New(testSeed(t))
	user := s.Login(model.RoleStudent, "student@mgcc.edu", "")

	assert.Equal(t, "student@mgcc.edu", user.EmailOrPhone)
	assert.Equal(t, "Sadiya Afrin", user.Name)
}

func TestLoginParentLinksStudentPhone(t *testing.T) {
	s := New(testSeed(t))
	user := s.Login(model.RoleParent, "01888990011", "")

	assert.Equal(t, model.RoleParent, user.Role)
	assert.Equal(t, "Parent of Sadiya", user.Name)
	assert.Equal(t, "01888990011", user.StudentPhone)
}

func TestLoginAlwaysOpensDashboard(t *testing.T) {
	views := []model.View{model.ViewHome, model.ViewPrograms, model.ViewResearch, model.ViewCoursePreview}
	for _, v := range views {
		t.Run(string(v), func(t *testing.T) {
			s := New(testSeed(t))
			if v == model.ViewCoursePreview {
				s.SelectCourseForPreview(testCourse(t, "ssc-path"))
			} else {
				s.ChangeView(v)
			}
			s.OpenAuthPrompt()
			require.True(t, s.AuthPromptOpen())

			s.Login(model.RoleTeacher, "1234", "")

			assert.Equal(t, model.ViewDashboard, s.View())
			assert.False(t, s.AuthPromptOpen())
		})
	}
}

func TestLoginAcceptsEmptyIdentifier(t *testing.T) {
	s := New(testSeed(t))
	user := s.Login(model.RoleAdmin, "", "")

	require.NotNil(t, user)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, model.ViewDashboard, s.View())
}

func TestLoginReturnsDetachedCopy(t *testing.T) {
	s := New(testSeed(t))
	user := s.Login(model.RoleStudent, "x", "")
	user.EnrolledCourses[0] = "changed"

	assert.Equal(t, []string{"ssc-path"}, s.Identity().EnrolledCourses)
}

func TestChangeViewHomeClearsSearch(t *testing.T) {
	s := New(testSeed(t))
	s.ChangeView(model.ViewPrograms)
	s.SetSearch("physics")

	require.True(t, s.ChangeView(model.ViewHome))
	assert.Empty(t, s.SearchText())
	assert.Equal(t, model.ViewHome, s.View())
}

func TestChangeViewElsewhereKeepsSearch(t *testing.T) {
	s := New(testSeed(t))
	s.Login(model.RoleStudent, "x", "")

	for _, v := range []model.View{model.ViewPrograms, model.ViewResearch, model.ViewDashboard, model.ViewCoursePreview} {
		s.SetSearch("hsc")
		require.True(t, s.ChangeView(v))
		assert.Equal(t, "hsc", s.SearchText(), string(v))
	}
}

func TestDashboardIgnoredWhileAnonymous(t *testing.T) {
	s := New(testSeed(t))
	s.ChangeView(model.ViewResearch)

	assert.False(t, s.ChangeView(model.ViewDashboard))
	assert.Equal(t, model.ViewResearch, s.View())
}

func TestLogoutResetsToHome(t *testing.T) {
	s := New(testSeed(t))
	s.Login(model.RoleAdmin, "admin", "")
	s.ChangeView(model.ViewPrograms)
	s.SetSearch("ai")

	s.Logout()

	snap := s.Snapshot()
	assert.Nil(t, snap.Identity)
	assert.Equal(t, model.ViewHome, snap.View)
	assert.Empty(t, snap.SearchText)
	assert.False(t, s.ChangeView(model.ViewDashboard))
}

func TestSelectCourseSurvivesNavigation(t *testing.T) {
	s := New(testSeed(t))
	course := testCourse(t, "hsc-bridge")

	s.SelectCourseForPreview(course)
	require.NotNil(t, s.SelectedCourse())
	assert.Equal(t, course, *s.SelectedCourse())
	assert.Equal(t, model.ViewCoursePreview, s.View())

	s.ChangeView(model.ViewPrograms)
	require.NotNil(t, s.SelectedCourse())
	assert.Equal(t, course, *s.SelectedCourse())

	other := testCourse(t, "adm-warrior")
	s.SelectCourseForPreview(other)
	assert.Equal(t, "adm-warrior", s.SelectedCourse().ID)
}

func TestSubmitRegistration(t *testing.T) {
	t.Run("with course", func(t *testing.T) {
		s := New(testSeed(t))
		user := s.SubmitRegistration("hsc-bridge")

		assert.Equal(t, model.RoleStudent, user.Role)
		assert.Equal(t, []string{"hsc-bridge"}, user.EnrolledCourses)
		assert.Equal(t, model.ViewDashboard, s.View())
	})

	t.Run("without course", func(t *testing.T) {
		s := New(testSeed(t))
		s.OpenAuthPrompt()
		user := s.SubmitRegistration("")

		assert.Empty(t, user.EnrolledCourses)
		assert.NotNil(t, user.EnrolledCourses)
		assert.Equal(t, model.ViewDashboard, s.View())
		assert.False(t, s.AuthPromptOpen())
	})
}

func TestRandomUserID(t *testing.T) {
	id := RandomUserID()
	assert.Len(t, id, 9)
	assert.Regexp(t, `^usr-[0-9a-f]{5}$`, id)
}

func TestRegistryLifecycle(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	r := NewRegistry(testSeed(t))
	r.now = func() time.Time { return now }

	a := r.Get(1)
	assert.Same(t, a, r.Get(1))

	now = now.Add(2 * time.Hour)
	b := r.Get(2)
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, r.Len())

	dropped := r.Sweep(time.Hour)
	assert.Equal(t, []int64{1}, dropped)
	assert.Equal(t, 1, r.Len())

	assert.Same(t, b, r.Get(2))

	r.Drop(2)
	assert.Zero(t, r.Len())
	assert.NotSame(t, b, r.Get(2))
}

func TestPlacementFollowsNavigation(t *testing.T) {
	s := New(testSeed(t))

	user, view := s.Placement()
	assert.Nil(t, user)
	assert.Equal(t, model.ViewHome, view)

	s.Login(model.RoleAdmin, "Rahim", "")
	user, view = s.Placement()
	require.NotNil(t, user)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, model.ViewDashboard, view)
}
