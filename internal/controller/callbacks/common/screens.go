package common

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/mgcc_bot/internal/assistant"
	"github.com/Freeeeeet/mgcc_bot/internal/catalog"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mgcc_bot/internal/dashboard"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/Freeeeeet/mgcc_bot/internal/session"
	"github.com/go-telegram/bot/models"
)

const (
	homeCourseLimit = 3
	historyLimit    = 6
	previewLimit    = 600
	// Номер из памятки bKash, если демо-номеров нет
	fallbackPaymentNumber = "017XXXXXXXX (Personal)"
)

var esc = formatting.Escape

// BuildHomeScreen формирует главный экран: hero и первые три курса
func BuildHomeScreen(snap session.Snapshot, cat *catalog.Catalog) (string, *models.InlineKeyboardMarkup) {
	courses := catalog.FilterCourses(cat.Courses(), snap.SearchText)
	if len(courses) > homeCourseLimit {
		courses = courses[:homeCourseLimit]
	}

	var sb strings.Builder
	sb.WriteString("🏛 <b>MGCC</b> · Unified Learning Infrastructure\n\n")
	sb.WriteString("<b>Academic Mastery.</b>\n")
	sb.WriteString("Where elite curiosity meets verified intelligence. MGCC provides the foundation for the leaders of tomorrow.\n\n")
	sb.WriteString(searchLine(snap))
	sb.WriteString("📖 <b>Curriculum Preview</b>\n")
	writeCourseList(&sb, courses, false)

	b := keyboard.NewBuilder()
	addCourseButtons(b, courses)
	b.Row(keyboard.ViewButton("📚 Browse all programs", model.ViewPrograms))
	b.AddNav(snap.Identity != nil, snap.SearchText != "")

	return sb.String(), b.Build()
}

// BuildProgramsScreen формирует каталог курсов с учётом поиска
func BuildProgramsScreen(snap session.Snapshot, cat *catalog.Catalog) (string, *models.InlineKeyboardMarkup) {
	courses := catalog.FilterCourses(cat.Courses(), snap.SearchText)

	var sb strings.Builder
	sb.WriteString("📚 <b>The Catalog.</b>\n")
	sb.WriteString("Full access granted to registered MGCC members.\n\n")
	sb.WriteString(searchLine(snap))
	writeCourseList(&sb, courses, true)

	b := keyboard.NewBuilder()
	addCourseButtons(b, courses)
	b.AddNav(snap.Identity != nil, snap.SearchText != "")

	return sb.String(), b.Build()
}

// BuildCoursePreviewScreen формирует карточку курса с программой
func BuildCoursePreviewScreen(snap session.Snapshot, course model.Course) (string, *models.InlineKeyboardMarkup) {
	enrolled := snap.Identity != nil && snap.Identity.IsEnrolled(course.ID)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📘 <b>%s</b>\n", esc(course.Title))
	fmt.Fprintf(&sb, "%s · %s · %s\n", esc(string(course.Category)), esc(course.ClassLevel), esc(course.Duration))
	fmt.Fprintf(&sb, "💰 %s\n\n", formatting.FormatPrice(course.Price))
	fmt.Fprintf(&sb, "%s\n\n", esc(course.Description))

	sb.WriteString("🧑‍🏫 <b>Faculty Profile</b>\n")
	fmt.Fprintf(&sb, "%s\n<i>%s</i>\n\n", esc(course.TeacherName), esc(course.TeacherBio))

	sb.WriteString("📋 <b>Syllabus Matrix</b>\n")
	for i, topic := range course.Syllabus {
		if topic.IsDemo || enrolled {
			fmt.Fprintf(&sb, "%d. ▶️ %s", i+1, esc(topic.Title))
			if topic.IsDemo {
				sb.WriteString(" · <i>Sample Video</i>")
			}
			sb.WriteString("\n")
		} else {
			fmt.Fprintf(&sb, "%d. 🔒 %s\n", i+1, esc(topic.Title))
		}
	}

	b := keyboard.NewBuilder()
	if enrolled {
		sb.WriteString("\n✅ <b>Enrolled.</b> Full materials are unlocked.")
	} else {
		sb.WriteString("\n🔒 <b>Locked.</b> Registration is required to access full materials, recorded lectures, and live examinations.")
		b.Row(keyboard.Button("🚀 Enroll · "+formatting.FormatPrice(course.Price), keyboard.EnrollPrefix+course.ID))
	}
	b.Row(keyboard.BackButton(model.ViewPrograms))
	b.AddNav(snap.Identity != nil, snap.SearchText != "")

	return sb.String(), b.Build()
}

// BuildResearchScreen формирует библиотеку публикаций
func BuildResearchScreen(snap session.Snapshot, cat *catalog.Catalog) (string, *models.InlineKeyboardMarkup) {
	pubs := catalog.FilterPublications(cat.Publications(), snap.SearchText)

	var sb strings.Builder
	sb.WriteString("🔬 <b>Research Hub.</b>\n")
	sb.WriteString("The collaborative engine for MGCC faculty and high-potential students.\n\n")
	sb.WriteString(searchLine(snap))

	if len(pubs) == 0 {
		sb.WriteString("No publications match your search.\n")
	}
	for _, p := range pubs {
		fmt.Fprintf(&sb, "📄 <b>%s</b>\n", esc(p.Title))
		fmt.Fprintf(&sb, "%s · %s · %s\n", esc(p.Author), esc(p.Year), esc(p.Type))
		if len(p.Tags) > 0 {
			tags := make([]string, 0, len(p.Tags))
			for _, t := range p.Tags {
				tags = append(tags, "#"+esc(strings.ReplaceAll(t, " ", "_")))
			}
			sb.WriteString(strings.Join(tags, " ") + "\n")
		}
		sb.WriteString("\n")
	}

	if snap.Identity != nil && snap.Identity.Role.IsFaculty() {
		sb.WriteString("✍️ <b>Publish New Material</b> is available to your faculty account.\n")
	}

	b := keyboard.NewBuilder()
	b.AddNav(snap.Identity != nil, snap.SearchText != "")

	return sb.String(), b.Build()
}

// BuildAuthPromptScreen предлагает выбрать роль для входа или регистрацию
func BuildAuthPromptScreen() (string, *models.InlineKeyboardMarkup) {
	text := "🔐 <b>Gateway.</b>\n" +
		"System Authorization\n\n" +
		"Choose your role to sign in, or register a new student account."

	b := keyboard.NewBuilder()
	roles := model.Roles()
	for i := 0; i < len(roles); i += 2 {
		row := []models.InlineKeyboardButton{roleButton(roles[i])}
		if i+1 < len(roles) {
			row = append(row, roleButton(roles[i+1]))
		}
		b.Row(row...)
	}
	b.Row(keyboard.Button("📝 Register as student", keyboard.Register))
	b.Row(keyboard.BackButton(model.ViewHome))

	return text, b.Build()
}

// BuildDashboardScreen формирует кабинет выбранной роли и панель ассистента.
// page относится только к очереди администратора.
func BuildDashboardScreen(board dashboard.Dashboard, snap session.Snapshot, panel *assistant.Session, page int) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	b := keyboard.NewBuilder()

	switch d := board.(type) {
	case dashboard.Student:
		writeStudentDashboard(&sb, d)
	case dashboard.Teacher:
		writeTeacherDashboard(&sb, d)
	case dashboard.Admin:
		writeAdminDashboard(&sb, b, d, page)
	case dashboard.Parent:
		writeParentDashboard(&sb, d)
	case dashboard.Professor:
		writeProfessorDashboard(&sb, d)
	}

	if panel != nil {
		sb.WriteString("\n")
		writeAssistantPanel(&sb, panel)
		b.Row(keyboard.Button("💬 Ask MGCC AI", keyboard.Ask))
		b.Row(modeButtons(panel.Mode())...)
	}

	b.AddNav(snap.Identity != nil, snap.SearchText != "")
	return sb.String(), b.Build()
}

// BuildAssistantScreen показывает последние сообщения диалога с ассистентом
func BuildAssistantScreen(panel *assistant.Session) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🤖 <b>MGCC AI</b> · %s\n\n", formatting.ModeDisplay(panel.Mode()))

	messages := panel.Messages()
	if len(messages) > historyLimit {
		messages = messages[len(messages)-historyLimit:]
	}
	for _, m := range messages {
		who := "🤖"
		if m.Role == model.ChatRoleUser {
			who = "🙋"
		}
		fmt.Fprintf(&sb, "%s <i>%s</i>\n%s\n\n", who, formatting.FormatTime(m.Timestamp),
			esc(formatting.Truncate(m.Text, previewLimit)))
	}

	if draft := panel.Draft(); draft != "" {
		fmt.Fprintf(&sb, "📝 Draft: <i>%s</i>\n", esc(formatting.Truncate(draft, previewLimit)))
	}

	if panel.Busy() {
		sb.WriteString("⏳ Thinking…\n")
	} else {
		sb.WriteString("Send your question as a message.")
	}

	return sb.String(), AssistantKeyboard(panel.Mode())
}

// AssistantKeyboard — переключатель режима и возврат на дашборд
func AssistantKeyboard(mode model.AssistantMode) *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(modeButtons(mode)...).
		Row(keyboard.ViewButton("⬅️ Dashboard", model.ViewDashboard)).
		Build()
}

// BuildPaymentPrompt просит ввести Transaction ID после перевода bKash
func BuildPaymentPrompt(course model.Course, numbers []*model.DemoPaymentNumber) string {
	payTo := fallbackPaymentNumber
	for _, n := range numbers {
		if !n.IsUsed {
			payTo = n.Number
			if n.Label != "" {
				payTo += " (" + n.Label + ")"
			}
			break
		}
	}

	return fmt.Sprintf(
		"💳 <b>Course Enrollment</b> · bKash\n\n"+
			"Payable Amount: <b>%s</b>\n"+
			"Course: %s\n\n"+
			"1. Send Money to: <b>%s</b>\n"+
			"2. Enter the Transaction ID below for verification.\n\n"+
			"Reply with the Transaction ID (e.g. 7X23K92L).",
		formatting.FormatPrice(course.Price),
		esc(course.Title),
		esc(payTo),
	)
}

// PromptKeyboard — клавиатура шага диалога
func PromptKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().Row(keyboard.CancelButton()).Build()
}

func writeStudentDashboard(sb *strings.Builder, d dashboard.Student) {
	fmt.Fprintf(sb, "🎓 <b>Welcome back, %s</b>\n", esc(d.User.Name))
	sb.WriteString("Your adaptive learning path is ready for today's session.\n\n")
	fmt.Fprintf(sb, "📅 Attendance: <b>%s</b>\n", formatting.FormatPercent(d.Attendance))
	fmt.Fprintf(sb, "📈 Performance: <b>%s</b>\n\n", formatting.FormatPercent(d.Performance))

	sb.WriteString("🎯 <b>Adaptive Milestones</b>\n")
	for _, m := range d.Missions {
		fmt.Fprintf(sb, "• %s\n  %s %s · due %s\n", esc(m.Title),
			formatting.ProgressBar(m.Progress), formatting.FormatPercent(m.Progress), esc(m.Deadline))
	}

	sb.WriteString("\n📚 <b>Unlocked Academics</b>\n")
	if len(d.Enrolled) == 0 {
		sb.WriteString("No active enrollments\n")
	}
	for _, c := range d.Enrolled {
		fmt.Fprintf(sb, "• %s · %s\n", esc(c.Title), esc(c.Duration))
	}

	if len(d.Achievements) > 0 {
		sb.WriteString("\n🏅 <b>Achievements</b>\n")
		items := make([]string, 0, len(d.Achievements))
		for _, a := range d.Achievements {
			items = append(items, esc(a))
		}
		sb.WriteString(strings.Join(items, " · ") + "\n")
	}
}

func writeTeacherDashboard(sb *strings.Builder, d dashboard.Teacher) {
	sb.WriteString("🧑‍🏫 <b>Teacher Control Panel</b>\n")
	fmt.Fprintf(sb, "Managing Subject: <b>%s</b>\n\n", esc(d.Subject))

	sb.WriteString("📊 <b>Student Performance Distribution</b>\n")
	for _, bucket := range d.Distribution {
		fmt.Fprintf(sb, "• %s: %d\n", esc(bucket.Name), bucket.Count)
	}

	if len(d.Uploads) > 0 {
		sb.WriteString("\n📤 <b>Recent Uploads</b>\n")
		for _, u := range d.Uploads {
			fmt.Fprintf(sb, "• %s\n", esc(u))
		}
	}
}

func writeAdminDashboard(sb *strings.Builder, b *keyboard.Builder, d dashboard.Admin, page int) {
	sb.WriteString("🛡 <b>System Authority</b>\n")
	sb.WriteString("Master Administration\n\n")

	fmt.Fprintf(sb, "🧾 <b>Verification Queue</b> (%d pending)\n", len(d.Pending))
	if len(d.Pending) == 0 {
		sb.WriteString("No pending transaction records\n")
	}

	start, end, page := keyboard.PageBounds(page, len(d.Pending))
	for i, p := range d.Pending[start:end] {
		n := start + i + 1
		fmt.Fprintf(sb, "%d. %s · %s · %s\n   TXID: <code>%s</code> · %s\n",
			n, esc(p.StudentName), esc(p.CourseID), formatting.FormatPrice(p.Amount),
			esc(p.TransactionID), formatting.FormatDateTime(p.Timestamp))
		b.Row(
			keyboard.Button(fmt.Sprintf("✅ Verify #%d", n), keyboard.PayVerifyPrefix+p.ID),
			keyboard.Button(fmt.Sprintf("🚫 Reject #%d", n), keyboard.PayRejectPrefix+p.ID),
		)
	}
	b.AddPagination(keyboard.QueuePagePrefix, page, keyboard.TotalPages(len(d.Pending)))

	sb.WriteString("\n📱 <b>Demo Payment Numbers</b>\n")
	if len(d.DemoNumbers) == 0 {
		sb.WriteString("No demo numbers\n")
	}
	for _, n := range d.DemoNumbers {
		status := "available"
		if n.IsUsed {
			status = "used"
			if n.AssignedTo != "" {
				status += " by " + n.AssignedTo
			}
		}
		fmt.Fprintf(sb, "• <code>%s</code> · %s · %s\n", esc(n.Number), esc(n.Label), esc(status))
		b.Row(keyboard.Button("🗑 Remove "+n.Number, keyboard.DemoRemovePrefix+n.ID))
	}
	b.Row(keyboard.Button("➕ Add demo number", keyboard.DemoAdd))
}

func writeParentDashboard(sb *strings.Builder, d dashboard.Parent) {
	sb.WriteString("👪 <b>Parent Portal</b>\n")
	fmt.Fprintf(sb, "Monitoring student account <b>%s</b>\n\n", esc(d.StudentPhone))

	fmt.Fprintf(sb, "📈 <b>Learning Effort</b>\n%s %s\n\n",
		formatting.ProgressBar(d.LearningEffort), formatting.FormatPercent(d.LearningEffort))

	sb.WriteString("📝 <b>Recent Exams</b>\n")
	for _, r := range d.Results {
		mark := "🔵"
		if r.Ratio() > 0.8 {
			mark = "🟢"
		}
		fmt.Fprintf(sb, "%s %s: %d/%d\n", mark, esc(r.CourseID), r.Score, r.Total)
	}

	if d.MentorNote != "" {
		fmt.Fprintf(sb, "\n🗒 <b>Professor Notes</b>\n<i>%s</i>\n", esc(d.MentorNote))
	}
}

func writeProfessorDashboard(sb *strings.Builder, d dashboard.Professor) {
	sb.WriteString("🔬 <b>Professor Collective</b>\n")
	fmt.Fprintf(sb, "Faculty Member: <b>%s</b>", esc(d.User.Name))
	if d.Subject != "" {
		fmt.Fprintf(sb, " • Specialized in %s", esc(d.Subject))
	}
	sb.WriteString("\n\n📚 <b>Faculty Publications</b>\n")
	for _, p := range d.Publications {
		fmt.Fprintf(sb, "• %s\n  Published %s · ⬇️ %d\n", esc(p.Title), esc(p.Date), p.Downloads)
	}
}

func writeAssistantPanel(sb *strings.Builder, panel *assistant.Session) {
	fmt.Fprintf(sb, "🤖 <b>MGCC AI</b> · %s\n", formatting.ModeDisplay(panel.Mode()))

	messages := panel.Messages()
	if len(messages) == 0 {
		return
	}
	last := messages[len(messages)-1]
	fmt.Fprintf(sb, "<i>%s</i>\n", esc(formatting.Truncate(last.Text, 200)))
}

func searchLine(snap session.Snapshot) string {
	if snap.SearchText == "" {
		return ""
	}
	return fmt.Sprintf("🔍 Search: <i>%s</i>\n\n", esc(snap.SearchText))
}

func writeCourseList(sb *strings.Builder, courses []model.Course, withDescription bool) {
	if len(courses) == 0 {
		sb.WriteString("No programs match your search.\n")
		return
	}
	for _, c := range courses {
		fmt.Fprintf(sb, "• <b>%s</b>\n  %s · %s · %s\n", esc(c.Title),
			esc(string(c.Category)), esc(c.ClassLevel), formatting.FormatPrice(c.Price))
		if withDescription {
			fmt.Fprintf(sb, "  <i>%s</i>\n", esc(c.Description))
		}
	}
}

func addCourseButtons(b *keyboard.Builder, courses []model.Course) {
	for _, c := range courses {
		b.Row(keyboard.Button("🔎 "+c.Title, keyboard.CoursePrefix+c.ID))
	}
}

func roleButton(role model.Role) models.InlineKeyboardButton {
	return keyboard.Button(formatting.RoleDisplay(role), keyboard.RolePrefix+string(role))
}

func modeButtons(current model.AssistantMode) []models.InlineKeyboardButton {
	modes := model.AssistantModes()
	buttons := make([]models.InlineKeyboardButton, 0, len(modes))
	for _, m := range modes {
		label := formatting.ModeDisplay(m)
		if m == current {
			label = "• " + label
		}
		buttons = append(buttons, keyboard.Button(label, keyboard.ModePrefix+string(m)))
	}
	return buttons
}
